//go:build mage

// Package main contains the Mage build targets for penplot.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const binDir = "bin"

// commands lists the binaries built from ./cmd.
var commands = []string{"png2svg", "svg2gcode"}

// Build compiles both command line tools into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	for _, name := range commands {
		out := filepath.Join(binDir, name)
		if err := sh.RunV("go", "build", "-o", out, "./cmd/"+name); err != nil {
			return fmt.Errorf("go build %s: %w", name, err)
		}
		fmt.Printf("Built %s\n", out)
	}
	return nil
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet over the module.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Demo traces testdata/demo.png and converts the result to G-code in out/.
// Pass a different image with the DEMO_IMAGE environment variable.
func Demo() error {
	mg.Deps(Build)

	in := os.Getenv("DEMO_IMAGE")
	if in == "" {
		in = filepath.Join("testdata", "demo.png")
	}
	if err := os.MkdirAll("out", 0o755); err != nil {
		return fmt.Errorf("creating out: %w", err)
	}
	svg := filepath.Join("out", "demo.svg")
	gcode := filepath.Join("out", "demo.gcode")
	if err := sh.RunV(filepath.Join(binDir, "png2svg"), "--verbose", in, svg); err != nil {
		return err
	}
	return sh.RunV(filepath.Join(binDir, "svg2gcode"), "--verbose", svg, gcode)
}

// Clean removes build and demo output.
func Clean() error {
	for _, dir := range []string{binDir, "out"} {
		if err := sh.Rm(dir); err != nil {
			return err
		}
	}
	return nil
}
