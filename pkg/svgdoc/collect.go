package svgdoc

import (
	"penplot/pkg/color"
	"penplot/pkg/errkind"
	"penplot/pkg/logging"
	"penplot/pkg/svgpath"
)

var drawable = map[string]bool{
	"path":     true,
	"rect":     true,
	"circle":   true,
	"ellipse":  true,
	"line":     true,
	"polyline": true,
	"polygon":  true,
}

var container = map[string]bool{
	"svg":    true,
	"g":      true,
	"a":      true,
	"switch": true,
}

// Paths returns every visible shape of the document as absolute sub paths in
// root user space, in document order. Elements inside defs, clipPath, mask,
// symbol, marker, pattern, text and the like are never drawn directly and
// are skipped, as are elements that are hidden or have neither a visible
// stroke nor a visible fill.
func (d *Document) Paths() ([]*svgpath.SubPath, error) {
	log := logging.Logger()
	var paths []*svgpath.SubPath
	skipped := 0

	var descend func(node *Node, matrix svgpath.Matrix, inherited paint) error
	descend = func(node *Node, matrix svgpath.Matrix, inherited paint) error {
		name := node.XMLName.Local
		if !drawable[name] && !container[name] {
			return nil
		}
		if node.Style("display") == "none" {
			skipped++
			return nil
		}

		transform, err := svgpath.ParseTransform(node.Transform)
		if err != nil {
			return errkind.Wrapf(errkind.Parse, err, "element %s%s", name, idSuffix(node))
		}
		matrix = matrix.Multiply(transform)
		p := inherited.inherit(node)

		if container[name] {
			for _, child := range node.Children {
				if err := descend(child, matrix, p); err != nil {
					return err
				}
			}
			return nil
		}

		if p.visibility == "hidden" || p.visibility == "collapse" ||
			(!color.Visible(p.stroke) && !color.Visible(p.fill)) {
			skipped++
			return nil
		}
		shapePaths, err := shape(node)
		if err != nil {
			return errkind.Wrapf(errkind.Parse, err, "element %s%s", name, idSuffix(node))
		}
		matrix.TransformPath(shapePaths)
		paths = append(paths, shapePaths...)
		return nil
	}

	// The root's own transform attribute applies too.
	if err := descend(d.Root, svgpath.Identity, initialPaint); err != nil {
		return nil, err
	}
	log.Debug("collected paths", "paths", len(paths), "skipped", skipped)
	return paths, nil
}

func idSuffix(n *Node) string {
	if n.ID == "" {
		return ""
	}
	return " #" + n.ID
}
