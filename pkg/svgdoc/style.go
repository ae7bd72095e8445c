package svgdoc

import "strings"

// Style returns the value of a style property, looking at the style
// attribute first and the presentation attribute second.
func (n *Node) Style(name string) string {
	if n.style == nil {
		n.style = map[string]string{}
		for _, pair := range strings.Split(n.Styles, ";") {
			kv := strings.SplitN(pair, ":", 2)
			if len(kv) == 2 {
				n.style[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
			}
		}
	}
	if value, ok := n.style[name]; ok {
		return value
	}
	switch name {
	case "fill":
		return strings.TrimSpace(n.Fill)
	case "stroke":
		return strings.TrimSpace(n.Stroke)
	case "display":
		return strings.TrimSpace(n.Display)
	case "visibility":
		return strings.TrimSpace(n.Visibility)
	}
	return ""
}

// paint is the inherited state that decides whether an element leaves ink.
type paint struct {
	fill       string
	stroke     string
	visibility string
}

var initialPaint = paint{fill: "black", stroke: "none", visibility: "visible"}

// inherit returns p overridden by the properties n sets itself.
func (p paint) inherit(n *Node) paint {
	for _, prop := range []struct {
		name  string
		value *string
	}{
		{"fill", &p.fill},
		{"stroke", &p.stroke},
		{"visibility", &p.visibility},
	} {
		if v := n.Style(prop.name); v != "" && v != "inherit" {
			*prop.value = v
		}
	}
	return p
}
