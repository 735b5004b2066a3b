// Package svg renders scene trees as millimeter-true SVG documents.
//
// The document viewBox is expressed in millimeters with the origin at the
// canvas center, and the width/height attributes carry mm units, so a 28.5mm
// dial measures exactly 28.5mm when imported into Inkscape or sent to a
// cutter. Group labels are emitted as inkscape:label attributes so layers
// survive the round trip into Inkscape.
package svg

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/brianjo/watchdialtools/pkg/scene"
)

// Option configures SVG rendering.
type Option func(*renderer)

type renderer struct {
	widthMM  float64
	heightMM float64
	title    string
	bg       string
}

// WithCanvas sets the canvas size in millimeters. The origin stays at the
// canvas center.
func WithCanvas(widthMM, heightMM float64) Option {
	return func(r *renderer) { r.widthMM, r.heightMM = widthMM, heightMM }
}

// WithTitle sets the document title element.
func WithTitle(title string) Option {
	return func(r *renderer) { r.title = title }
}

// WithBackground fills the canvas with a solid color before the scene.
func WithBackground(color string) Option {
	return func(r *renderer) { r.bg = color }
}

// Render serializes the scene as a standalone SVG document.
func Render(root *scene.Group, opts ...Option) []byte {
	r := renderer{widthMM: 40, heightMM: 40}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&buf,
		`<svg xmlns="http://www.w3.org/2000/svg" xmlns:inkscape="http://www.inkscape.org/namespaces/inkscape" width="%smm" height="%smm" viewBox="%s %s %s %s">`+"\n",
		num(r.widthMM), num(r.heightMM),
		num(-r.widthMM/2), num(-r.heightMM/2), num(r.widthMM), num(r.heightMM))

	if r.title != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", escape(r.title))
	}

	writeDefs(&buf, root)

	if r.bg != "" {
		fmt.Fprintf(&buf, `  <rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`+"\n",
			num(-r.widthMM/2), num(-r.heightMM/2), num(r.widthMM), num(r.heightMM), r.bg)
	}

	writeNode(&buf, root, 1)
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// writeDefs collects every circular clip in the tree into one defs block.
func writeDefs(buf *bytes.Buffer, root *scene.Group) {
	var clips []*scene.CircleClip
	scene.Walk(root, func(n scene.Node) {
		if g, ok := n.(*scene.Group); ok && g.Clip != nil {
			clips = append(clips, g.Clip)
		}
	})
	if len(clips) == 0 {
		return
	}
	buf.WriteString("  <defs>\n")
	for _, c := range clips {
		fmt.Fprintf(buf, `    <clipPath id="%s"><circle cx="%s" cy="%s" r="%s"/></clipPath>`+"\n",
			c.ID, num(c.CX), num(c.CY), num(c.R))
	}
	buf.WriteString("  </defs>\n")
}

func writeNode(buf *bytes.Buffer, n scene.Node, depth int) {
	pad := strings.Repeat("  ", depth)
	switch v := n.(type) {
	case *scene.Group:
		buf.WriteString(pad + "<g")
		if v.ID != "" {
			fmt.Fprintf(buf, ` id="%s"`, escape(v.ID))
		}
		if v.Label != "" {
			fmt.Fprintf(buf, ` inkscape:label="%s"`, escape(v.Label))
		}
		if v.Rotate != nil && v.Rotate.Deg != 0 {
			fmt.Fprintf(buf, ` transform="%s"`, rotation(v.Rotate))
		}
		if v.Clip != nil {
			fmt.Fprintf(buf, ` clip-path="url(#%s)"`, v.Clip.ID)
		}
		buf.WriteString(">\n")
		for _, child := range v.Children {
			writeNode(buf, child, depth+1)
		}
		buf.WriteString(pad + "</g>\n")

	case *scene.Circle:
		fmt.Fprintf(buf, `%s<circle cx="%s" cy="%s" r="%s"%s/>`+"\n",
			pad, num(v.CX), num(v.CY), num(v.R), styleAttrs(v.Style))

	case *scene.Rect:
		fmt.Fprintf(buf, `%s<rect x="%s" y="%s" width="%s" height="%s"`,
			pad, num(v.X), num(v.Y), num(v.W), num(v.H))
		if v.Rotate != nil && v.Rotate.Deg != 0 {
			fmt.Fprintf(buf, ` transform="%s"`, rotation(v.Rotate))
		}
		buf.WriteString(styleAttrs(v.Style) + "/>\n")

	case *scene.Path:
		fmt.Fprintf(buf, `%s<path d="%s"%s/>`+"\n",
			pad, scene.PathData(v.Pts, v.Closed), styleAttrs(v.Style))

	case *scene.Text:
		fmt.Fprintf(buf, `%s<text x="%s" y="%s"`, pad, num(v.X), num(v.Y))
		if v.Rotate != nil && v.Rotate.Deg != 0 {
			fmt.Fprintf(buf, ` transform="%s"`, rotation(v.Rotate))
		}
		if v.Font.Family != "" {
			fmt.Fprintf(buf, ` font-family="%s"`, escape(v.Font.Family))
		}
		if v.Font.SizeMM > 0 {
			fmt.Fprintf(buf, ` font-size="%s"`, num(v.Font.SizeMM))
		}
		if v.Font.Anchor != "" {
			fmt.Fprintf(buf, ` text-anchor="%s"`, v.Font.Anchor)
		}
		if v.Font.Baseline != "" {
			fmt.Fprintf(buf, ` dominant-baseline="%s"`, v.Font.Baseline)
		}
		if v.Fill != "" {
			fmt.Fprintf(buf, ` fill="%s"`, v.Fill)
		}
		fmt.Fprintf(buf, ">%s</text>\n", escape(v.Content))
	}
}

// styleAttrs serializes a style as SVG presentation attributes. Fill defaults
// to none so strokes never pick up an implicit black fill.
func styleAttrs(s scene.Style) string {
	var b strings.Builder
	if s.Fill != "" {
		fmt.Fprintf(&b, ` fill="%s"`, s.Fill)
	} else {
		b.WriteString(` fill="none"`)
	}
	if s.Stroke != "" {
		fmt.Fprintf(&b, ` stroke="%s"`, s.Stroke)
	}
	if s.StrokeWidth > 0 {
		fmt.Fprintf(&b, ` stroke-width="%s"`, num(s.StrokeWidth))
	}
	if s.StrokeOpacity > 0 && s.StrokeOpacity < 1 {
		fmt.Fprintf(&b, ` stroke-opacity="%s"`, num(s.StrokeOpacity))
	}
	if s.LineCap != "" {
		fmt.Fprintf(&b, ` stroke-linecap="%s"`, s.LineCap)
	}
	if s.LineJoin != "" {
		fmt.Fprintf(&b, ` stroke-linejoin="%s"`, s.LineJoin)
	}
	return b.String()
}

func rotation(r *scene.Rotation) string {
	return fmt.Sprintf("rotate(%s %s %s)", num(r.Deg), num(r.CX), num(r.CY))
}

// num formats a millimeter value with four decimals, trimmed. Four decimals
// is a tenth of a micron, well below any cutter's resolution.
func num(v float64) string {
	s := fmt.Sprintf("%.4f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escape(s string) string {
	return xmlEscaper.Replace(s)
}
