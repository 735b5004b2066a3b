// Package raster rasterizes scene trees to PNG for previews.
//
// Rendering maps millimeters to pixels with a configurable scale. Labels are
// drawn with the embedded Go Regular typeface, so previews never depend on
// system fonts; production output should use the SVG renderer, which keeps
// the configured font family as text.
package raster

import (
	"bytes"
	"image/png"
	"strconv"
	"sync"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/brianjo/watchdialtools/pkg/errors"
	"github.com/brianjo/watchdialtools/pkg/scene"
)

// DefaultScale is the default pixel density in pixels per millimeter.
// 10 px/mm puts a 28.5mm dial at 285px, enough to judge proportions.
const DefaultScale = 10.0

// Option configures PNG rendering.
type Option func(*renderer)

type renderer struct {
	scale       float64
	bg          string
	transparent bool
}

// WithScale sets the pixel density in pixels per millimeter.
func WithScale(pxPerMM float64) Option {
	return func(r *renderer) { r.scale = pxPerMM }
}

// WithBackground sets the canvas background color (default white).
func WithBackground(color string) Option {
	return func(r *renderer) { r.bg = color }
}

// WithTransparent leaves the canvas background transparent.
func WithTransparent() Option {
	return func(r *renderer) { r.transparent = true }
}

// Render rasterizes the scene onto a widthMM x heightMM canvas centered on
// the origin and returns the encoded PNG.
func Render(root *scene.Group, widthMM, heightMM float64, opts ...Option) ([]byte, error) {
	r := renderer{scale: DefaultScale, bg: "#ffffff"}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidDiameter, "raster scale must be positive, got %.2f", r.scale)
	}
	if widthMM <= 0 || heightMM <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidDiameter, "canvas must be positive, got %.2fx%.2fmm", widthMM, heightMM)
	}

	w := int(widthMM*r.scale + 0.5)
	h := int(heightMM*r.scale + 0.5)
	dc := gg.NewContext(w, h)

	if !r.transparent {
		cr, cg, cb, err := parseHex(r.bg)
		if err != nil {
			return nil, err
		}
		dc.SetRGB(cr, cg, cb)
		dc.Clear()
	}

	p := painter{dc: dc, scale: r.scale, cx: widthMM / 2, cy: heightMM / 2}
	if err := p.group(root); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, dc.Image()); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

// painter walks the scene and draws it in pixel space. Scene coordinates are
// origin-centered millimeters; px/py shift them to the canvas center and
// scale to pixels.
type painter struct {
	dc    *gg.Context
	scale float64
	cx    float64 // canvas half-width, mm
	cy    float64
}

func (p *painter) px(x float64) float64 { return (x + p.cx) * p.scale }
func (p *painter) py(y float64) float64 { return (y + p.cy) * p.scale }

func (p *painter) group(g *scene.Group) error {
	p.dc.Push()
	defer p.dc.Pop()

	if g.Rotate != nil && g.Rotate.Deg != 0 {
		p.dc.RotateAbout(gg.Radians(g.Rotate.Deg), p.px(g.Rotate.CX), p.py(g.Rotate.CY))
	}
	if g.Clip != nil {
		p.dc.DrawCircle(p.px(g.Clip.CX), p.py(g.Clip.CY), g.Clip.R*p.scale)
		p.dc.Clip()
	}

	for _, child := range g.Children {
		var err error
		switch v := child.(type) {
		case *scene.Group:
			err = p.group(v)
		case *scene.Circle:
			err = p.circle(v)
		case *scene.Rect:
			err = p.rect(v)
		case *scene.Path:
			err = p.path(v)
		case *scene.Text:
			err = p.text(v)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (p *painter) circle(c *scene.Circle) error {
	p.dc.DrawCircle(p.px(c.CX), p.py(c.CY), c.R*p.scale)
	return p.paint(c.Style)
}

func (p *painter) rect(rc *scene.Rect) error {
	if rc.Rotate != nil && rc.Rotate.Deg != 0 {
		p.dc.Push()
		defer p.dc.Pop()
		p.dc.RotateAbout(gg.Radians(rc.Rotate.Deg), p.px(rc.Rotate.CX), p.py(rc.Rotate.CY))
	}
	p.dc.DrawRectangle(p.px(rc.X), p.py(rc.Y), rc.W*p.scale, rc.H*p.scale)
	return p.paint(rc.Style)
}

func (p *painter) path(pa *scene.Path) error {
	if len(pa.Pts) == 0 {
		return nil
	}
	p.dc.MoveTo(p.px(pa.Pts[0][0]), p.py(pa.Pts[0][1]))
	for _, pt := range pa.Pts[1:] {
		p.dc.LineTo(p.px(pt[0]), p.py(pt[1]))
	}
	if pa.Closed {
		p.dc.ClosePath()
	}
	return p.paint(pa.Style)
}

func (p *painter) text(t *scene.Text) error {
	sizeMM := t.Font.SizeMM
	if sizeMM <= 0 {
		return nil
	}
	face, err := faceFor(sizeMM * p.scale)
	if err != nil {
		return err
	}
	p.dc.SetFontFace(face)

	fill := t.Fill
	if fill == "" {
		fill = "#000"
	}
	cr, cg, cb, err := parseHex(fill)
	if err != nil {
		return err
	}
	p.dc.SetRGB(cr, cg, cb)

	if t.Rotate != nil && t.Rotate.Deg != 0 {
		p.dc.Push()
		defer p.dc.Pop()
		p.dc.RotateAbout(gg.Radians(t.Rotate.Deg), p.px(t.Rotate.CX), p.py(t.Rotate.CY))
	}
	// 0.35 vertical anchor approximates a central baseline.
	p.dc.DrawStringAnchored(t.Content, p.px(t.X), p.py(t.Y), 0.5, 0.35)
	return nil
}

// paint strokes and/or fills the current path according to the style.
func (p *painter) paint(s scene.Style) error {
	if s.Fill != "" {
		cr, cg, cb, err := parseHex(s.Fill)
		if err != nil {
			return err
		}
		p.dc.SetRGB(cr, cg, cb)
		if s.Stroke != "" {
			p.dc.FillPreserve()
		} else {
			p.dc.Fill()
			return nil
		}
	}
	if s.Stroke == "" {
		p.dc.ClearPath()
		return nil
	}
	cr, cg, cb, err := parseHex(s.Stroke)
	if err != nil {
		return err
	}
	alpha := 1.0
	if s.StrokeOpacity > 0 && s.StrokeOpacity < 1 {
		alpha = s.StrokeOpacity
	}
	p.dc.SetRGBA(cr, cg, cb, alpha)
	p.dc.SetLineWidth(s.StrokeWidth * p.scale)
	if s.LineCap == "round" {
		p.dc.SetLineCapRound()
	} else {
		p.dc.SetLineCapButt()
	}
	p.dc.Stroke()
	return nil
}

var (
	parsedFont     *opentype.Font
	parsedFontErr  error
	parsedFontOnce sync.Once
)

// faceFor returns a Go Regular face at the given pixel size.
func faceFor(sizePx float64) (font.Face, error) {
	parsedFontOnce.Do(func() {
		parsedFont, parsedFontErr = opentype.Parse(goregular.TTF)
	})
	if parsedFontErr != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, parsedFontErr, "parse embedded font")
	}
	face, err := opentype.NewFace(parsedFont, &opentype.FaceOptions{
		Size:    sizePx,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "create font face")
	}
	return face, nil
}

// parseHex parses #rgb and #rrggbb colors into [0,1] components.
func parseHex(color string) (r, g, b float64, err error) {
	if verr := errors.ValidateColor("color", color); verr != nil {
		return 0, 0, 0, verr
	}
	hex := color[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	v, perr := strconv.ParseUint(hex, 16, 32)
	if perr != nil {
		return 0, 0, 0, errors.New(errors.ErrCodeInvalidColor, "invalid hex color %q", color)
	}
	return float64(v>>16&0xff) / 255, float64(v>>8&0xff) / 255, float64(v&0xff) / 255, nil
}
