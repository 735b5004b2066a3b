// Package scene defines the renderer-independent shape tree produced by the
// generators.
//
// A scene is a [Group] containing primitive shapes and nested groups. The
// generators in pkg/dial, pkg/pattern and pkg/movement build scenes; the
// renderers in pkg/render/svg and pkg/render/raster consume them. Keeping
// the tree as plain data means a generation run is a pure function from
// options to shapes, which is what makes the geometry testable without
// parsing renderer output.
//
// All coordinates and lengths are millimeters.
package scene

import "github.com/google/uuid"

// Node is a shape tree element. The concrete types are Group, Circle, Rect,
// Path and Text.
type Node interface {
	isNode()
}

// Style holds the visual attributes shared by stroked and filled shapes.
// Zero values mean "unset" and are omitted by renderers, except Fill where
// an empty string means no fill.
type Style struct {
	Fill          string  // fill color, "" for none
	Stroke        string  // stroke color, "" for none
	StrokeWidth   float64 // mm
	StrokeOpacity float64 // 0 means fully opaque (attribute omitted)
	LineCap       string  // "round", "butt", ...
	LineJoin      string  // "round", "miter", ...
}

// Rotation rotates a shape by Deg degrees clockwise about (CX, CY).
type Rotation struct {
	Deg    float64
	CX, CY float64
}

// CircleClip clips a group to a circle. The ID must be unique within the
// document.
type CircleClip struct {
	ID     string
	CX, CY float64
	R      float64
}

// Group is a named container of shapes. Groups may carry a rotation and a
// circular clip; both apply to all children.
type Group struct {
	ID       string
	Label    string
	Rotate   *Rotation
	Clip     *CircleClip
	Children []Node
}

func (*Group) isNode() {}

// Add appends children to the group.
func (g *Group) Add(nodes ...Node) {
	g.Children = append(g.Children, nodes...)
}

// NewGroup creates a group whose ID and label are both name.
func NewGroup(name string) *Group {
	return &Group{ID: name, Label: name}
}

// ClipToCircle attaches a circular clip to the group. The clip ID is derived
// from the group ID plus a short random suffix so repeated generations into
// the same document never collide.
func (g *Group) ClipToCircle(cx, cy, r float64) {
	g.Clip = &CircleClip{
		ID: g.ID + "-clip-" + uuid.NewString()[:6],
		CX: cx, CY: cy, R: r,
	}
}

// Circle is a circle centered at (CX, CY).
type Circle struct {
	CX, CY float64
	R      float64
	Style  Style
}

func (*Circle) isNode() {}

// Rect is an axis-aligned rectangle, optionally rotated about a pivot.
type Rect struct {
	X, Y   float64
	W, H   float64
	Rotate *Rotation
	Style  Style
}

func (*Rect) isNode() {}

// Path is a polyline through Pts, optionally closed. Renderers decide how
// to serialize it (SVG path data, raster line segments).
type Path struct {
	Pts    [][2]float64
	Closed bool
	Style  Style
}

func (*Path) isNode() {}

// Font describes label typography.
type Font struct {
	Family   string
	SizeMM   float64
	Anchor   string // "middle", "start", "end"
	Baseline string // "central", "middle", "alphabetic", "hanging"
}

// Text is a text label anchored at (X, Y).
type Text struct {
	X, Y    float64
	Content string
	Rotate  *Rotation
	Font    Font
	Fill    string
}

func (*Text) isNode() {}

// Count returns the number of primitive shapes (non-group nodes) in the
// tree rooted at g.
func (g *Group) Count() int {
	n := 0
	for _, child := range g.Children {
		if sub, ok := child.(*Group); ok {
			n += sub.Count()
			continue
		}
		n++
	}
	return n
}

// Walk calls fn for every node in the tree rooted at g, including g itself,
// in document order.
func Walk(n Node, fn func(Node)) {
	fn(n)
	if g, ok := n.(*Group); ok {
		for _, child := range g.Children {
			Walk(child, fn)
		}
	}
}
