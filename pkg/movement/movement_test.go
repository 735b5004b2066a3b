package movement

import (
	"math"
	"testing"

	"github.com/brianjo/watchdialtools/pkg/errors"
	"github.com/brianjo/watchdialtools/pkg/scene"
)

func TestRegistryGet(t *testing.T) {
	r := NewRegistry()

	p, err := r.Get("nh35")
	if err != nil {
		t.Fatalf("Get(nh35): %v", err)
	}
	if p.DialDiameterMM != 28.5 {
		t.Errorf("nh35 dial diameter = %v, want 28.5", p.DialDiameterMM)
	}
	if p.DateWindow == nil || p.DateWindow.AngleDeg != 90 {
		t.Errorf("nh35 should have a date window at 3 o'clock, got %+v", p.DateWindow)
	}
	if len(p.FeetMM) != 2 {
		t.Errorf("nh35 feet = %d, want 2", len(p.FeetMM))
	}

	_, err = r.Get("rolex3135")
	if err == nil {
		t.Fatal("unknown preset should fail")
	}
	if !errors.Is(err, errors.ErrCodePresetNotFound) {
		t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodePresetNotFound)
	}
}

func TestRegistryAdd(t *testing.T) {
	r := NewRegistry()

	err := r.Add(Preset{Name: "", DialDiameterMM: 30, CenterHoleMM: 2})
	if err == nil {
		t.Error("nameless preset should be rejected")
	}

	custom := Preset{Name: "custom", DialDiameterMM: 30.5, CenterHoleMM: 2.0}
	if err := r.Add(custom); err != nil {
		t.Fatalf("Add: %v", err)
	}
	got, err := r.Get("custom")
	if err != nil {
		t.Fatalf("Get after Add: %v", err)
	}
	if got.DialDiameterMM != 30.5 {
		t.Errorf("round-tripped diameter = %v, want 30.5", got.DialDiameterMM)
	}

	// Re-adding replaces.
	custom.DialDiameterMM = 31
	if err := r.Add(custom); err != nil {
		t.Fatalf("replace Add: %v", err)
	}
	got, _ = r.Get("custom")
	if got.DialDiameterMM != 31 {
		t.Errorf("replaced diameter = %v, want 31", got.DialDiameterMM)
	}
}

func TestRegistryNamesSorted(t *testing.T) {
	r := NewRegistry()
	names := r.Names()
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("names not sorted: %v", names)
		}
	}
	if len(r.All()) != len(names) {
		t.Errorf("All() length %d != Names() length %d", len(r.All()), len(names))
	}
}

func TestPresetValidate(t *testing.T) {
	tests := []struct {
		name    string
		preset  Preset
		wantErr bool
	}{
		{"minimal valid", Preset{Name: "x", DialDiameterMM: 28.5, CenterHoleMM: 2}, false},
		{"no name", Preset{DialDiameterMM: 28.5, CenterHoleMM: 2}, true},
		{"zero diameter", Preset{Name: "x", CenterHoleMM: 2}, true},
		{"zero hand hole", Preset{Name: "x", DialDiameterMM: 28.5, CenterHoleMM: 2, HandHolesMM: []float64{1.5, 0}}, true},
		{"zero-width date window", Preset{Name: "x", DialDiameterMM: 28.5, CenterHoleMM: 2,
			DateWindow: &DateWindow{HeightMM: 2, RadiusMM: 12}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.preset.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// onlyOptions returns options with every feature off except those enabled
// by the mutator.
func onlyOptions(enable func(*Options)) Options {
	o := DefaultOptions()
	o.DrawOutline = false
	o.DrawCenterHole = false
	o.DrawHandHoles = false
	o.DrawDateWindow = false
	o.DrawSubdial = false
	o.DrawFeet = false
	enable(&o)
	return o
}

func TestBuildClearanceWidensCuts(t *testing.T) {
	r := NewRegistry()
	p, err := r.Get("nh35")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	opts := onlyOptions(func(o *Options) { o.DrawCenterHole = true })
	g, err := Build(p, opts)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	base := g.Children[0].(*scene.Circle).R
	if math.Abs(base-p.CenterHoleMM/2) > 1e-9 {
		t.Errorf("center hole radius = %v, want %v", base, p.CenterHoleMM/2)
	}

	opts.ClearanceMM = 0.1
	g, err = Build(p, opts)
	if err != nil {
		t.Fatalf("Build with clearance: %v", err)
	}
	widened := g.Children[0].(*scene.Circle).R
	if math.Abs(widened-(base+0.1)) > 1e-9 {
		t.Errorf("cleared center hole radius = %v, want %v", widened, base+0.1)
	}
}

func TestBuildClearanceLeavesPositionsAlone(t *testing.T) {
	r := NewRegistry()
	p, err := r.Get("nh35")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	opts := onlyOptions(func(o *Options) { o.DrawFeet = true; o.DrawDateWindow = true })
	opts.ClearanceMM = 0.2
	g, err := Build(p, opts)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	var feet []*scene.Circle
	var window *scene.Rect
	scene.Walk(g, func(n scene.Node) {
		switch v := n.(type) {
		case *scene.Circle:
			feet = append(feet, v)
		case *scene.Rect:
			window = v
		}
	})

	if len(feet) != len(p.FeetMM) {
		t.Fatalf("feet drawn = %d, want %d", len(feet), len(p.FeetMM))
	}
	for i, c := range feet {
		if c.CX != p.FeetMM[i].XMM || c.CY != p.FeetMM[i].YMM {
			t.Errorf("foot %d moved to (%v, %v), want (%v, %v)",
				i, c.CX, c.CY, p.FeetMM[i].XMM, p.FeetMM[i].YMM)
		}
		wantR := (p.FootDiameterMM + 2*opts.ClearanceMM) / 2
		if math.Abs(c.R-wantR) > 1e-9 {
			t.Errorf("foot %d radius = %v, want %v", i, c.R, wantR)
		}
	}

	if window == nil {
		t.Fatal("date window not drawn")
	}
	// The window center stays on the 3 o'clock radius.
	cx := window.X + window.W/2
	cy := window.Y + window.H/2
	if math.Abs(cx-p.DateWindow.RadiusMM) > 1e-9 || math.Abs(cy) > 1e-9 {
		t.Errorf("date window center = (%v, %v), want (%v, 0)", cx, cy, p.DateWindow.RadiusMM)
	}
	if math.Abs(window.W-(p.DateWindow.WidthMM+2*opts.ClearanceMM)) > 1e-9 {
		t.Errorf("date window width = %v, want widened by clearance", window.W)
	}
}

func TestBuildSubdial(t *testing.T) {
	r := NewRegistry()
	p, err := r.Get("st36")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	opts := onlyOptions(func(o *Options) { o.DrawSubdial = true })
	opts.Movement = "st36"
	g, err := Build(p, opts)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(g.Children) != 1 {
		t.Fatalf("children = %d, want 1 subdial circle", len(g.Children))
	}
	c := g.Children[0].(*scene.Circle)
	if c.CX != p.Subdial.OffsetXMM || c.CY != p.Subdial.OffsetYMM || c.R != p.Subdial.RadiusMM {
		t.Errorf("subdial = (%v, %v) r=%v, want (%v, %v) r=%v",
			c.CX, c.CY, c.R, p.Subdial.OffsetXMM, p.Subdial.OffsetYMM, p.Subdial.RadiusMM)
	}
}

func TestBuildMissingFeaturesSkipped(t *testing.T) {
	r := NewRegistry()
	p, err := r.Get("st36") // no date window, no feet
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	opts := onlyOptions(func(o *Options) { o.DrawDateWindow = true; o.DrawFeet = true })
	g, err := Build(p, opts)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(g.Children) != 0 {
		t.Errorf("children = %d, want none for a movement without those features", len(g.Children))
	}
}

func TestBuildValidatesClearance(t *testing.T) {
	r := NewRegistry()
	p, _ := r.Get("nh35")
	opts := DefaultOptions()
	opts.ClearanceMM = 2.0

	_, err := Build(p, opts)
	if err == nil {
		t.Fatal("oversized clearance should fail")
	}
	if !errors.Is(err, errors.ErrCodeInvalidClearance) {
		t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidClearance)
	}
}
