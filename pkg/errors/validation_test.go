package errors

import "testing"

func TestValidateDiameter(t *testing.T) {
	tests := []struct {
		name    string
		mm      float64
		wantErr bool
	}{
		{"positive", 28.5, false},
		{"tiny", 0.001, false},
		{"zero", 0, true},
		{"negative", -1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDiameter("dial diameter", tt.mm)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDiameter(%v) error = %v, wantErr %v", tt.mm, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidDiameter) {
				t.Errorf("wrong code: %v", GetCode(err))
			}
		})
	}
}

func TestValidateStroke(t *testing.T) {
	if err := ValidateStroke("stroke", 0); err != nil {
		t.Errorf("zero stroke should be allowed: %v", err)
	}
	if err := ValidateStroke("stroke", -0.1); err == nil {
		t.Error("negative stroke should fail")
	}
}

func TestValidateCount(t *testing.T) {
	if err := ValidateCount("markers", 12, 1); err != nil {
		t.Errorf("valid count failed: %v", err)
	}
	if err := ValidateCount("markers", 0, 1); err == nil {
		t.Error("count below minimum should fail")
	}
}

func TestValidateOpacity(t *testing.T) {
	tests := []struct {
		v       float64
		wantErr bool
	}{
		{0, false},
		{0.35, false},
		{1, false},
		{-0.01, true},
		{1.01, true},
	}
	for _, tt := range tests {
		err := ValidateOpacity("opacity", tt.v)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateOpacity(%v) error = %v, wantErr %v", tt.v, err, tt.wantErr)
		}
	}
}

func TestValidateColor(t *testing.T) {
	tests := []struct {
		name    string
		color   string
		wantErr bool
	}{
		{"short form", "#000", false},
		{"long form", "#1a2b3c", false},
		{"uppercase", "#ABCDEF", false},

		{"empty", "", true},
		{"missing hash", "000000", true},
		{"wrong length", "#0000", true},
		{"non-hex", "#zzzzzz", true},
		{"named color", "black", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateColor("color", tt.color)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateColor(%q) error = %v, wantErr %v", tt.color, err, tt.wantErr)
			}
		})
	}
}

func TestValidateClearance(t *testing.T) {
	tests := []struct {
		mm      float64
		wantErr bool
	}{
		{0, false},
		{0.05, false},
		{1.0, false},
		{-0.01, true},
		{1.5, true}, // above the sanity ceiling
	}
	for _, tt := range tests {
		err := ValidateClearance(tt.mm)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateClearance(%v) error = %v, wantErr %v", tt.mm, err, tt.wantErr)
		}
	}
}
