package errors

import "regexp"

// ValidateDiameter validates a dial or hole diameter in millimeters.
// Diameters must be strictly positive.
func ValidateDiameter(name string, mm float64) error {
	if mm <= 0 {
		return New(ErrCodeInvalidDiameter, "%s must be positive, got %.3fmm", name, mm)
	}
	return nil
}

// ValidateStroke validates a stroke width in millimeters.
// Zero is allowed (no stroke); negative widths are not.
func ValidateStroke(name string, mm float64) error {
	if mm < 0 {
		return New(ErrCodeInvalidStroke, "%s cannot be negative, got %.3fmm", name, mm)
	}
	return nil
}

// ValidateCount validates an element count (markers, rays, layers).
func ValidateCount(name string, n, minimum int) error {
	if n < minimum {
		return New(ErrCodeInvalidCount, "%s must be at least %d, got %d", name, minimum, n)
	}
	return nil
}

// ValidateOpacity validates an opacity value in [0, 1].
func ValidateOpacity(name string, v float64) error {
	if v < 0 || v > 1 {
		return New(ErrCodeInvalidOpacity, "%s must be in [0, 1], got %.3f", name, v)
	}
	return nil
}

// hexColorRegex matches #rgb and #rrggbb CSS hex colors.
var hexColorRegex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateColor validates a CSS hex color string (#rgb or #rrggbb).
func ValidateColor(name, color string) error {
	if !hexColorRegex.MatchString(color) {
		return New(ErrCodeInvalidColor, "%s must be a hex color like #000 or #1a2b3c, got %q", name, color)
	}
	return nil
}

// ValidateClearance validates a cut clearance in millimeters.
// Clearance compensates for kerf and must be non-negative and sane.
func ValidateClearance(mm float64) error {
	if mm < 0 {
		return New(ErrCodeInvalidClearance, "clearance cannot be negative, got %.3fmm", mm)
	}
	const maxClearance = 1.0
	if mm > maxClearance {
		return New(ErrCodeInvalidClearance, "clearance above %.1fmm is almost certainly a mistake, got %.3fmm", maxClearance, mm)
	}
	return nil
}
