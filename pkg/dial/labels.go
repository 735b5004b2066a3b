package dial

import (
	"encoding/csv"
	"strings"
)

// Label sets in 12-first ordering: index 0 sits at 12 o'clock, index 1 at
// 1 o'clock, and so on around the dial.
var (
	arabicLabels    = []string{"12", "1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11"}
	romanLabelsIV   = []string{"XII", "I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X", "XI"}
	romanLabelsIIII = []string{"XII", "I", "II", "III", "IIII", "V", "VI", "VII", "VIII", "IX", "X", "XI"}
)

// Labels resolves the label set for the options. Custom mode parses
// LabelsCSV; none mode returns nil.
func (o *Options) Labels() ([]string, error) {
	switch o.TextMode {
	case TextArabic:
		return append([]string(nil), arabicLabels...), nil
	case TextRoman:
		set := romanLabelsIV
		if o.RomanFour == RomanFourIIII {
			set = romanLabelsIIII
		}
		return append([]string(nil), set...), nil
	case TextCustom:
		return ParseLabelsCSV(o.LabelsCSV)
	default:
		return nil, nil
	}
}

// ParseLabelsCSV parses user-supplied label text. A single line without
// semicolons is treated as a plain comma-separated list; anything else goes
// through a CSV reader so quoted cells and multi-line input work. Empty
// cells are dropped.
func ParseLabelsCSV(text string) ([]string, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return nil, nil
	}

	if !strings.Contains(s, "\n") && !strings.Contains(s, ";") {
		var out []string
		for _, part := range strings.Split(s, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
		return out, nil
	}

	r := csv.NewReader(strings.NewReader(s))
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	var out []string
	for _, row := range rows {
		for _, cell := range row {
			if c := strings.TrimSpace(cell); c != "" {
				out = append(out, c)
			}
		}
	}
	return out, nil
}
