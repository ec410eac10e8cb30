package nocodb

import "strings"

// YesNo is the normalized value of NocoDB's boolean-like columns, which
// arrive as free text, real booleans or numbers depending on the table.
type YesNo int

const (
	Unknown YesNo = iota
	Yes
	No
)

// Bool collapses the enum for the view models: only an explicit Yes is true.
func (y YesNo) Bool() bool {
	return y == Yes
}

// YesNoFromText normalizes the startup-table flag columns, which store
// literal "Yes"/"No" text. Anything present that is not "yes" counts as No.
func YesNoFromText(v any) YesNo {
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return Unknown
	}
	if strings.EqualFold(strings.TrimSpace(s), "yes") {
		return Yes
	}
	return No
}

// YesNoFromLoose normalizes the partner-table flag columns. NocoDB hands
// these back as a real bool, the number 1, or the string "true" (any
// case); everything else present counts as No.
func YesNoFromLoose(v any) YesNo {
	switch t := v.(type) {
	case nil:
		return Unknown
	case bool:
		if t {
			return Yes
		}
		return No
	case float64:
		if t == 1 {
			return Yes
		}
		return No
	case int:
		if t == 1 {
			return Yes
		}
		return No
	case string:
		if strings.EqualFold(strings.TrimSpace(t), "true") {
			return Yes
		}
		return No
	default:
		return No
	}
}
