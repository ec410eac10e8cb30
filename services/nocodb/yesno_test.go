package nocodb

import "testing"

func TestYesNoFromTextOnlyYesCounts(t *testing.T) {
	cases := []struct {
		in   any
		want YesNo
	}{
		{"yes", Yes},
		{"Yes", Yes},
		{"YES", Yes},
		{" yes ", Yes},
		{"no", No},
		{"maybe", No},
		{"", Unknown},
		{nil, Unknown},
		{true, Unknown}, // text policy does not accept real booleans
	}

	for _, tc := range cases {
		if got := YesNoFromText(tc.in); got != tc.want {
			t.Fatalf("YesNoFromText(%#v): expected %v, got %v", tc.in, tc.want, got)
		}
	}
}

func TestYesNoFromLooseAcceptsBoolOneAndTrueString(t *testing.T) {
	truthy := []any{true, float64(1), "true", "TRUE", "True"}
	for _, v := range truthy {
		if !YesNoFromLoose(v).Bool() {
			t.Fatalf("expected %#v to normalize to true", v)
		}
	}

	falsy := []any{false, float64(0), float64(2), "yes", "1 ", "t", ""}
	for _, v := range falsy {
		if YesNoFromLoose(v).Bool() {
			t.Fatalf("expected %#v to normalize to false", v)
		}
	}

	if YesNoFromLoose(nil) != Unknown {
		t.Fatal("expected nil to normalize to Unknown")
	}
	if YesNoFromLoose(nil).Bool() {
		t.Fatal("Unknown must collapse to false")
	}
}
