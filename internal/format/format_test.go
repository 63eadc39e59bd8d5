package format

import "testing"

func TestGroup(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"0", "0"},
		{"5", "5"},
		{"999", "999"},
		{"1000", "1,000"},
		{"1234.5", "1,234.5"},
		{"-1234567", "-1,234,567"},
		{"1234567.891", "1,234,567.891"},
		{"0.5", "0.5"},
		{"0.", "0."},
		{"", ""},
	}
	for _, c := range cases {
		if got := Group(c.in); got != c.want {
			t.Errorf("Group(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestGroupIdempotent(t *testing.T) {
	once := Group("1234.5")
	twice := Group(once)
	if once != twice {
		t.Errorf("regrouping changed %q to %q", once, twice)
	}
	if got := Group("1,234.5"); got != "1,234.5" {
		t.Errorf("Group on formatted input = %q, want unchanged", got)
	}
}

func TestGroupExponentialVerbatim(t *testing.T) {
	for _, in := range []string{"1.234568e+12", "1E5", "-2.5e-07"} {
		if got := Group(in); got != in {
			t.Errorf("Group(%q) = %q, want verbatim", in, got)
		}
	}
}

func TestGroupNonNumericVerbatim(t *testing.T) {
	for _, in := range []string{"Error", "-", "abc"} {
		if got := Group(in); got != in {
			t.Errorf("Group(%q) = %q, want verbatim", in, got)
		}
	}
}

func TestUngroup(t *testing.T) {
	if got := Ungroup("1,234,567.8"); got != "1234567.8" {
		t.Errorf("Ungroup = %q", got)
	}
}

func TestCanonical(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{14, "14"},
		{0.5, "0.5"},
		{-3.25, "-3.25"},
		{12345678.9, "12345678.9"},
	}
	for _, c := range cases {
		if got := Canonical(c.in); got != c.want {
			t.Errorf("Canonical(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestCanonicalExponentialFallback(t *testing.T) {
	got := Canonical(1234567890123)
	if got != "1.234568e+12" {
		t.Errorf("Canonical(1234567890123) = %q, want exponential", got)
	}
	if len(got) > ResultWidth {
		t.Errorf("fallback result %q still wider than %d", got, ResultWidth)
	}
}

func TestNumberLabel(t *testing.T) {
	if got := NumberLabel("1234", "kg"); got != "1,234 kg" {
		t.Errorf("NumberLabel = %q", got)
	}
	if got := NumberLabel("1234", ""); got != "1,234" {
		t.Errorf("NumberLabel without unit = %q", got)
	}
}
