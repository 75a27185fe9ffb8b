package uuid

import "testing"

func TestNew_VersionAndVariant(t *testing.T) {
	u := New()
	if got := u[6] >> 4; got != 4 {
		t.Fatalf("expected version 4, got %d", got)
	}
	if got := u[8] >> 6; got != 0b10 {
		t.Fatalf("expected RFC 4122 variant bits, got %b", got)
	}
}

func TestParse_RoundTrip(t *testing.T) {
	u := New()
	parsed, err := Parse(u.String())
	if err != nil {
		t.Fatalf("parse of own String() failed: %v", err)
	}
	if parsed != u {
		t.Fatalf("round trip mismatch: %s vs %s", parsed, u)
	}
}

func TestParse_Invalid(t *testing.T) {
	cases := []string{
		"",
		"not-a-uuid",
		"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		"aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaa",   // too short
		"gggggggg-gggg-gggg-gggg-gggggggggggg", // bad characters
	}
	for _, c := range cases {
		if _, err := Parse(c); err == nil {
			t.Fatalf("expected error for %q", c)
		}
	}
}

func TestJSON_RoundTrip(t *testing.T) {
	u := New()
	data, err := u.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got UUID
	if err := got.UnmarshalJSON(data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got != u {
		t.Fatalf("json round trip mismatch: %s vs %s", got, u)
	}
}
