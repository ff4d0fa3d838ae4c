package match

import (
	"math"
	"testing"
)

func TestCharMatch_IdenticalStrings(t *testing.T) {
	t.Parallel()

	for _, value := range []string{"plu code", "description", "barcode", "x"} {
		if got := CharMatch(value, value); got != 1.0 {
			t.Fatalf("CharMatch(%q, %q) = %v, want 1.0", value, value, got)
		}
	}
}

func TestCharMatch_Anagram(t *testing.T) {
	t.Parallel()

	if got := CharMatch("listen", "silent"); got != 1.0 {
		t.Fatalf("anagram score = %v, want 1.0", got)
	}
}

func TestCharMatch_NormalizesBothSides(t *testing.T) {
	t.Parallel()

	if got := CharMatch("vat-code", "VAT_CODE"); got != 1.0 {
		t.Fatalf("CharMatch(\"vat-code\", \"VAT_CODE\") = %v, want 1.0", got)
	}
}

func TestCharMatch_DisjointCharacters(t *testing.T) {
	t.Parallel()

	if got := CharMatch("abc", "xyz"); got != 0.0 {
		t.Fatalf("disjoint score = %v, want 0.0", got)
	}
}

func TestCharMatch_TypoScoresByFormula(t *testing.T) {
	t.Parallel()

	// "descripshun" leaves t, i, o unconsumed in the target and has s, h, u
	// unmatched: 1 - (3+3)/(11+11) = 16/22.
	got := CharMatch("description", "descripshun")
	want := 16.0 / 22.0
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("CharMatch(\"description\", \"descripshun\") = %v, want %v", got, want)
	}
}

func TestCharMatch_EmptyInputs(t *testing.T) {
	t.Parallel()

	if got := CharMatch("", ""); got != 1.0 {
		t.Fatalf("both empty = %v, want 1.0", got)
	}
	if got := CharMatch("plu", ""); got != 0.0 {
		t.Fatalf("empty observed = %v, want 0.0", got)
	}
	if got := CharMatch("", "plu"); got != 0.0 {
		t.Fatalf("empty target = %v, want 0.0", got)
	}
}

func TestNormalizeHeader(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"  PLU Code ", "plucode"},
		{"vat_rate", "vatrate"},
		{"Stg-Price", "stgprice"},
		{"3 Digit Supplier", "3digitsupplier"},
	}
	for _, tc := range cases {
		if got := NormalizeHeader(tc.in); got != tc.want {
			t.Fatalf("NormalizeHeader(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeIdentity(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{" 483917 ", "483917"},
		{"483917.0", "483917"},
		{"AB-100", "AB-100"},
		{"12.50", "12.50"},
	}
	for _, tc := range cases {
		if got := NormalizeIdentity(tc.in); got != tc.want {
			t.Fatalf("NormalizeIdentity(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
