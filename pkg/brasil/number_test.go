package brasil

/*

go test -run 'TestParseNumber|TestFormatBRL' -v ./pkg/brasil -count=1

*/

import (
	"errors"
	"testing"
)

func TestParseNumber(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"10", 10},
		{"10.556", 10.56},
		{"10.555", 10.56}, // metade arredonda para cima, como no texto digitado
		{"-10.555", -10.56},
		{"-3.5", -3.5},
		{"1.234", 1.23}, // numérico puro vence o separador de milhar
		{"1.234,56", 1234.56},
		{"1.234.567,8", 1234567.8},
		{"10,5", 10.5},
		{"1,234.56", 1234.56},
		{" 7,25 ", 7.25},
	}
	for _, tc := range cases {
		got, err := ParseNumber(tc.in, -1)
		if err != nil {
			t.Fatalf("ParseNumber(%q) unexpected err: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseNumber(%q) want=%v got=%v", tc.in, tc.want, got)
		}
	}
}

func TestParseNumber_EmptyReturnsDefault(t *testing.T) {
	for _, in := range []string{"", "   "} {
		got, err := ParseNumber(in, 42)
		if err != nil || got != 42 {
			t.Fatalf("ParseNumber(%q) want=42,nil got=%v,%v", in, got, err)
		}
	}
}

func TestParseNumber_Invalid(t *testing.T) {
	for _, in := range []string{"abc", "R$ 10,00", "1,2,3", "NaN", "Inf"} {
		got, err := ParseNumber(in, 7)
		if !errors.Is(err, ErrInvalidNumber) {
			t.Fatalf("ParseNumber(%q) want ErrInvalidNumber got=%v", in, err)
		}
		if got != 7 {
			t.Fatalf("ParseNumber(%q) should fall back to default, got=%v", in, got)
		}
	}
}

func TestFormatBRL(t *testing.T) {
	cases := []struct {
		in     float64
		symbol bool
		want   string
	}{
		{0, false, "0,00"},
		{10, false, "10,00"},
		{1234.5, false, "1.234,50"},
		{1234.5, true, "R$ 1.234,50"},
		{1234567.891, true, "R$ 1.234.567,89"},
		{-10.25, false, "-10,25"},
		{-0.001, false, "0,00"},
		{1.005, true, "R$ 1,01"},
		{2.675, false, "2,68"},
		{-1.005, false, "-1,01"},
	}
	for _, tc := range cases {
		if got := FormatBRL(tc.in, tc.symbol); got != tc.want {
			t.Fatalf("FormatBRL(%v, %v) want=%q got=%q", tc.in, tc.symbol, tc.want, got)
		}
	}
}

func TestRound2(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{1.005, 1.01},
		{1.004, 1},
		{0.125, 0.13},
		{-0.125, -0.13},
		{123456789.999, 123456790},
		{1e20, 1e20},
		{0.0000001, 0},
	}
	for _, tc := range cases {
		if got := round2(tc.in); got != tc.want {
			t.Fatalf("round2(%v) want=%v got=%v", tc.in, tc.want, got)
		}
	}
}
