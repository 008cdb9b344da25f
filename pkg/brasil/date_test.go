package brasil

import (
	"errors"
	"testing"
)

func TestValidDateFormat(t *testing.T) {
	cases := []struct {
		value, layout string
		want          bool
	}{
		{"31/12/2024 23:59:59", LayoutDateTime, true},
		{"31/12/2024", LayoutDateTime, false},
		{"1/12/2024 10:00:00", LayoutDateTime, false},
		{"31/02/2024 10:00:00", LayoutDateTime, false},
		{"2024-02-29", LayoutDate, true},
		{"2023-02-29", LayoutDate, false},
		{"2024-2-9", LayoutDate, false},
		{"29/02/2024", LayoutDateBR, true},
		{"", LayoutDate, false},
	}
	for _, tc := range cases {
		if got := ValidDateFormat(tc.value, tc.layout); got != tc.want {
			t.Fatalf("ValidDateFormat(%q, %q) want=%v got=%v", tc.value, tc.layout, tc.want, got)
		}
	}
}

func TestParseDate(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"31/12/2024", "2024-12-31"},
		{"1/2/2024", "2024-02-01"},
		{"31/12/2024 10:30", "2024-12-31 10:30"},
		{"2024-12-31", "2024-12-31"},
		{"2024-12-31 08:00:00", "2024-12-31 08:00:00"},
	}
	for _, tc := range cases {
		got, err := ParseDate(tc.in, "")
		if err != nil {
			t.Fatalf("ParseDate(%q) unexpected err: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseDate(%q) want=%q got=%q", tc.in, tc.want, got)
		}
	}
}

func TestParseDate_DefaultAndInvalid(t *testing.T) {
	got, err := ParseDate("", "n/a")
	if err != nil || got != "n/a" {
		t.Fatalf("empty: want n/a,nil got=%q,%v", got, err)
	}

	for _, in := range []string{"31/02/2024", "2024-13-01", "ontem", "12/2024"} {
		got, err := ParseDate(in, "n/a")
		if !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("ParseDate(%q) want ErrInvalidDate got=%v", in, err)
		}
		if got != "n/a" {
			t.Fatalf("ParseDate(%q) should fall back to default, got=%q", in, got)
		}
	}
}
