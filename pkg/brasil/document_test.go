package brasil

/*

go test -run 'TestValidCPF|TestValidCNPJ|TestValidDocument' -v ./pkg/brasil -count=1

*/

import "testing"

func TestValidCPF(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"11144477735", true},
		{"111.444.777-35", true},
		{"529.982.247-25", true},
		{"12345678909", true},
		{"11144477734", false}, // segundo dígito errado
		{"12345678900", false},
		{"11111111111", false}, // repetido
		{"000.000.000-00", false},
		{"123", false},
		{"111444777351", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := ValidCPF(tc.in); got != tc.want {
			t.Fatalf("ValidCPF(%q) want=%v got=%v", tc.in, tc.want, got)
		}
	}
}

func TestValidCNPJ(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"11.222.333/0001-81", true},
		{"11222333000181", true},
		{"45.723.174/0001-10", true},
		{"12.345.678/0001-95", true},
		{"11222333000182", false},
		{"12345678000190", false},
		{"11111111111111", false},
		{"1122233300018", false},
	}
	for _, tc := range cases {
		if got := ValidCNPJ(tc.in); got != tc.want {
			t.Fatalf("ValidCNPJ(%q) want=%v got=%v", tc.in, tc.want, got)
		}
	}
}

func TestValidDocument(t *testing.T) {
	cases := []struct {
		in   string
		typ  DocumentType
		want bool
	}{
		{"111.444.777-35", DocumentCPF, true},
		{"11.222.333/0001-81", DocumentCNPJ, true},
		{"111.444.777-34", DocumentCPF, false},
		{"12345", DocumentUnknown, false},
	}
	for _, tc := range cases {
		if got := DocumentTypeOf(tc.in); got != tc.typ {
			t.Fatalf("DocumentTypeOf(%q) want=%q got=%q", tc.in, tc.typ, got)
		}
		if got := ValidDocument(tc.in); got != tc.want {
			t.Fatalf("ValidDocument(%q) want=%v got=%v", tc.in, tc.want, got)
		}
	}
}
