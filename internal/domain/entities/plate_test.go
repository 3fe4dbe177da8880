package entities

import "testing"

func TestNormalizePlate(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"already canonical", "1AB2345", "1AB2345"},
		{"lowercase", "1ab2345", "1AB2345"},
		{"inner space", "1AB 2345", "1AB2345"},
		{"surrounding whitespace", "  1ab 2345\t", "1AB2345"},
		{"tabs and multiple spaces", "1 A B\t23 45", "1AB2345"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizePlate(tc.in); got != tc.want {
				t.Fatalf("NormalizePlate(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizePlateIdempotent(t *testing.T) {
	for _, in := range []string{"1ab 2345", "AHJ 67-52", "  5L4 0071 "} {
		once := NormalizePlate(in)
		if twice := NormalizePlate(once); twice != once {
			t.Fatalf("NormalizePlate not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}
