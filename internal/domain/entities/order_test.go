package entities

import (
	"testing"
	"time"
)

func TestFlagBool(t *testing.T) {
	cases := []struct {
		in   Flag
		want bool
	}{
		{FlagYes, true},
		{"ano", true},
		{"ANO", true},
		{FlagNo, false},
		{"ne", false},
		{"", false},
		{"yes", false},
		{"true", false},
		{" ano", false},
	}
	for _, tc := range cases {
		if got := tc.in.Bool(); got != tc.want {
			t.Fatalf("Flag(%q).Bool() = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestOrderDateValue(t *testing.T) {
	t.Run("full date", func(t *testing.T) {
		got := OrderDateValue("24.12.2023")
		want := time.Date(2023, 12, 24, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Fatalf("got %v, want %v", got, want)
		}
	})

	t.Run("single digit day and month", func(t *testing.T) {
		got := OrderDateValue("3.1.2024")
		want := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Fatalf("got %v, want %v", got, want)
		}
	})

	t.Run("unparseable collapses to zero time", func(t *testing.T) {
		for _, in := range []string{"", "not a date", "2023-12-24", "32.13.2023"} {
			if got := OrderDateValue(in); !got.IsZero() {
				t.Fatalf("OrderDateValue(%q) = %v, want zero time", in, got)
			}
		}
	})

	t.Run("orders calendar-wise not lexically", func(t *testing.T) {
		// Lexically "02.01.2024" > "15.12.2023" is false; calendar-wise it is after.
		newer := OrderDateValue("02.01.2024")
		older := OrderDateValue("15.12.2023")
		if !newer.After(older) {
			t.Fatalf("expected 02.01.2024 to sort after 15.12.2023")
		}
	})
}
