package ui

import (
	"testing"
	"time"
)

func TestDuration(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{0, "0m"},
		{45 * time.Minute, "45m"},
		{2*time.Hour + 5*time.Minute, "2h05m"},
		{26 * time.Hour, "1d2h"},
		{59*time.Minute + 40*time.Second, "1h00m"},
	}
	for _, c := range cases {
		if got := Duration(c.in); got != c.want {
			t.Fatalf("Duration(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestPetIconFallsBackToPaw(t *testing.T) {
	if got := PetIcon("fox"); got != "🦊" {
		t.Fatalf("fox icon = %q", got)
	}
	if got := PetIcon("dragon"); got != IconPaw {
		t.Fatalf("unknown icon = %q", got)
	}
}
