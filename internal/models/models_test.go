package models

import "testing"

func TestParseCategory(t *testing.T) {
	cases := []struct {
		in   string
		want Category
		ok   bool
	}{
		{"exam", CategoryExam, true},
		{" Homework ", CategoryHomework, true},
		{"READING", CategoryReading, true},
		{"lab", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, err := ParseCategory(tc.in)
		if tc.ok && (err != nil || got != tc.want) {
			t.Fatalf("ParseCategory(%q) = %v, %v; want %v", tc.in, got, err, tc.want)
		}
		if !tc.ok && err == nil {
			t.Fatalf("ParseCategory(%q) accepted", tc.in)
		}
	}
}

func TestParseUrgency(t *testing.T) {
	got, err := ParseUrgency("Critical")
	if err != nil || got != UrgencyCritical {
		t.Fatalf("ParseUrgency(Critical) = %v, %v", got, err)
	}
	if _, err := ParseUrgency("urgent"); err == nil {
		t.Fatal("ParseUrgency(urgent) accepted")
	}
}

func TestUrgencyRankOrdering(t *testing.T) {
	ordered := []Urgency{UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyCritical}
	for i := 1; i < len(ordered); i++ {
		if ordered[i].Rank() <= ordered[i-1].Rank() {
			t.Fatalf("%s rank %d not above %s rank %d",
				ordered[i], ordered[i].Rank(), ordered[i-1], ordered[i-1].Rank())
		}
	}
	if Urgency("bogus").Rank() != 0 {
		t.Fatalf("unknown urgency rank = %d, want 0", Urgency("bogus").Rank())
	}
}
