package algorithm

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/LavenderBridge/studyplan/internal/models"
)

func newCard(t *testing.T) models.Flashcard {
	t.Helper()
	card := models.Flashcard{
		ID:     uuid.New(),
		DeckID: uuid.New(),
		Front:  "front",
		Back:   "back",
	}
	return InitCard(card, time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC))
}

func TestInitCardDefaults(t *testing.T) {
	card := newCard(t)
	if card.EaseFactor != InitialEaseFactor {
		t.Fatalf("ease = %v, want %v", card.EaseFactor, InitialEaseFactor)
	}
	if card.Repetition != 0 || card.IntervalDays != 0 {
		t.Fatalf("new card should have zero repetition and interval, got %d/%d", card.Repetition, card.IntervalDays)
	}
}

func TestFirstSuccessGraduatesToOneDay(t *testing.T) {
	now := time.Date(2026, 9, 2, 9, 0, 0, 0, time.UTC)
	for _, g := range []Grade{Hard, Good, Easy} {
		card := Review(newCard(t), g, now)
		if card.IntervalDays != 1 {
			t.Fatalf("grade %s: interval = %d, want 1", g, card.IntervalDays)
		}
		if card.Repetition != 1 {
			t.Fatalf("grade %s: repetition = %d, want 1", g, card.Repetition)
		}
		if !card.DueDate.Equal(now.AddDate(0, 0, 1)) {
			t.Fatalf("grade %s: due = %v, want %v", g, card.DueDate, now.AddDate(0, 0, 1))
		}
	}
}

func TestSecondSuccessGraduatesToSixDays(t *testing.T) {
	now := time.Date(2026, 9, 2, 9, 0, 0, 0, time.UTC)
	card := Review(newCard(t), Good, now)
	card = Review(card, Good, now.AddDate(0, 0, 1))
	if card.IntervalDays != 6 {
		t.Fatalf("interval = %d, want 6", card.IntervalDays)
	}
	if card.Repetition != 2 {
		t.Fatalf("repetition = %d, want 2", card.Repetition)
	}
}

func TestMatureIntervalGrowsByEase(t *testing.T) {
	now := time.Date(2026, 9, 2, 9, 0, 0, 0, time.UTC)
	card := Review(newCard(t), Good, now)
	card = Review(card, Good, now)
	// Third review: interval = round(6 * ease), ease unchanged by good.
	card = Review(card, Good, now)
	if card.IntervalDays != 15 { // round(6 * 2.5)
		t.Fatalf("interval = %d, want 15", card.IntervalDays)
	}
}

func TestAgainResetsProgress(t *testing.T) {
	now := time.Date(2026, 9, 2, 9, 0, 0, 0, time.UTC)
	card := newCard(t)
	for i := 0; i < 5; i++ {
		card = Review(card, Good, now)
	}
	before := card.EaseFactor

	card = Review(card, Again, now)
	if card.Repetition != 0 {
		t.Fatalf("repetition = %d, want 0 after lapse", card.Repetition)
	}
	if card.IntervalDays > 1 {
		t.Fatalf("interval = %d, want relearn bound of at most 1 day", card.IntervalDays)
	}
	// Lapse penalizes ease mildly, never resets it.
	if card.EaseFactor >= before {
		t.Fatalf("ease should decrease on lapse: %v -> %v", before, card.EaseFactor)
	}
	if card.EaseFactor < MinEaseFactor {
		t.Fatalf("ease %v below floor %v", card.EaseFactor, MinEaseFactor)
	}
}

func TestEaseFloorHoldsUnderRepeatedLapses(t *testing.T) {
	now := time.Date(2026, 9, 2, 9, 0, 0, 0, time.UTC)
	card := newCard(t)
	for i := 0; i < 50; i++ {
		card = Review(card, Again, now)
		if card.EaseFactor < MinEaseFactor {
			t.Fatalf("lapse %d: ease %v dropped below floor", i, card.EaseFactor)
		}
	}
	if card.EaseFactor != MinEaseFactor {
		t.Fatalf("ease = %v, want pinned at floor %v", card.EaseFactor, MinEaseFactor)
	}
}

func TestEaseMonotoneInGradeQuality(t *testing.T) {
	for _, ease := range []float64{1.3, 2.0, 2.5, 3.1} {
		prev := -1.0
		for _, g := range Grades {
			next := NextEase(ease, g)
			if next < prev {
				t.Fatalf("ease not monotone at base %v: grade %s gave %v after %v", ease, g, next, prev)
			}
			prev = next
		}
	}
}

func TestEasyNeverShrinksMatureInterval(t *testing.T) {
	now := time.Date(2026, 9, 2, 9, 0, 0, 0, time.UTC)
	card := Review(newCard(t), Good, now)
	card = Review(card, Good, now)

	for i := 0; i < 10; i++ {
		before := card.IntervalDays
		card = Review(card, Easy, now)
		if card.IntervalDays < before {
			t.Fatalf("step %d: easy shrank interval %d -> %d", i, before, card.IntervalDays)
		}
	}
}

func TestReviewDoesNotMutateInput(t *testing.T) {
	now := time.Date(2026, 9, 2, 9, 0, 0, 0, time.UTC)
	card := newCard(t)
	copyBefore := card
	_ = Review(card, Easy, now)
	if card != copyBefore {
		t.Fatal("Review mutated its input card")
	}
}

func TestEstimateMatchesReviewWithoutMutating(t *testing.T) {
	now := time.Date(2026, 9, 2, 9, 0, 0, 0, time.UTC)
	card := Review(newCard(t), Good, now)
	card = Review(card, Good, now)

	for _, g := range Grades {
		estimated := EstimateInterval(card, g)
		actual := Review(card, g, now).IntervalDays
		if estimated != actual {
			t.Fatalf("grade %s: estimate %d != actual %d", g, estimated, actual)
		}
	}
}

func TestParseGrade(t *testing.T) {
	cases := []struct {
		in   string
		want Grade
	}{
		{"again", Again}, {"a", Again},
		{"Hard", Hard}, {"h", Hard},
		{"GOOD", Good}, {"g", Good},
		{"easy", Easy}, {"e", Easy},
	}
	for _, tc := range cases {
		got, err := ParseGrade(tc.in)
		if err != nil {
			t.Fatalf("ParseGrade(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseGrade(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
	if _, err := ParseGrade("meh"); err == nil {
		t.Fatal("expected error for unknown grade")
	}
}

func TestCardStageBands(t *testing.T) {
	now := time.Date(2026, 9, 2, 9, 0, 0, 0, time.UTC)
	card := newCard(t)
	if CardStage(card) != StageNew {
		t.Fatalf("fresh card stage = %v, want new", CardStage(card))
	}
	card = Review(card, Good, now)
	if CardStage(card) != StageLearning {
		t.Fatalf("stage after 1 success = %v, want learning", CardStage(card))
	}
	card = Review(card, Good, now)
	card = Review(card, Good, now)
	if CardStage(card) != StageReview {
		t.Fatalf("stage after 3 successes = %v, want review", CardStage(card))
	}
	card = Review(card, Again, now)
	if CardStage(card) != StageNew {
		t.Fatalf("stage after lapse = %v, want new", CardStage(card))
	}
}

func TestFormatInterval(t *testing.T) {
	if got := FormatInterval(0); got != "today" {
		t.Fatalf("FormatInterval(0) = %q", got)
	}
	if got := FormatInterval(1); got != "1 day" {
		t.Fatalf("FormatInterval(1) = %q", got)
	}
	if got := FormatInterval(15); got != "15 days" {
		t.Fatalf("FormatInterval(15) = %q", got)
	}
}
