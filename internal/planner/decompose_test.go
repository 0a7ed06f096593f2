package planner

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/LavenderBridge/studyplan/internal/models"
)

func testAssignment(minutes int) models.Assignment {
	return models.Assignment{
		ID:               uuid.New(),
		Title:            "Problem Set 3",
		DueDate:          time.Date(2026, 9, 20, 23, 59, 0, 0, time.UTC),
		EstimatedMinutes: minutes,
		Category:         models.CategoryHomework,
		Urgency:          models.UrgencyMedium,
	}
}

func TestDecomposeEvenSplit(t *testing.T) {
	s := DefaultSettings()
	s.MinBlockMinutes = 30
	s.MaxBlockMinutes = 90

	sessions := DecomposeAssignment(testAssignment(180), s)
	if len(sessions) != 2 {
		t.Fatalf("got %d sessions, want 2", len(sessions))
	}
	total := 0
	for i, sess := range sessions {
		total += sess.Minutes
		if sess.Minutes < 30 || sess.Minutes > 90 {
			t.Fatalf("session %d has %d minutes, outside [30, 90]", i, sess.Minutes)
		}
		if sess.Index != i {
			t.Fatalf("session %d has index %d", i, sess.Index)
		}
	}
	if total != 180 {
		t.Fatalf("sessions sum to %d, want 180", total)
	}
}

func TestDecomposeBelowMinimumStaysWhole(t *testing.T) {
	s := DefaultSettings()
	s.MinBlockMinutes = 30
	s.MaxBlockMinutes = 90

	sessions := DecomposeAssignment(testAssignment(20), s)
	if len(sessions) != 1 {
		t.Fatalf("got %d sessions, want 1", len(sessions))
	}
	if sessions[0].Minutes != 20 {
		t.Fatalf("session has %d minutes, want 20", sessions[0].Minutes)
	}
}

func TestDecomposeSpreadIsEven(t *testing.T) {
	s := DefaultSettings()
	s.MinBlockMinutes = 30
	s.MaxBlockMinutes = 60

	sessions := DecomposeAssignment(testAssignment(125), s)
	if len(sessions) != 3 {
		t.Fatalf("got %d sessions, want 3", len(sessions))
	}
	min, max := sessions[0].Minutes, sessions[0].Minutes
	total := 0
	for _, sess := range sessions {
		total += sess.Minutes
		if sess.Minutes < min {
			min = sess.Minutes
		}
		if sess.Minutes > max {
			max = sess.Minutes
		}
	}
	if total != 125 {
		t.Fatalf("sessions sum to %d, want 125", total)
	}
	if max-min > 1 {
		t.Fatalf("session lengths differ by %d minutes, want at most 1", max-min)
	}
}

func TestDecomposeCopiesAssignmentFields(t *testing.T) {
	s := DefaultSettings()
	a := testAssignment(90)
	a.Urgency = models.UrgencyCritical
	a.Locked = true

	sessions := DecomposeAssignment(a, s)
	for _, sess := range sessions {
		if sess.AssignmentID != a.ID {
			t.Fatalf("session assignment id = %v, want %v", sess.AssignmentID, a.ID)
		}
		if !sess.DueDate.Equal(a.DueDate) || sess.Urgency != a.Urgency || !sess.Locked {
			t.Fatalf("session did not copy parent fields: %+v", sess)
		}
	}
}

func TestDecomposeTightBoundsPrefersFewerSessions(t *testing.T) {
	s := DefaultSettings()
	s.MinBlockMinutes = 50
	s.MaxBlockMinutes = 60

	// 65 minutes cannot split into two blocks of at least 50; one longer
	// session beats two that are both too short to be worth sitting down for.
	sessions := DecomposeAssignment(testAssignment(65), s)
	if len(sessions) != 1 {
		t.Fatalf("got %d sessions, want 1", len(sessions))
	}
	if sessions[0].Minutes != 65 {
		t.Fatalf("session has %d minutes, want 65", sessions[0].Minutes)
	}
}

func TestDecomposeZeroEstimate(t *testing.T) {
	if got := DecomposeAssignment(testAssignment(0), DefaultSettings()); got != nil {
		t.Fatalf("expected nil for zero estimate, got %v", got)
	}
}
