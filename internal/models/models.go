package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Deck groups flashcards, optionally tied to a course code.
type Deck struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Course    string    `json:"course,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Flashcard carries both content and SM-2 scheduling state.
// The scheduling fields are only ever written by the algorithm package;
// the store persists whatever it is handed.
type Flashcard struct {
	ID           uuid.UUID  `json:"id"`
	DeckID       uuid.UUID  `json:"deck_id"`
	Front        string     `json:"front"`
	Back         string     `json:"back"`
	Repetition   int        `json:"repetition"`    // consecutive successful reviews
	IntervalDays int        `json:"interval_days"` // days until next due date
	EaseFactor   float64    `json:"ease_factor"`   // SM-2 multiplier, never below 1.3
	DueDate      time.Time  `json:"due_date"`
	LastReviewed *time.Time `json:"last_reviewed,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// Review is one grading event, with a snapshot of the card state it produced.
type Review struct {
	ID           int       `json:"id"`
	CardID       uuid.UUID `json:"card_id"`
	Grade        int       `json:"grade"`
	ReviewedAt   time.Time `json:"reviewed_at"`
	IntervalDays int       `json:"interval_days"`
	EaseFactor   float64   `json:"ease_factor"`
}

// ReviewStats aggregates the review history for the stats command.
type ReviewStats struct {
	TotalReviews     int
	ReviewsLast7Days int
	CountByGrade     map[int]int
}

// Category classifies what kind of work an assignment is.
type Category string

const (
	CategoryExam     Category = "exam"
	CategoryQuiz     Category = "quiz"
	CategoryHomework Category = "homework"
	CategoryReading  Category = "reading"
	CategoryReview   Category = "review"
	CategoryProject  Category = "project"
)

// ParseCategory maps user input to a Category, rejecting anything outside
// the closed set.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	switch c {
	case CategoryExam, CategoryQuiz, CategoryHomework, CategoryReading, CategoryReview, CategoryProject:
		return c, nil
	}
	return "", fmt.Errorf("unknown category %q (exam, quiz, homework, reading, review, project)", s)
}

// Urgency ranks how pressing an assignment is, independent of its due date.
type Urgency string

const (
	UrgencyLow      Urgency = "low"
	UrgencyMedium   Urgency = "medium"
	UrgencyHigh     Urgency = "high"
	UrgencyCritical Urgency = "critical"
)

// ParseUrgency maps user input to an Urgency.
func ParseUrgency(s string) (Urgency, error) {
	u := Urgency(strings.ToLower(strings.TrimSpace(s)))
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyCritical:
		return u, nil
	}
	return "", fmt.Errorf("unknown urgency %q (low, medium, high, critical)", s)
}

// Rank orders urgencies so critical sorts first when compared descending.
func (u Urgency) Rank() int {
	switch u {
	case UrgencyCritical:
		return 3
	case UrgencyHigh:
		return 2
	case UrgencyMedium:
		return 1
	default:
		return 0
	}
}

// Assignment is a unit of coursework to be decomposed into study sessions.
// The planner treats it as read-only input.
type Assignment struct {
	ID               uuid.UUID  `json:"id"`
	Course           string     `json:"course,omitempty"`
	Title            string     `json:"title"`
	DueDate          time.Time  `json:"due_date"`
	EstimatedMinutes int        `json:"estimated_minutes"`
	WeightPercent    *float64   `json:"weight_percent,omitempty"`
	Category         Category   `json:"category"`
	Urgency          Urgency    `json:"urgency"`
	Locked           bool       `json:"locked"` // work stays close to the due date when set
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

// StudySession is one unplaced chunk of an assignment's effort.
// Index preserves the assignment-relative order of the chunks.
type StudySession struct {
	AssignmentID uuid.UUID `json:"assignment_id"`
	Index        int       `json:"index"`
	Minutes      int       `json:"minutes"`
	Title        string    `json:"title"`
	DueDate      time.Time `json:"due_date"`
	Category     Category  `json:"category"`
	Urgency      Urgency   `json:"urgency"`
	Locked       bool      `json:"locked"`
}

// PlacedSession is a StudySession pinned to a concrete time range.
type PlacedSession struct {
	StudySession
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}
