package algorithm

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/LavenderBridge/studyplan/internal/models"
)

// Default settings for new cards
const (
	InitialEaseFactor = 2.5
	MinEaseFactor     = 1.3
)

// Grade is a recall rating for a reviewed card. The numeric values mirror
// the original app's rating scale so imported review history stays comparable.
type Grade int

const (
	Again Grade = 0 // lapse: forgot the card
	Hard  Grade = 3
	Good  Grade = 4
	Easy  Grade = 5
)

// Grades lists all grades in ascending quality order.
var Grades = []Grade{Again, Hard, Good, Easy}

// ParseGrade accepts the grade name or its shorthand (a/h/g/e).
func ParseGrade(s string) (Grade, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "again", "a":
		return Again, nil
	case "hard", "h":
		return Hard, nil
	case "good", "g":
		return Good, nil
	case "easy", "e":
		return Easy, nil
	}
	return 0, fmt.Errorf("unknown grade %q (again, hard, good, easy)", s)
}

func (g Grade) String() string {
	switch g {
	case Again:
		return "again"
	case Hard:
		return "hard"
	case Good:
		return "good"
	case Easy:
		return "easy"
	}
	return fmt.Sprintf("grade(%d)", int(g))
}

// easeDelta is the per-grade ease adjustment. Deltas are monotone in grade
// quality: hard shrinks ease, good holds it, easy grows it. A lapse only
// mildly penalizes ease; the progress reset is the real cost.
func easeDelta(g Grade) float64 {
	switch g {
	case Again:
		return -0.20
	case Hard:
		return -0.15
	case Easy:
		return 0.15
	default:
		return 0
	}
}

// NextEase applies the grade's ease adjustment, clamped at the SM-2 floor.
func NextEase(ease float64, g Grade) float64 {
	if ease == 0 {
		ease = InitialEaseFactor
	}
	next := ease + easeDelta(g)
	if next < MinEaseFactor {
		next = MinEaseFactor
	}
	return next
}

// InitCard sets scheduling defaults on a freshly created card.
// New cards are due immediately so they show up in the next review session.
func InitCard(card models.Flashcard, now time.Time) models.Flashcard {
	card.EaseFactor = InitialEaseFactor
	card.Repetition = 0
	card.IntervalDays = 0
	card.DueDate = now
	return card
}

// Review applies one grading event and returns the updated card.
// Pure: the input card is not modified, no I/O happens here.
//
// Again resets progress (repetition and interval back to zero, card due
// right away for relearning). Successful grades walk the SM-2 ladder:
// 1 day, then 6 days, then round(interval x ease).
func Review(card models.Flashcard, g Grade, now time.Time) models.Flashcard {
	ease := NextEase(card.EaseFactor, g)

	if g == Again {
		card.Repetition = 0
		card.IntervalDays = 0
	} else {
		card.IntervalDays = nextInterval(card.Repetition, card.IntervalDays, ease)
		card.Repetition++
	}

	card.EaseFactor = ease
	card.DueDate = now.AddDate(0, 0, card.IntervalDays)
	reviewed := now
	card.LastReviewed = &reviewed
	return card
}

// nextInterval is the success branch of the SM-2 ladder.
func nextInterval(repetition, intervalDays int, ease float64) int {
	switch repetition {
	case 0:
		return 1
	case 1:
		return 6
	default:
		return int(math.Round(float64(intervalDays) * ease))
	}
}

// EstimateInterval previews the interval (in days) that grading the card
// would produce, without changing anything. The review command uses it to
// show "if you grade this hard, it comes back in 3 days" before commit.
func EstimateInterval(card models.Flashcard, g Grade) int {
	if g == Again {
		return 0
	}
	return nextInterval(card.Repetition, card.IntervalDays, NextEase(card.EaseFactor, g))
}

// FormatInterval renders a day count for the preview line.
func FormatInterval(days int) string {
	switch days {
	case 0:
		return "today"
	case 1:
		return "1 day"
	default:
		return fmt.Sprintf("%d days", days)
	}
}

// Stage is a presentational band derived from the repetition count.
// It never feeds back into scheduling.
type Stage int

const (
	StageNew      Stage = iota // never answered successfully
	StageLearning              // short streak, still fragile
	StageReview                // established card
)

func (s Stage) String() string {
	switch s {
	case StageNew:
		return "new"
	case StageLearning:
		return "learning"
	default:
		return "review"
	}
}

// CardStage classifies a card for display.
func CardStage(card models.Flashcard) Stage {
	switch {
	case card.Repetition == 0:
		return StageNew
	case card.Repetition < 3:
		return StageLearning
	default:
		return StageReview
	}
}
