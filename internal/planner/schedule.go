package planner

import (
	"io"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/LavenderBridge/studyplan/internal/models"
)

// Result partitions a scheduling run into placed sessions and the overflow
// that could not be time-boxed before its deadline. Overflow is data, not an
// error: the work still needs doing, it just would not fit.
type Result struct {
	Scheduled []models.PlacedSession
	Overflow  []models.StudySession
}

// Schedule places sessions into hourly slots across the horizon using greedy
// first-fit: sessions sorted by (due date, urgency, sub-session index) each
// take the earliest slot that can hold them. This is a heuristic, not an
// optimal bin-packing; due date dominates because a missed deadline is the
// worst outcome.
//
// Deterministic: the same inputs with the same now always produce the same
// partition. The engine never mutates its inputs and keeps no state between
// calls.
func Schedule(sessions []models.StudySession, s Settings, profile EnergyProfile, now time.Time, log *slog.Logger) (Result, error) {
	if err := s.Validate(); err != nil {
		return Result{}, err
	}
	if err := profile.Validate(); err != nil {
		return Result{}, err
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	ordered := make([]models.StudySession, len(sessions))
	copy(ordered, sessions)
	sort.Slice(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if !a.DueDate.Equal(b.DueDate) {
			return a.DueDate.Before(b.DueDate)
		}
		if a.Urgency.Rank() != b.Urgency.Rank() {
			return a.Urgency.Rank() > b.Urgency.Rank()
		}
		if a.AssignmentID != b.AssignmentID {
			// Assignment ID keeps the order total so reruns are identical.
			return a.AssignmentID.String() < b.AssignmentID.String()
		}
		return a.Index < b.Index
	})

	slots := buildSlots(now, s, profile)
	log.Debug("built scheduling horizon", "slots", len(slots), "sessions", len(ordered))

	var res Result
	lastStart := make(map[uuid.UUID]time.Time)

	for _, sess := range ordered {
		idx, start := findSlot(slots, sess, lastStart[sess.AssignmentID])
		if idx < 0 {
			log.Debug("session overflowed", "assignment", sess.AssignmentID, "index", sess.Index, "minutes", sess.Minutes)
			res.Overflow = append(res.Overflow, sess)
			continue
		}

		end := start.Add(time.Duration(sess.Minutes) * time.Minute)
		slots[idx].Remaining -= sess.Minutes
		lastStart[sess.AssignmentID] = start
		res.Scheduled = append(res.Scheduled, models.PlacedSession{
			StudySession: sess,
			Start:        start,
			End:          end,
		})
		log.Debug("placed session", "assignment", sess.AssignmentID, "index", sess.Index, "start", start, "minutes", sess.Minutes)
	}

	return res, nil
}

// findSlot scans chronologically for the first slot that can hold the whole
// session. Returns the slot index and the concrete start time inside it, or
// -1 when nothing fits before the deadline.
//
// floor keeps sibling sessions ordered: a later chunk of the same assignment
// never starts before an earlier one, even when it is a minute shorter.
func findSlot(slots []Slot, sess models.StudySession, floor time.Time) (int, time.Time) {
	// Locked assignments refuse front-loading: nothing lands earlier than
	// the calendar day before the due date.
	earliest := time.Time{}
	if sess.Locked {
		earliest = startOfDay(sess.DueDate).AddDate(0, 0, -1)
	}

	for i := range slots {
		slot := slots[i]
		if slot.Remaining < sess.Minutes {
			continue
		}
		if !slot.Start.Before(sess.DueDate) {
			continue // slot at or after the deadline
		}
		if sess.Locked && slot.Start.Before(earliest) {
			continue
		}
		start := slot.Start.Add(time.Duration(slot.used()) * time.Minute)
		if start.Before(floor) {
			continue
		}
		end := start.Add(time.Duration(sess.Minutes) * time.Minute)
		if end.After(sess.DueDate) {
			continue // must finish before the assignment is due
		}
		return i, start
	}
	return -1, time.Time{}
}
