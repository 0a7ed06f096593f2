package planner

import "github.com/LavenderBridge/studyplan/internal/models"

// DecomposeAssignment splits an assignment's estimated effort into an ordered
// sequence of unplaced sessions sized within the configured block bounds.
//
// The total is spread as evenly as possible over the fewest sessions that
// respect MaxBlockMinutes, so session lengths differ by at most one minute.
// An estimate below MinBlockMinutes stays a single short session: it is not
// worth splitting and must not be dropped.
func DecomposeAssignment(a models.Assignment, s Settings) []models.StudySession {
	total := a.EstimatedMinutes
	if total <= 0 {
		return nil
	}

	n := 1
	if total >= s.MinBlockMinutes {
		n = (total + s.MaxBlockMinutes - 1) / s.MaxBlockMinutes
		// Tight bounds (e.g. min 50, max 60, total 65) can make an even split
		// fall under the minimum; prefer fewer, larger sessions in that case.
		for n > 1 && total/n < s.MinBlockMinutes {
			n--
		}
	}

	base := total / n
	extra := total % n // the first `extra` sessions get one more minute

	sessions := make([]models.StudySession, 0, n)
	for i := 0; i < n; i++ {
		minutes := base
		if i < extra {
			minutes++
		}
		sessions = append(sessions, models.StudySession{
			AssignmentID: a.ID,
			Index:        i,
			Minutes:      minutes,
			Title:        a.Title,
			DueDate:      a.DueDate,
			Category:     a.Category,
			Urgency:      a.Urgency,
			Locked:       a.Locked,
		})
	}

	// A trailing remainder below the floor folds into the session before it.
	// Unreachable with an even split, kept as a guard for future strategies.
	if last := len(sessions) - 1; last > 0 && sessions[last].Minutes < s.RemainderFloorMinutes {
		sessions[last-1].Minutes += sessions[last].Minutes
		sessions = sessions[:last]
	}

	return sessions
}
