// Package domain holds submission types and contracts
package domain

import (
	"time"

	ptime "podium/internal/platform/time"
)

// Status is the review lifecycle state of a submission
type Status string

// Lifecycle states. Completed is derived by the sweeper, never organizer-set
const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
)

// TalkType distinguishes the two session formats
type TalkType string

// Session formats
const (
	TalkLightning TalkType = "lightning"
	TalkMain      TalkType = "main"
)

// PreferenceCount is how many ranked dates every submission carries
const PreferenceCount = 3

// Preference is one ranked date choice. Rank is 1-based
type Preference struct {
	Date time.Time `json:"date"`
	Rank int       `json:"rank"`
}

// Submission is a talk proposal under review
type Submission struct {
	ID              string                      `json:"id"`
	SpeakerName     string                      `json:"speaker_name"`
	SpeakerPosition string                      `json:"speaker_position"`
	Phone           string                      `json:"phone"`
	Title           string                      `json:"title"`
	Description     string                      `json:"description"`
	TalkType        TalkType                    `json:"talk_type"`
	Keywords        []string                    `json:"keywords"`
	Preferences     [PreferenceCount]Preference `json:"preferences"`
	Status          Status                      `json:"status"`
	ScheduledDate   *time.Time                  `json:"scheduled_date,omitempty"`
	CoverRef        string                      `json:"cover_ref,omitempty"`
	CreatedAt       time.Time                   `json:"created_at"`
}

// Clone returns a deep copy so store snapshots cannot alias live state
func (s Submission) Clone() Submission {
	out := s
	out.Keywords = append([]string(nil), s.Keywords...)
	if s.ScheduledDate != nil {
		d := *s.ScheduledDate
		out.ScheduledDate = &d
	}
	return out
}

// PreferenceByRank returns the preference with the given 1-based rank
func (s Submission) PreferenceByRank(rank int) (Preference, bool) {
	for _, p := range s.Preferences {
		if p.Rank == rank {
			return p, true
		}
	}
	return Preference{}, false
}

// On reports whether the submission's relevant date falls on day (UTC).
// Approved and completed talks live on their scheduled date; everything else
// is bucketed by first-choice preference
func (s Submission) On(day time.Time) bool {
	return ptime.SameDay(s.RelevantDate(), day)
}

// RelevantDate is the calendar date a submission is shown under
func (s Submission) RelevantDate() time.Time {
	if s.ScheduledDate != nil {
		return *s.ScheduledDate
	}
	return s.Preferences[0].Date
}
