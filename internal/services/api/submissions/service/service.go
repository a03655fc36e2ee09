// Package service contains submission workflows
package service

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"podium/internal/core/keywords"
	"podium/internal/core/normalize"
	perr "podium/internal/platform/errors"
	"podium/internal/platform/net/http/bind"
	ptime "podium/internal/platform/time"
	"podium/internal/services/api/submissions/domain"
	"podium/internal/services/api/submissions/repo"

	"github.com/google/uuid"
)

// Service defines the service contract for submissions
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	Covers domain.CoverSaver
	now    func() time.Time
}

// New creates a new submissions service. covers may be nil in tests that
// never exercise Create
func New(r repo.Repo, covers domain.CoverSaver) *Svc {
	if r == nil {
		panic("submissions.Service requires a non nil Repo")
	}
	return &Svc{Repo: r, Covers: covers, now: time.Now}
}

// Create validates the form end to end and inserts a pending submission.
// Nothing is stored when any rule fails
func (s *Svc) Create(ctx context.Context, in domain.CreateInput, cover domain.CoverUpload) (domain.Submission, error) {
	in = normalizeInput(in)

	if err := bind.Struct(in); err != nil {
		return domain.Submission{}, err
	}
	if err := keywords.Validate(in.Keywords); err != nil {
		return domain.Submission{}, perr.WithField(err, "keywords")
	}
	prefs, err := s.parsePreferences(in.Preferences)
	if err != nil {
		return domain.Submission{}, err
	}
	if err := validateCover(cover); err != nil {
		return domain.Submission{}, err
	}

	ref, err := s.Covers.SaveUpload(ctx, cover.Filename, cover.Data)
	if err != nil {
		return domain.Submission{}, err
	}

	sub := domain.Submission{
		ID:              uuid.NewString(),
		SpeakerName:     in.SpeakerName,
		SpeakerPosition: in.SpeakerPosition,
		Phone:           in.Phone,
		Title:           in.Title,
		Description:     in.Description,
		TalkType:        domain.TalkType(in.TalkType),
		Keywords:        append([]string(nil), in.Keywords...),
		Preferences:     prefs,
		Status:          domain.StatusPending,
		CoverRef:        ref,
		CreatedAt:       s.now().UTC(),
	}
	if err := s.Repo.Insert(sub); err != nil {
		return domain.Submission{}, err
	}
	return sub, nil
}

// Get returns a single submission by id
func (s *Svc) Get(_ context.Context, id string) (domain.Submission, error) {
	return s.Repo.Get(id)
}

// List returns every submission in insertion order
func (s *Svc) List(_ context.Context) ([]domain.Submission, error) {
	return s.Repo.List(), nil
}

// ListByDate returns submissions whose relevant date falls on day.
// An empty day is a valid, empty result
func (s *Svc) ListByDate(_ context.Context, day time.Time) ([]domain.Submission, error) {
	return s.Repo.ListByDate(day), nil
}

// Approve moves a pending submission to approved and binds the scheduled date
// to the preference with the requested rank. Non-pending submissions conflict
// and stay unchanged
func (s *Svc) Approve(_ context.Context, id string, in domain.ApproveInput) (domain.Submission, error) {
	if err := bind.Struct(in); err != nil {
		return domain.Submission{}, err
	}
	return s.Repo.Update(id, func(cur domain.Submission) (domain.Submission, error) {
		if cur.Status != domain.StatusPending {
			return cur, perr.Conflictf("submission %q is %s, only pending submissions can be approved", id, cur.Status)
		}
		pref, ok := cur.PreferenceByRank(in.Rank)
		if !ok {
			return cur, perr.InvalidArgf("no preference with rank %d", in.Rank)
		}
		d := ptime.Midnight(pref.Date)
		cur.Status = domain.StatusApproved
		cur.ScheduledDate = &d
		return cur, nil
	})
}

// Reject moves a pending submission to rejected. Non-pending submissions
// conflict and stay unchanged
func (s *Svc) Reject(_ context.Context, id string) (domain.Submission, error) {
	return s.Repo.Update(id, func(cur domain.Submission) (domain.Submission, error) {
		if cur.Status != domain.StatusPending {
			return cur, perr.Conflictf("submission %q is %s, only pending submissions can be rejected", id, cur.Status)
		}
		cur.Status = domain.StatusRejected
		return cur, nil
	})
}

// CompletePast marks approved submissions whose scheduled date has passed as
// completed. Returns how many flipped. Called by the sweeper
func (s *Svc) CompletePast(_ context.Context, now time.Time) (int, error) {
	today := ptime.Midnight(now)
	n := s.Repo.UpdateAll(func(cur domain.Submission) (domain.Submission, bool) {
		if cur.Status != domain.StatusApproved || cur.ScheduledDate == nil {
			return cur, false
		}
		if !cur.ScheduledDate.Before(today) {
			return cur, false
		}
		cur.Status = domain.StatusCompleted
		return cur, true
	})
	return n, nil
}

// normalizeInput cleans free-text fields before validation so rules apply to
// what will actually be stored
func normalizeInput(in domain.CreateInput) domain.CreateInput {
	in.SpeakerName = normalize.Field(in.SpeakerName)
	in.SpeakerPosition = normalize.Field(in.SpeakerPosition)
	in.Phone = normalize.Field(in.Phone)
	in.Title = normalize.Field(in.Title)
	in.Description = normalize.Text(in.Description)
	for i, k := range in.Keywords {
		in.Keywords[i] = normalize.Field(k)
	}
	return in
}

// parsePreferences checks the scheduling window and ranks the three dates in
// submitted order
func (s *Svc) parsePreferences(raw []string) ([domain.PreferenceCount]domain.Preference, error) {
	var out [domain.PreferenceCount]domain.Preference
	today := ptime.Midnight(s.now())
	min := today.AddDate(0, 0, domain.MinLeadDays)
	max := today.AddDate(0, 0, domain.MaxLeadDays)

	seen := map[string]bool{}
	for i, str := range raw {
		d, err := ptime.ParseDate(str)
		if err != nil {
			return out, perr.WithField(perr.InvalidArgf("preference %d: invalid date %q", i+1, str), "preferences")
		}
		if d.Before(min) || d.After(max) {
			return out, perr.WithField(
				perr.InvalidArgf("preference %d: %s is outside the %d-%d day window", i+1, str, domain.MinLeadDays, domain.MaxLeadDays),
				"preferences",
			)
		}
		if seen[str] {
			return out, perr.WithField(perr.InvalidArgf("preference dates must be distinct"), "preferences")
		}
		seen[str] = true
		out[i] = domain.Preference{Date: d, Rank: i + 1}
	}
	return out, nil
}

func validateCover(cover domain.CoverUpload) error {
	if len(cover.Data) == 0 {
		return perr.WithField(perr.InvalidArgf("cover image is required"), "cover_image")
	}
	if len(cover.Data) > domain.MaxCoverBytes {
		return perr.WithField(perr.InvalidArgf("cover image exceeds 5MB"), "cover_image")
	}
	switch strings.ToLower(filepath.Ext(cover.Filename)) {
	case ".jpg", ".jpeg", ".png":
		return nil
	default:
		return perr.WithField(perr.InvalidArgf("cover image must be .jpg, .jpeg, or .png"), "cover_image")
	}
}
