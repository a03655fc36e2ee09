package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"podium/internal/core/grid"
	perr "podium/internal/platform/errors"
	subsdom "podium/internal/services/api/submissions/domain"
)

// fakeReader serves a fixed submission slice
type fakeReader struct{ subs []subsdom.Submission }

func (f *fakeReader) List(context.Context) ([]subsdom.Submission, error) {
	return f.subs, nil
}

func (f *fakeReader) ListByDate(_ context.Context, day time.Time) ([]subsdom.Submission, error) {
	var out []subsdom.Submission
	for _, s := range f.subs {
		if s.On(day) {
			out = append(out, s)
		}
	}
	return out, nil
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sub(id string, status subsdom.Status, first time.Time) subsdom.Submission {
	s := subsdom.Submission{
		ID:       id,
		Title:    "talk " + id,
		Status:   status,
		TalkType: subsdom.TalkMain,
		Preferences: [3]subsdom.Preference{
			{Date: first, Rank: 1},
			{Date: first.AddDate(0, 0, 7), Rank: 2},
			{Date: first.AddDate(0, 0, 14), Rank: 3},
		},
		CreatedAt: day(2025, time.March, 1),
	}
	if status == subsdom.StatusApproved || status == subsdom.StatusCompleted {
		d := first
		s.ScheduledDate = &d
	}
	return s
}

func TestMonth_FortyTwoCellsWithBuckets(t *testing.T) {
	apr25 := day(2025, time.April, 25)
	reader := &fakeReader{subs: []subsdom.Submission{
		sub("a", subsdom.StatusApproved, apr25),
		sub("b", subsdom.StatusPending, apr25),
		sub("c", subsdom.StatusRejected, apr25),
	}}
	s := New(reader)

	view, err := s.Month(context.Background(), 2025, 3) // April, 0-indexed
	if err != nil {
		t.Fatalf("Month: %v", err)
	}
	if len(view.Cells) != grid.Cells {
		t.Fatalf("cells = %d, want %d", len(view.Cells), grid.Cells)
	}
	if view.Year != 2025 || view.Month != 3 {
		t.Fatalf("view (%d,%d), want (2025,3)", view.Year, view.Month)
	}

	var cell *struct {
		subs    int
		counts  [3]int
		current bool
	}
	for _, c := range view.Cells {
		if c.Date == "2025-04-25" {
			cell = &struct {
				subs    int
				counts  [3]int
				current bool
			}{len(c.Submissions), [3]int{c.Counts.Approved, c.Counts.Pending, c.Counts.Other}, c.CurrentMonth}
		}
	}
	if cell == nil {
		t.Fatalf("2025-04-25 cell missing")
	}
	if !cell.current {
		t.Fatalf("April 25 must be a current-month cell")
	}
	if cell.subs != 3 {
		t.Fatalf("submissions on cell = %d, want 3", cell.subs)
	}
	if cell.counts != [3]int{1, 1, 1} {
		t.Fatalf("counts = %v, want approved/pending/other 1/1/1", cell.counts)
	}
}

func TestMonth_NormalizesAcrossYearBoundary(t *testing.T) {
	s := New(&fakeReader{})

	dec, err := s.Month(context.Background(), 2025, -1) // one before January 2025
	if err != nil {
		t.Fatalf("Month: %v", err)
	}
	if dec.Year != 2024 || dec.Month != 11 {
		t.Fatalf("(%d,%d), want December 2024", dec.Year, dec.Month)
	}
	if dec.NextYear != 2025 || dec.NextMonth != 0 {
		t.Fatalf("next nav (%d,%d), want January 2025", dec.NextYear, dec.NextMonth)
	}

	jan, err := s.Month(context.Background(), 2025, 12)
	if err != nil {
		t.Fatalf("Month: %v", err)
	}
	if jan.Year != 2026 || jan.Month != 0 {
		t.Fatalf("(%d,%d), want January 2026", jan.Year, jan.Month)
	}
	if jan.PrevYear != 2025 || jan.PrevMonth != 11 {
		t.Fatalf("prev nav (%d,%d), want December 2025", jan.PrevYear, jan.PrevMonth)
	}
}

func TestDay_EmptyIsValid(t *testing.T) {
	s := New(&fakeReader{})
	view, err := s.Day(context.Background(), "2025-04-26")
	if err != nil {
		t.Fatalf("Day: %v", err)
	}
	if view.Date != "2025-04-26" || len(view.Submissions) != 0 {
		t.Fatalf("expected empty day view, got %+v", view)
	}
	if view.Submissions == nil {
		t.Fatalf("submissions must serialize as [], not null")
	}
}

func TestDay_BadDate(t *testing.T) {
	s := New(&fakeReader{})
	_, err := s.Day(context.Background(), "April 25")
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

func TestDay_MatchesExactDateOnly(t *testing.T) {
	apr25 := day(2025, time.April, 25)
	s := New(&fakeReader{subs: []subsdom.Submission{sub("a", subsdom.StatusPending, apr25)}})

	hit, err := s.Day(context.Background(), "2025-04-25")
	if err != nil || len(hit.Submissions) != 1 {
		t.Fatalf("expected one submission on 04-25, got %+v (%v)", hit, err)
	}
	miss, err := s.Day(context.Background(), "2025-04-26")
	if err != nil || len(miss.Submissions) != 0 {
		t.Fatalf("expected none on 04-26, got %+v (%v)", miss, err)
	}
}

func TestFeed_ApprovedTalksOnly(t *testing.T) {
	apr25 := day(2025, time.April, 25)
	s := New(&fakeReader{subs: []subsdom.Submission{
		sub("approved-talk", subsdom.StatusApproved, apr25),
		sub("completed-talk", subsdom.StatusCompleted, apr25.AddDate(0, 0, 1)),
		sub("pending-talk", subsdom.StatusPending, apr25),
		sub("rejected-talk", subsdom.StatusRejected, apr25),
	}})
	s.now = func() time.Time { return day(2025, time.April, 1) }

	doc, err := s.Feed(context.Background())
	if err != nil {
		t.Fatalf("Feed: %v", err)
	}
	if !strings.Contains(doc, "BEGIN:VCALENDAR") {
		t.Fatalf("not an ics document:\n%s", doc)
	}
	if !strings.Contains(doc, "approved-talk") || !strings.Contains(doc, "completed-talk") {
		t.Fatalf("feed missing scheduled talks:\n%s", doc)
	}
	if strings.Contains(doc, "pending-talk") || strings.Contains(doc, "rejected-talk") {
		t.Fatalf("feed leaked unscheduled talks:\n%s", doc)
	}
}
