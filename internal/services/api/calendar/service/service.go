// Package service builds calendar views over the submission collection
package service

import (
	"context"
	"time"

	"podium/internal/core/grid"
	perr "podium/internal/platform/errors"
	ptime "podium/internal/platform/time"
	caldom "podium/internal/services/api/calendar/domain"
	subsdom "podium/internal/services/api/submissions/domain"

	ics "github.com/arran4/golang-ical"
)

// Service defines the service contract for calendar views
type Service interface{ caldom.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Subs subsdom.ReaderPort
	now  func() time.Time
}

// New creates a new calendar service over the submissions read port
func New(subs subsdom.ReaderPort) *Svc {
	if subs == nil {
		panic("calendar.Service requires a non nil submissions reader")
	}
	return &Svc{Subs: subs, now: time.Now}
}

// Month returns the 42-cell grid for (year, month) with submissions bucketed
// onto their calendar dates. month is 0-indexed and normalized, so stepping
// past December or before January is fine
func (s *Svc) Month(ctx context.Context, year, month int) (caldom.MonthView, error) {
	year, month = grid.Normalize(year, month)

	all, err := s.Subs.List(ctx)
	if err != nil {
		return caldom.MonthView{}, err
	}
	byDay := bucketByDay(all)

	cells := grid.Month(year, month)
	out := caldom.MonthView{Year: year, Month: month, Cells: make([]caldom.CellView, 0, len(cells))}
	out.PrevYear, out.PrevMonth = grid.Prev(year, month)
	out.NextYear, out.NextMonth = grid.Next(year, month)

	for _, c := range cells {
		date := ptime.FormatDate(c.Date())
		cv := caldom.CellView{
			Day:          c.Day,
			Month:        c.Month,
			Year:         c.Year,
			CurrentMonth: c.CurrentMonth,
			Date:         date,
		}
		for _, sub := range byDay[date] {
			cv.Submissions = append(cv.Submissions, summarize(sub))
			switch sub.Status {
			case subsdom.StatusApproved, subsdom.StatusCompleted:
				cv.Counts.Approved++
			case subsdom.StatusPending:
				cv.Counts.Pending++
			default:
				cv.Counts.Other++
			}
		}
		out.Cells = append(out.Cells, cv)
	}
	return out, nil
}

// Day returns every submission on one calendar date. An empty day is a valid
// view, not an error
func (s *Svc) Day(ctx context.Context, date string) (caldom.DayView, error) {
	d, err := ptime.ParseDate(date)
	if err != nil {
		return caldom.DayView{}, perr.WithField(perr.InvalidArgf("invalid date %q, want YYYY-MM-DD", date), "date")
	}
	rows, err := s.Subs.ListByDate(ctx, d)
	if err != nil {
		return caldom.DayView{}, err
	}
	if rows == nil {
		rows = []subsdom.Submission{}
	}
	return caldom.DayView{Date: date, Submissions: rows}, nil
}

// Feed renders approved and completed talks as an iCal document
func (s *Svc) Feed(ctx context.Context) (string, error) {
	all, err := s.Subs.List(ctx)
	if err != nil {
		return "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetName("Podium talks")

	now := s.now().UTC()
	for _, sub := range all {
		if sub.ScheduledDate == nil {
			continue
		}
		if sub.Status != subsdom.StatusApproved && sub.Status != subsdom.StatusCompleted {
			continue
		}
		ev := cal.AddEvent(sub.ID)
		ev.SetDtStampTime(now)
		ev.SetCreatedTime(sub.CreatedAt)
		ev.SetAllDayStartAt(*sub.ScheduledDate)
		ev.SetAllDayEndAt(sub.ScheduledDate.AddDate(0, 0, 1))
		ev.SetSummary(sub.Title)
		ev.SetDescription(sub.Description)
	}
	return cal.Serialize(), nil
}

func bucketByDay(subs []subsdom.Submission) map[string][]subsdom.Submission {
	out := make(map[string][]subsdom.Submission)
	for _, s := range subs {
		key := ptime.FormatDate(s.RelevantDate())
		out[key] = append(out[key], s)
	}
	return out
}

func summarize(s subsdom.Submission) caldom.Summary {
	return caldom.Summary{
		ID:       s.ID,
		Title:    s.Title,
		Speaker:  s.SpeakerName,
		TalkType: string(s.TalkType),
		Status:   s.Status,
	}
}
