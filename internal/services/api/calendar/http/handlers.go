// Package http provides http transport for calendar views
package http

import (
	stdhttp "net/http"
	"strconv"

	"podium/internal/modkit/httpkit"
	perr "podium/internal/platform/errors"
	phttp "podium/internal/platform/net/http"
	svc "podium/internal/services/api/calendar/service"
)

// Register mounts calendar endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	r.Get("/feed.ics", h.feed)
	httpkit.Get(r, "/day/{date}", h.day)
	httpkit.Get(r, "/{year}/{month}", h.month)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /calendar/{year}/{month} Calendar calendarMonth
// @Summary 42-cell month grid with submissions bucketed per day
// @Tags Calendar
// @Produce json
// @Param year path int true "calendar year"
// @Param month path int true "0-indexed month, normalized"
// @Success 200 {object} domain.MonthView "ok"
// @Router /calendar/{year}/{month} [get]
func (h *handlers) month(r *stdhttp.Request) (any, error) {
	year, err := strconv.Atoi(httpkit.Param(r, "year"))
	if err != nil {
		return nil, perr.WithField(perr.InvalidArgf("year must be an integer"), "year")
	}
	month, err := strconv.Atoi(httpkit.Param(r, "month"))
	if err != nil {
		return nil, perr.WithField(perr.InvalidArgf("month must be an integer"), "month")
	}
	return h.svc.Month(r.Context(), year, month)
}

// swagger:route GET /calendar/day/{date} Calendar calendarDay
// @Summary Every submission on one calendar date
// @Tags Calendar
// @Produce json
// @Param date path string true "YYYY-MM-DD"
// @Success 200 {object} domain.DayView "ok, possibly empty"
// @Router /calendar/day/{date} [get]
func (h *handlers) day(r *stdhttp.Request) (any, error) {
	return h.svc.Day(r.Context(), httpkit.Param(r, "date"))
}

// swagger:route GET /calendar/feed.ics Calendar calendarFeed
// @Summary Approved talks as an iCal feed
// @Tags Calendar
// @Produce text/calendar
// @Success 200 {string} string "ics document"
// @Router /calendar/feed.ics [get]
func (h *handlers) feed(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	doc, err := h.svc.Feed(r.Context())
	if err != nil {
		phttp.RespondError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	_, _ = w.Write([]byte(doc))
}
