// Package domain holds DTOs for calendar views
package domain

import (
	subsdom "podium/internal/services/api/submissions/domain"
)

// StatusCounts buckets a day's submissions for the cell chips
type StatusCounts struct {
	Approved int `json:"approved"`
	Pending  int `json:"pending"`
	Other    int `json:"other"`
}

// Summary is the compact per-cell submission line
type Summary struct {
	ID       string         `json:"id"`
	Title    string         `json:"title"`
	Speaker  string         `json:"speaker"`
	TalkType string         `json:"talk_type"`
	Status   subsdom.Status `json:"status"`
}

// CellView is one day square with its submissions attached
type CellView struct {
	Day          int          `json:"day"`
	Month        int          `json:"month"` // 0-indexed, January = 0
	Year         int          `json:"year"`
	CurrentMonth bool         `json:"current_month"`
	Date         string       `json:"date"` // YYYY-MM-DD
	Submissions  []Summary    `json:"submissions,omitempty"`
	Counts       StatusCounts `json:"counts"`
}

// MonthView is the full 42-cell grid plus navigation targets
type MonthView struct {
	Year      int        `json:"year"`
	Month     int        `json:"month"` // 0-indexed
	Cells     []CellView `json:"cells"`
	PrevYear  int        `json:"prev_year"`
	PrevMonth int        `json:"prev_month"`
	NextYear  int        `json:"next_year"`
	NextMonth int        `json:"next_month"`
}

// DayView is every submission on one calendar date. Empty is valid
type DayView struct {
	Date        string               `json:"date"`
	Submissions []subsdom.Submission `json:"submissions"`
}
