package domain

import "context"

// ServicePort defines the service contract for calendar views
type ServicePort interface {
	Month(ctx context.Context, year, month int) (MonthView, error)
	Day(ctx context.Context, date string) (DayView, error)
	Feed(ctx context.Context) (string, error)
}
