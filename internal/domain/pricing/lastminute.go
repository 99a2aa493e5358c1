package pricing

import (
	"math"
	"time"
)

// Bookings that carry no clock time are assumed to start at 9am.
const defaultStartHour = 9

type LastMinuteCheck struct {
	IsLastMinute   bool  `json:"is_last_minute"`
	FeeCents       int64 `json:"fee_cents"`
	HoursUntil     int   `json:"hours_until"`
	ThresholdHours int   `json:"threshold_hours"`
}

// CheckLastMinute flags bookings made within the configured threshold of
// the appointment start. Exactly at the threshold still counts as last
// minute. Hours until start are rounded to the nearest whole hour.
func CheckLastMinute(appointmentAt, now time.Time, cfg Config) LastMinuteCheck {
	start := appointmentAt
	if start.Hour() == 0 && start.Minute() == 0 && start.Second() == 0 {
		start = time.Date(start.Year(), start.Month(), start.Day(), defaultStartHour, 0, 0, 0, start.Location())
	}

	hoursUntil := int(math.Round(start.Sub(now).Hours()))
	isLastMinute := hoursUntil <= cfg.LastMinute.ThresholdHours

	check := LastMinuteCheck{
		IsLastMinute:   isLastMinute,
		HoursUntil:     hoursUntil,
		ThresholdHours: cfg.LastMinute.ThresholdHours,
	}
	if isLastMinute {
		check.FeeCents = cfg.LastMinute.FeeCents
	}
	return check
}
