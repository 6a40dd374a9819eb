package billing

import (
	"errors"

	"smartpark/internal/domain/record"
	"smartpark/internal/pkg/config"
)

var (
	ErrNegativeDuration   = errors.New("duration cannot be negative")
	ErrRecordNotCompleted = errors.New("record is not completed")
)

type Quote struct {
	Hours int
	Fee   int64
}

// Engine converts elapsed parking time into a fee. Pure computation; no I/O.
// Partial hours are billed as full hours. With FloorToOneHour a zero-minute
// stay is billed as one hour; otherwise it is free.
type Engine struct {
	hourlyRate     int64
	floorToOneHour bool
}

func NewEngine(cfg config.ParkingConfig) *Engine {
	return &Engine{
		hourlyRate:     cfg.HourlyRate,
		floorToOneHour: cfg.FloorToOneHour,
	}
}

func (e *Engine) HourlyRate() int64 {
	return e.hourlyRate
}

func (e *Engine) Quote(durationMinutes int) (Quote, error) {
	if durationMinutes < 0 {
		return Quote{}, ErrNegativeDuration
	}

	hours := (durationMinutes + 59) / 60
	if hours == 0 && e.floorToOneHour {
		hours = 1
	}

	return Quote{
		Hours: hours,
		Fee:   int64(hours) * e.hourlyRate,
	}, nil
}

func (e *Engine) QuoteForRecord(r *record.Record) (Quote, error) {
	if !r.IsCompleted() {
		return Quote{}, ErrRecordNotCompleted
	}
	return e.Quote(r.Duration())
}
