package services

import (
	"fmt"
	"time"

	"github.com/verbum-domini-api/internal/liturgy"
)

// LiturgyService resolves the liturgical day used to theme the reader
type LiturgyService struct {
	calendar liturgy.Calendar
	now      func() time.Time
}

// NewLiturgyService creates a liturgy service over a calendar
func NewLiturgyService(calendar liturgy.Calendar) *LiturgyService {
	return &LiturgyService{calendar: calendar, now: time.Now}
}

// Today returns the liturgical day for the server's current date
func (s *LiturgyService) Today() liturgy.Day {
	return liturgy.Lookup(s.calendar, s.now())
}

// ForDate returns the liturgical day for a YYYY-MM-DD date
func (s *LiturgyService) ForDate(date string) (liturgy.Day, error) {
	t, err := time.Parse(liturgy.DateLayout, date)
	if err != nil {
		return liturgy.Day{}, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}
	return liturgy.Lookup(s.calendar, t), nil
}
