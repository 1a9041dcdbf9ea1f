package booking

import (
	"errors"
	"time"
)

var (
	ErrInvalidQuantity  = errors.New("quantity must be a positive integer")
	ErrPastVisitDate    = errors.New("visit date must be today or later")
	ErrInvalidVisitDate = errors.New("invalid visit date")
	ErrNegativePrice    = errors.New("price cannot be negative")
)

// VisitDateLayout is the wire format for visit dates. Time of day is
// never significant; a VisitDate always sits at midnight.
const VisitDateLayout = "2006-01-02"

type VisitDate struct {
	day time.Time
}

func NewVisitDate(t time.Time) VisitDate {
	return VisitDate{day: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func ParseVisitDate(s string) (VisitDate, error) {
	t, err := time.Parse(VisitDateLayout, s)
	if err != nil {
		return VisitDate{}, ErrInvalidVisitDate
	}
	return NewVisitDate(t), nil
}

func (d VisitDate) Time() time.Time { return d.day }

func (d VisitDate) String() string { return d.day.Format(VisitDateLayout) }

func (d VisitDate) Before(other VisitDate) bool { return d.day.Before(other.day) }

func (d VisitDate) Equal(other VisitDate) bool { return d.day.Equal(other.day) }

// ValidateNotPast rejects strictly-past dates; today is acceptable.
func (d VisitDate) ValidateNotPast(today time.Time) error {
	if d.Before(NewVisitDate(today)) {
		return ErrPastVisitDate
	}
	return nil
}

type Quantity struct {
	value int
}

func NewQuantity(v int) (Quantity, error) {
	if v < 1 {
		return Quantity{}, ErrInvalidQuantity
	}
	return Quantity{value: v}, nil
}

func (q Quantity) Value() int { return q.value }

// Money is an amount in the currency's minor units, matching the
// checkout provider's order-amount convention.
type Money struct {
	minor int64
}

func NewMoney(minor int64) Money {
	return Money{minor: minor}
}

func NewPrice(minor int64) (Money, error) {
	if minor < 0 {
		return Money{}, ErrNegativePrice
	}
	return Money{minor: minor}, nil
}

func (m Money) Minor() int64 { return m.minor }

func (m Money) Add(other Money) Money {
	return Money{minor: m.minor + other.minor}
}

func (m Money) Mul(q Quantity) Money {
	return Money{minor: m.minor * int64(q.Value())}
}
