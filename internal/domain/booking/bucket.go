package booking

import "time"

// Bucket is a booking's temporal classification relative to "today".
// Exactly one of Past/Today/Upcoming holds for any visit date.
type Bucket string

const (
	BucketPast     Bucket = "past"
	BucketToday    Bucket = "today"
	BucketUpcoming Bucket = "upcoming"
)

func (b Bucket) String() string {
	return string(b)
}

// Classify buckets a visit date against today. Both sides are
// normalized to midnight first; time of day never participates.
func Classify(visitDate, today time.Time) Bucket {
	v := NewVisitDate(visitDate)
	t := NewVisitDate(today)
	switch {
	case v.Before(t):
		return BucketPast
	case v.Equal(t):
		return BucketToday
	default:
		return BucketUpcoming
	}
}

// InUpcomingList reports membership in the looser "upcoming" list used
// for partitioning: today's bookings and future ones. The past list is
// its strict complement.
func InUpcomingList(visitDate, today time.Time) bool {
	return Classify(visitDate, today) != BucketPast
}
