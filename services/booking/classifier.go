package booking

import (
	"sort"
	"time"

	"savora/models"
)

// Window is the classification of a booking relative to now.
type Window string

const (
	WindowUpcoming Window = "upcoming"
	WindowPast     Window = "past"
	// WindowExcluded marks bookings missing a date or time field. They
	// land in neither bucket, matching upstream behavior; see DESIGN.md
	// for the open data-quality question.
	WindowExcluded Window = "excluded"
)

// ViewerRole selects the classification rules.
type ViewerRole string

const (
	RoleOwner    ViewerRole = "owner"
	RoleCustomer ViewerRole = "customer"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04"
)

// BookingInstant combines the booking's date and time strings into a
// single instant in the venue's local time. No timezone conversion is
// performed; the concatenate-and-parse behavior is kept as is.
func BookingInstant(b models.Booking) (time.Time, bool) {
	if b.Date == "" || b.Time == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(dateTimeLayout, b.Date+" "+b.Time, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Classify places a booking in the upcoming or past window for the
// given viewer role.
//
// Owners see a booking as upcoming only while it still needs action:
// instant >= now and status pending or confirmed. Customers keep a
// booking in upcoming as long as it is not cancelled or completed, so
// a future no_show oddity stays visible to them.
func Classify(b models.Booking, now time.Time, role ViewerRole) Window {
	instant, ok := BookingInstant(b)
	if !ok {
		return WindowExcluded
	}
	if instant.Before(now) {
		return WindowPast
	}

	switch role {
	case RoleOwner:
		if b.Status == models.BookingPending || b.Status == models.BookingConfirmed {
			return WindowUpcoming
		}
		return WindowPast
	default:
		if b.Status == models.BookingCancelled || b.Status == models.BookingCompleted {
			return WindowPast
		}
		return WindowUpcoming
	}
}

// Split buckets bookings into upcoming and past for the viewer.
// Upcoming is sorted ascending by instant (soonest first); past is
// sorted descending (most recent first).
func Split(bookings []models.Booking, now time.Time, role ViewerRole) models.BookingBuckets {
	var buckets models.BookingBuckets
	for _, b := range bookings {
		switch Classify(b, now, role) {
		case WindowUpcoming:
			buckets.Upcoming = append(buckets.Upcoming, b)
		case WindowPast:
			buckets.Past = append(buckets.Past, b)
		}
	}

	sort.SliceStable(buckets.Upcoming, func(i, j int) bool {
		a, _ := BookingInstant(buckets.Upcoming[i])
		b, _ := BookingInstant(buckets.Upcoming[j])
		return a.Before(b)
	})
	sort.SliceStable(buckets.Past, func(i, j int) bool {
		a, _ := BookingInstant(buckets.Past[i])
		b, _ := BookingInstant(buckets.Past[j])
		return a.After(b)
	})
	return buckets
}
