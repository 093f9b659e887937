package booking

import (
	"testing"
	"time"

	"savora/models"
)

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.Local)

func TestClassify_SameDayEarlierTimeIsPast(t *testing.T) {
	b := models.Booking{Date: "2024-06-01", Time: "11:00", Status: models.BookingConfirmed}

	if got := Classify(b, testNow, RoleCustomer); got != WindowPast {
		t.Errorf("customer view = %v, want past", got)
	}
	if got := Classify(b, testNow, RoleOwner); got != WindowPast {
		t.Errorf("owner view = %v, want past", got)
	}
}

func TestClassify_FuturePendingIsUpcomingForOwner(t *testing.T) {
	b := models.Booking{Date: "2024-06-02", Time: "09:00", Status: models.BookingPending}

	if got := Classify(b, testNow, RoleOwner); got != WindowUpcoming {
		t.Errorf("owner view = %v, want upcoming", got)
	}
}

func TestClassify_RoleRulesDiverge(t *testing.T) {
	cases := []struct {
		name   string
		status string
		role   ViewerRole
		want   Window
	}{
		{"owner future cancelled", models.BookingCancelled, RoleOwner, WindowPast},
		{"owner future no_show", models.BookingNoShow, RoleOwner, WindowPast},
		{"owner future confirmed", models.BookingConfirmed, RoleOwner, WindowUpcoming},
		{"customer future cancelled", models.BookingCancelled, RoleCustomer, WindowPast},
		{"customer future completed", models.BookingCompleted, RoleCustomer, WindowPast},
		{"customer future no_show", models.BookingNoShow, RoleCustomer, WindowUpcoming},
		{"customer future pending", models.BookingPending, RoleCustomer, WindowUpcoming},
	}
	for _, c := range cases {
		b := models.Booking{Date: "2024-06-03", Time: "19:30", Status: c.status}
		if got := Classify(b, testNow, c.role); got != c.want {
			t.Errorf("%s: got %v, want %v", c.name, got, c.want)
		}
	}
}

func TestClassify_MissingDateOrTimeExcluded(t *testing.T) {
	cases := []models.Booking{
		{Date: "", Time: "19:00", Status: models.BookingConfirmed},
		{Date: "2024-06-02", Time: "", Status: models.BookingConfirmed},
		{Date: "", Time: "", Status: models.BookingConfirmed},
	}
	for _, b := range cases {
		if got := Classify(b, testNow, RoleCustomer); got != WindowExcluded {
			t.Errorf("booking %+v classified %v, want excluded", b, got)
		}
	}
}

func TestSplit_OrderingAsymmetry(t *testing.T) {
	bookings := []models.Booking{
		{ID: "up-later", Date: "2024-06-05", Time: "20:00", Status: models.BookingConfirmed},
		{ID: "past-old", Date: "2024-05-20", Time: "18:00", Status: models.BookingCompleted},
		{ID: "up-soon", Date: "2024-06-02", Time: "09:00", Status: models.BookingPending},
		{ID: "past-recent", Date: "2024-05-30", Time: "19:00", Status: models.BookingCompleted},
		{ID: "skipped", Time: "19:00", Status: models.BookingConfirmed}, // no date
	}

	buckets := Split(bookings, testNow, RoleCustomer)

	if len(buckets.Upcoming) != 2 || buckets.Upcoming[0].ID != "up-soon" || buckets.Upcoming[1].ID != "up-later" {
		t.Errorf("upcoming not ascending by instant: %+v", ids(buckets.Upcoming))
	}
	if len(buckets.Past) != 2 || buckets.Past[0].ID != "past-recent" || buckets.Past[1].ID != "past-old" {
		t.Errorf("past not descending by instant: %+v", ids(buckets.Past))
	}
	for _, b := range append(buckets.Upcoming, buckets.Past...) {
		if b.ID == "skipped" {
			t.Errorf("booking without a date leaked into a bucket")
		}
	}
}

func ids(bs []models.Booking) []string {
	out := make([]string, len(bs))
	for i, b := range bs {
		out[i] = b.ID
	}
	return out
}
