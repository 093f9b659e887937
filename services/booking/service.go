package booking

import (
	"context"
	"fmt"
	"time"

	bookingRepo "savora/database/repository/booking"
	restaurantRepo "savora/database/repository/restaurant"
	"savora/models"
	"savora/services/feed"
	"savora/services/notification"
	"savora/services/tasks"
	"savora/utils"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo            bookingRepo.BookingRepository
	RestaurantRepo  restaurantRepo.RestaurantRepository
	NotificationSvc notification.NotificationService
	TaskClient      *asynq.Client // nil disables reminder scheduling
}

// CreateBooking validates and stores a new booking request, notifies the
// restaurant owner, and schedules a reminder push an hour before the
// booking instant.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, b models.Booking) (*models.Booking, error) {
	if b.PartySize <= 0 {
		return nil, utils.NewAPIError(utils.KindValidation, "party size must be positive")
	}
	if _, err := time.ParseInLocation(dateLayout, b.Date, time.Local); err != nil {
		return nil, utils.NewAPIError(utils.KindValidation, "booking date must be YYYY-MM-DD")
	}
	if _, err := time.Parse("15:04", b.Time); err != nil {
		return nil, utils.NewAPIError(utils.KindValidation, "booking time must be HH:MM")
	}

	rest, err := s.RestaurantRepo.GetByID(b.RestaurantID)
	if err != nil {
		return nil, utils.WrapAPIError(utils.KindNotFound, "restaurant not found", err)
	}

	b.ID = uuid.New().String()
	b.Status = models.BookingPending
	if err := s.Repo.Create(&b); err != nil {
		return nil, utils.WrapAPIError(utils.KindTransient, "could not create booking", err)
	}

	if s.NotificationSvc != nil {
		title := "New booking request"
		body := fmt.Sprintf("%s, party of %d on %s at %s", rest.Name, b.PartySize, b.Date, b.Time)
		if err := s.NotificationSvc.SendPush(ctx, rest.OwnerID, title, body, map[string]string{"bookingId": b.ID}); err != nil {
			zap.L().Warn("booking: owner push failed", zap.String("bookingId", b.ID), zap.Error(err))
		}
	}

	s.scheduleReminder(b, rest.Name)
	return &b, nil
}

func (s *DefaultBookingService) scheduleReminder(b models.Booking, restaurantName string) {
	if s.TaskClient == nil {
		return
	}
	instant, ok := BookingInstant(b)
	if !ok {
		return
	}
	fireAt := instant.Add(-time.Hour)
	if fireAt.Before(time.Now()) {
		return
	}

	payload := models.ReminderPayload{
		BookingID: b.ID,
		UserID:    b.UserID,
		Title:     "Upcoming booking",
		Body:      fmt.Sprintf("Your table at %s is booked for %s", restaurantName, b.Time),
		FireDate:  fireAt.Format(time.RFC3339),
	}
	task, opts, err := tasks.NewReminderTask(payload, fireAt)
	if err != nil {
		zap.L().Warn("booking: reminder task build failed", zap.String("bookingId", b.ID), zap.Error(err))
		return
	}
	if _, err := s.TaskClient.Enqueue(task, opts...); err != nil {
		zap.L().Warn("booking: reminder enqueue failed", zap.String("bookingId", b.ID), zap.Error(err))
	}
}

// UpdateStatus transitions a booking's status. Only the booking's
// customer or the owning restaurant's account may mutate it; the check
// runs here, server-side, regardless of what any client claims.
func (s *DefaultBookingService) UpdateStatus(ctx context.Context, bookingID, actorID, newStatus string) (*models.Booking, error) {
	if !models.ValidStatus(newStatus) {
		return nil, utils.NewAPIError(utils.KindValidation, fmt.Sprintf("unknown booking status %q", newStatus))
	}

	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, utils.WrapAPIError(utils.KindNotFound, "booking not found", err)
	}

	authorized := b.UserID == actorID
	if !authorized {
		rest, rerr := s.RestaurantRepo.GetByID(b.RestaurantID)
		if rerr == nil && rest.OwnerID == actorID {
			authorized = true
		}
	}
	if !authorized {
		return nil, utils.NewAPIError(utils.KindNotAuthorized, "not allowed to update this booking")
	}

	if err := s.Repo.UpdateStatus(bookingID, newStatus); err != nil {
		return nil, utils.WrapAPIError(utils.KindTransient, "could not update booking", err)
	}
	b.Status = newStatus

	if s.NotificationSvc != nil && actorID != b.UserID {
		title := "Booking update"
		body := fmt.Sprintf("Your booking on %s at %s is now %s", b.Date, b.Time, newStatus)
		if err := s.NotificationSvc.SendPush(ctx, b.UserID, title, body, map[string]string{"bookingId": b.ID}); err != nil {
			zap.L().Warn("booking: status push failed", zap.String("bookingId", b.ID), zap.Error(err))
		}
	}
	return b, nil
}

// ListForViewer returns the viewer's bookings, bucketed into upcoming
// and past windows. Owner accounts see the restaurant-side and the
// personal-side of their bookings merged on the shared identifier, with
// the personal view winning on conflict.
func (s *DefaultBookingService) ListForViewer(ctx context.Context, viewer models.User, now time.Time) (*models.BookingBuckets, error) {
	personal, err := s.Repo.GetByUser(viewer.ID)
	if err != nil {
		return nil, utils.WrapAPIError(utils.KindTransient, "could not load bookings", err)
	}

	role := RoleCustomer
	merged := personal
	if viewer.Role == models.RoleOwner {
		role = RoleOwner
		restaurants, rerr := s.RestaurantRepo.GetByOwner(viewer.ID)
		if rerr != nil {
			return nil, utils.WrapAPIError(utils.KindTransient, "could not load bookings", rerr)
		}
		ids := make([]string, len(restaurants))
		for i, rest := range restaurants {
			ids[i] = rest.ID
		}
		ownerScoped, rerr := s.Repo.GetByRestaurantIDs(ids)
		if rerr != nil {
			return nil, utils.WrapAPIError(utils.KindTransient, "could not load bookings", rerr)
		}
		merged = feed.MergeOwnerAndPersonalSets(ownerScoped, personal, func(b models.Booking) string { return b.ID })
	}

	buckets := Split(merged, now, role)
	return &buckets, nil
}
