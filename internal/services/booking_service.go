package services

import (
	"context"
	"database/sql"
	"errors"

	"wanderlust-backend/internal/db"
	"wanderlust-backend/internal/domain"
	"wanderlust-backend/internal/domain/models"
	"wanderlust-backend/internal/repositories"
	"wanderlust-backend/internal/utils"
)

// BookingService drives the booking lifecycle and keeps room inventory
// consistent with it: one room is taken when a booking is created and
// handed back only on cancellation. Every mutation runs in one transaction
// so a rejected call leaves no partial state behind.
type BookingService struct {
	DB       *sql.DB
	Bookings repositories.BookingRepository
	Hotels   repositories.HotelRepository
}

type CreateBookingInput struct {
	HotelID         int64  `json:"hotelId"`
	CheckInDate     string `json:"checkInDate"`
	CheckOutDate    string `json:"checkOutDate"`
	GuestCount      int    `json:"guestCount"`
	SpecialRequests string `json:"specialRequests"`
}

const (
	minGuestCount = 1
	maxGuestCount = 10
)

// Create validates the request against the hotel's inventory and date
// constraints, prices the stay and inserts the booking as pending while
// taking one room, all inside one transaction. The hotel row is locked and
// the decrement is guarded with available_rooms > 0, so two concurrent
// requests can never take the last room twice.
func (s BookingService) Create(ctx context.Context, userID int64, in CreateBookingInput) (models.BookingConfirmation, error) {
	switch {
	case in.HotelID <= 0:
		return models.BookingConfirmation{}, domain.ValidationError{Field: "hotelId", Msg: "is required"}
	case in.CheckInDate == "":
		return models.BookingConfirmation{}, domain.ValidationError{Field: "checkInDate", Msg: "is required"}
	case in.CheckOutDate == "":
		return models.BookingConfirmation{}, domain.ValidationError{Field: "checkOutDate", Msg: "is required"}
	case in.GuestCount == 0:
		return models.BookingConfirmation{}, domain.ValidationError{Field: "guestCount", Msg: "is required"}
	}

	var out models.BookingConfirmation
	err := db.WithTx(ctx, s.DB, func(tx *sql.Tx) error {
		hotel, err := s.Hotels.FindByIDForUpdate(ctx, tx, in.HotelID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.NotFoundError{Resource: "hotel", Err: err}
			}
			return err
		}

		if hotel.AvailableRooms <= 0 {
			return domain.NoRoomsError{HotelID: hotel.ID}
		}

		checkIn, err := utils.ParseDate(in.CheckInDate)
		if err != nil {
			return domain.ValidationError{Field: "checkInDate", Msg: "must be a valid date (YYYY-MM-DD)", Err: err}
		}
		checkOut, err := utils.ParseDate(in.CheckOutDate)
		if err != nil {
			return domain.ValidationError{Field: "checkOutDate", Msg: "must be a valid date (YYYY-MM-DD)", Err: err}
		}
		checkIn = utils.DayStart(checkIn)
		checkOut = utils.DayStart(checkOut)

		if checkIn.Before(utils.Today()) {
			return domain.ValidationError{Field: "checkInDate", Msg: "cannot be earlier than today"}
		}
		if !checkOut.After(checkIn) {
			return domain.ValidationError{Field: "checkOutDate", Msg: "must be after check-in date"}
		}
		if in.GuestCount < minGuestCount || in.GuestCount > maxGuestCount {
			return domain.ValidationError{Field: "guestCount", Msg: "must be between 1 and 10"}
		}

		nights := utils.NightsBetween(checkIn, checkOut)
		total := hotel.Price * float64(nights)

		booking := models.Booking{
			UserID:          userID,
			HotelID:         hotel.ID,
			CheckInDate:     checkIn,
			CheckOutDate:    checkOut,
			GuestCount:      in.GuestCount,
			SpecialRequests: in.SpecialRequests,
			TotalPrice:      total,
			Status:          domain.StatusPending,
		}
		id, err := s.Bookings.Insert(ctx, tx, booking)
		if err != nil {
			return err
		}

		// One room per booking regardless of guest count.
		taken, err := s.Hotels.DecrementRooms(ctx, tx, hotel.ID)
		if err != nil {
			return err
		}
		if !taken {
			return domain.NoRoomsError{HotelID: hotel.ID}
		}

		out = models.BookingConfirmation{
			ID:           id,
			HotelName:    hotel.Name,
			CheckInDate:  utils.FormatDate(checkIn),
			CheckOutDate: utils.FormatDate(checkOut),
			GuestCount:   in.GuestCount,
			TotalPrice:   total,
			Status:       domain.StatusPending,
		}
		return nil
	})
	if err != nil {
		return models.BookingConfirmation{}, wrapInternal(err)
	}
	return out, nil
}

// Cancel moves an owned booking to cancelled and returns its room. This is
// the only path that gives inventory back; completed bookings consumed
// their room and keep it.
func (s BookingService) Cancel(ctx context.Context, userID, bookingID int64) error {
	err := db.WithTx(ctx, s.DB, func(tx *sql.Tx) error {
		booking, err := s.Bookings.FindOwnedForUpdate(ctx, tx, bookingID, userID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.NotFoundError{Resource: "booking", Err: err}
			}
			return err
		}

		switch booking.Status {
		case domain.StatusCancelled:
			return domain.InvalidStateError{From: booking.Status, To: domain.StatusCancelled, Msg: "booking already cancelled"}
		case domain.StatusCompleted:
			return domain.InvalidStateError{From: booking.Status, To: domain.StatusCancelled, Msg: "cannot cancel a completed booking"}
		}

		if err := s.Bookings.UpdateStatus(ctx, tx, booking.ID, domain.StatusCancelled); err != nil {
			return err
		}
		return s.Hotels.IncrementRooms(ctx, tx, booking.HotelID)
	})
	return wrapInternal(err)
}

// Confirm moves a pending booking to confirmed. Only the operator owning
// the booking's hotel may do it. Inventory does not change.
func (s BookingService) Confirm(ctx context.Context, operatorID, bookingID int64) error {
	return s.transition(ctx, operatorID, bookingID, domain.StatusConfirmed, "only pending bookings can be confirmed")
}

// Complete moves a confirmed booking to completed. The room stays consumed.
func (s BookingService) Complete(ctx context.Context, operatorID, bookingID int64) error {
	return s.transition(ctx, operatorID, bookingID, domain.StatusCompleted, "only confirmed bookings can be completed")
}

func (s BookingService) transition(ctx context.Context, operatorID, bookingID int64, to domain.BookingStatus, guardMsg string) error {
	err := db.WithTx(ctx, s.DB, func(tx *sql.Tx) error {
		booking, hotelOperatorID, err := s.Bookings.FindWithOperatorForUpdate(ctx, tx, bookingID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.NotFoundError{Resource: "booking", Err: err}
			}
			return err
		}

		if hotelOperatorID != operatorID {
			return domain.ForbiddenError{Msg: "no permission to operate this booking"}
		}
		if !booking.Status.CanTransition(to) {
			return domain.InvalidStateError{From: booking.Status, To: to, Msg: guardMsg}
		}

		return s.Bookings.UpdateStatus(ctx, tx, booking.ID, to)
	})
	return wrapInternal(err)
}

func (s BookingService) ListForUser(ctx context.Context, userID int64) ([]models.BookingView, error) {
	views, err := s.Bookings.ListByUser(ctx, s.DB, userID)
	if err != nil {
		return nil, wrapInternal(err)
	}
	return views, nil
}

func (s BookingService) ListForOperator(ctx context.Context, operatorID int64) ([]models.OperatorBookingView, error) {
	views, err := s.Bookings.ListByOperator(ctx, s.DB, operatorID)
	if err != nil {
		return nil, wrapInternal(err)
	}
	return views, nil
}

// GetForUser fetches one booking scoped to its owner. A booking that exists
// but belongs to someone else reads as not found.
func (s BookingService) GetForUser(ctx context.Context, userID, bookingID int64) (models.BookingDetail, error) {
	detail, err := s.Bookings.FindDetailForUser(ctx, s.DB, bookingID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.BookingDetail{}, domain.NotFoundError{Resource: "booking", Err: err}
		}
		return models.BookingDetail{}, wrapInternal(err)
	}
	return detail, nil
}
