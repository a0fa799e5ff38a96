package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"wanderlust-backend/internal/domain"
	"wanderlust-backend/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func newBookingService(t *testing.T) (BookingService, sqlmock.Sqlmock, func()) {
	t.Helper()
	dbh, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	svc := BookingService{
		DB:       dbh,
		Bookings: repositories.BookingRepository{},
		Hotels:   repositories.HotelRepository{},
	}
	return svc, mock, func() { dbh.Close() }
}

func hotelRow(id int64, name string, price float64, rooms int, operatorID int64) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "name", "address", "description", "price", "available_rooms", "operator_id", "created_at", "updated_at",
	}).AddRow(id, name, "1 Beach Road", "", price, rooms, operatorID, now, now)
}

func expectMet(t *testing.T, mock sqlmock.Sqlmock) {
	t.Helper()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateBookingSuccess(t *testing.T) {
	svc, mock, done := newBookingService(t)
	defer done()

	checkIn := time.Date(2030, 5, 1, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2030, 5, 4, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM hotels WHERE id = \? FOR UPDATE`).
		WithArgs(int64(7)).
		WillReturnRows(hotelRow(7, "Grand Palm", 500, 3, 42))
	mock.ExpectExec(`INSERT INTO bookings`).
		WithArgs(int64(3), int64(7), checkIn, checkOut, 2, "late arrival", 1500.0, "pending").
		WillReturnResult(sqlmock.NewResult(101, 1))
	mock.ExpectExec(`available_rooms = available_rooms - 1`).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	out, err := svc.Create(context.Background(), 3, CreateBookingInput{
		HotelID:         7,
		CheckInDate:     "2030-05-01",
		CheckOutDate:    "2030-05-04",
		GuestCount:      2,
		SpecialRequests: "late arrival",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if out.ID != 101 {
		t.Fatalf("booking id = %d, want 101", out.ID)
	}
	if out.TotalPrice != 1500 {
		t.Fatalf("total price = %v, want 1500 (3 nights x 500)", out.TotalPrice)
	}
	if out.Status != domain.StatusPending {
		t.Fatalf("status = %s, want pending", out.Status)
	}
	if out.HotelName != "Grand Palm" {
		t.Fatalf("hotel name = %q", out.HotelName)
	}
	expectMet(t, mock)
}

func TestCreateBookingHotelFull(t *testing.T) {
	svc, mock, done := newBookingService(t)
	defer done()

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM hotels WHERE id = \? FOR UPDATE`).
		WithArgs(int64(7)).
		WillReturnRows(hotelRow(7, "Grand Palm", 500, 0, 42))
	mock.ExpectRollback()

	_, err := svc.Create(context.Background(), 3, CreateBookingInput{
		HotelID:      7,
		CheckInDate:  "2030-05-01",
		CheckOutDate: "2030-05-04",
		GuestCount:   2,
	})
	if !domain.IsNoRooms(err) {
		t.Fatalf("expected no-rooms error, got %v", err)
	}
	expectMet(t, mock)
}

func TestCreateBookingLostRaceOnDecrement(t *testing.T) {
	svc, mock, done := newBookingService(t)
	defer done()

	checkIn := time.Date(2030, 5, 1, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2030, 5, 4, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM hotels WHERE id = \? FOR UPDATE`).
		WithArgs(int64(7)).
		WillReturnRows(hotelRow(7, "Grand Palm", 500, 1, 42))
	mock.ExpectExec(`INSERT INTO bookings`).
		WithArgs(int64(3), int64(7), checkIn, checkOut, 2, "", 1500.0, "pending").
		WillReturnResult(sqlmock.NewResult(101, 1))
	mock.ExpectExec(`available_rooms = available_rooms - 1`).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := svc.Create(context.Background(), 3, CreateBookingInput{
		HotelID:      7,
		CheckInDate:  "2030-05-01",
		CheckOutDate: "2030-05-04",
		GuestCount:   2,
	})
	if !domain.IsNoRooms(err) {
		t.Fatalf("expected no-rooms error when the guarded decrement misses, got %v", err)
	}
	expectMet(t, mock)
}

func TestCreateBookingMissingHotel(t *testing.T) {
	svc, mock, done := newBookingService(t)
	defer done()

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM hotels WHERE id = \? FOR UPDATE`).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	_, err := svc.Create(context.Background(), 3, CreateBookingInput{
		HotelID:      99,
		CheckInDate:  "2030-05-01",
		CheckOutDate: "2030-05-04",
		GuestCount:   2,
	})
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
	expectMet(t, mock)
}

func TestCreateBookingRejectsPastCheckIn(t *testing.T) {
	svc, mock, done := newBookingService(t)
	defer done()

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM hotels WHERE id = \? FOR UPDATE`).
		WithArgs(int64(7)).
		WillReturnRows(hotelRow(7, "Grand Palm", 500, 3, 42))
	mock.ExpectRollback()

	_, err := svc.Create(context.Background(), 3, CreateBookingInput{
		HotelID:      7,
		CheckInDate:  "2020-01-01",
		CheckOutDate: "2020-01-02",
		GuestCount:   2,
	})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	expectMet(t, mock)
}

func TestCreateBookingRejectsInvertedDates(t *testing.T) {
	svc, mock, done := newBookingService(t)
	defer done()

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM hotels WHERE id = \? FOR UPDATE`).
		WithArgs(int64(7)).
		WillReturnRows(hotelRow(7, "Grand Palm", 500, 3, 42))
	mock.ExpectRollback()

	_, err := svc.Create(context.Background(), 3, CreateBookingInput{
		HotelID:      7,
		CheckInDate:  "2030-05-04",
		CheckOutDate: "2030-05-04",
		GuestCount:   2,
	})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error for check-out not after check-in, got %v", err)
	}
	expectMet(t, mock)
}

func TestCreateBookingRejectsGuestCount(t *testing.T) {
	svc, mock, done := newBookingService(t)
	defer done()

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM hotels WHERE id = \? FOR UPDATE`).
		WithArgs(int64(7)).
		WillReturnRows(hotelRow(7, "Grand Palm", 500, 3, 42))
	mock.ExpectRollback()

	_, err := svc.Create(context.Background(), 3, CreateBookingInput{
		HotelID:      7,
		CheckInDate:  "2030-05-01",
		CheckOutDate: "2030-05-04",
		GuestCount:   11,
	})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error for 11 guests, got %v", err)
	}
	expectMet(t, mock)
}

func TestCreateBookingRejectsEmptyInput(t *testing.T) {
	svc, mock, done := newBookingService(t)
	defer done()

	// Presence checks fail before any transaction is opened.
	_, err := svc.Create(context.Background(), 3, CreateBookingInput{HotelID: 7, GuestCount: 2})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error for missing dates, got %v", err)
	}
	expectMet(t, mock)
}

func TestCancelBookingReturnsRoom(t *testing.T) {
	svc, mock, done := newBookingService(t)
	defer done()

	mock.ExpectBegin()
	mock.ExpectQuery(`WHERE id = \? AND user_id = \? FOR UPDATE`).
		WithArgs(int64(9), int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "hotel_id", "status"}).
			AddRow(9, 3, 7, "pending"))
	mock.ExpectExec(`UPDATE bookings SET status`).
		WithArgs("cancelled", int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`available_rooms = available_rooms \+ 1`).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := svc.Cancel(context.Background(), 3, 9); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	expectMet(t, mock)
}

func TestCancelCompletedBooking(t *testing.T) {
	svc, mock, done := newBookingService(t)
	defer done()

	mock.ExpectBegin()
	mock.ExpectQuery(`WHERE id = \? AND user_id = \? FOR UPDATE`).
		WithArgs(int64(9), int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "hotel_id", "status"}).
			AddRow(9, 3, 7, "completed"))
	mock.ExpectRollback()

	err := svc.Cancel(context.Background(), 3, 9)
	if !domain.IsInvalidState(err) {
		t.Fatalf("expected invalid-state error, got %v", err)
	}
	expectMet(t, mock)
}

func TestCancelForeignBooking(t *testing.T) {
	svc, mock, done := newBookingService(t)
	defer done()

	mock.ExpectBegin()
	mock.ExpectQuery(`WHERE id = \? AND user_id = \? FOR UPDATE`).
		WithArgs(int64(9), int64(4)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	err := svc.Cancel(context.Background(), 4, 9)
	if !domain.IsNotFound(err) {
		t.Fatalf("someone else's booking must read as not found, got %v", err)
	}
	expectMet(t, mock)
}

func TestConfirmBooking(t *testing.T) {
	svc, mock, done := newBookingService(t)
	defer done()

	mock.ExpectBegin()
	mock.ExpectQuery(`WHERE b.id = \? FOR UPDATE`).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "hotel_id", "status", "operator_id"}).
			AddRow(9, 3, 7, "pending", 42))
	mock.ExpectExec(`UPDATE bookings SET status`).
		WithArgs("confirmed", int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := svc.Confirm(context.Background(), 42, 9); err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	expectMet(t, mock)
}

func TestConfirmBookingWrongOperator(t *testing.T) {
	svc, mock, done := newBookingService(t)
	defer done()

	mock.ExpectBegin()
	mock.ExpectQuery(`WHERE b.id = \? FOR UPDATE`).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "hotel_id", "status", "operator_id"}).
			AddRow(9, 3, 7, "pending", 42))
	mock.ExpectRollback()

	err := svc.Confirm(context.Background(), 41, 9)
	if !domain.IsForbidden(err) {
		t.Fatalf("expected forbidden error, got %v", err)
	}
	expectMet(t, mock)
}

func TestCompletePendingBooking(t *testing.T) {
	svc, mock, done := newBookingService(t)
	defer done()

	mock.ExpectBegin()
	mock.ExpectQuery(`WHERE b.id = \? FOR UPDATE`).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "hotel_id", "status", "operator_id"}).
			AddRow(9, 3, 7, "pending", 42))
	mock.ExpectRollback()

	err := svc.Complete(context.Background(), 42, 9)
	if !domain.IsInvalidState(err) {
		t.Fatalf("pending bookings must not complete directly, got %v", err)
	}
	expectMet(t, mock)
}

func TestGetForUserMissing(t *testing.T) {
	svc, mock, done := newBookingService(t)
	defer done()

	mock.ExpectQuery(`WHERE b.id = \? AND b.user_id = \?`).
		WithArgs(int64(9), int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := svc.GetForUser(context.Background(), 99, 9)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
	expectMet(t, mock)
}
