package services

import (
	"context"
	"database/sql"
	"testing"

	"wanderlust-backend/internal/domain"
	"wanderlust-backend/internal/domain/models"
	"wanderlust-backend/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func newHotelService(t *testing.T) (HotelService, sqlmock.Sqlmock, func()) {
	t.Helper()
	dbh, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	svc := HotelService{DB: dbh, Hotels: repositories.HotelRepository{}}
	return svc, mock, func() { dbh.Close() }
}

func TestGetHotelMissing(t *testing.T) {
	svc, mock, done := newHotelService(t)
	defer done()

	mock.ExpectQuery(`FROM hotels WHERE id = \?`).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := svc.Get(context.Background(), 99)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
	expectMet(t, mock)
}

func TestCreateHotelRejectsBadInput(t *testing.T) {
	svc, mock, done := newHotelService(t)
	defer done()

	cases := []CreateHotelInput{
		{Address: "somewhere", Price: 100, AvailableRooms: 5},
		{Name: "Hotel", Price: 100, AvailableRooms: 5},
		{Name: "Hotel", Address: "somewhere", Price: 0, AvailableRooms: 5},
		{Name: "Hotel", Address: "somewhere", Price: 100, AvailableRooms: 0},
	}
	for i, in := range cases {
		if _, err := svc.Create(context.Background(), 42, in); !domain.IsValidation(err) {
			t.Fatalf("case %d: expected validation error, got %v", i, err)
		}
	}
	expectMet(t, mock)
}

func TestUpdateHotelWrongOperator(t *testing.T) {
	svc, mock, done := newHotelService(t)
	defer done()

	mock.ExpectQuery(`FROM hotels WHERE id = \?`).
		WithArgs(int64(7)).
		WillReturnRows(hotelRow(7, "Grand Palm", 500, 3, 42))

	name := "Renamed"
	_, err := svc.Update(context.Background(), 41, 7, models.HotelUpdate{Name: &name})
	if !domain.IsForbidden(err) {
		t.Fatalf("expected forbidden error, got %v", err)
	}
	expectMet(t, mock)
}

func TestDeleteHotelWrongOperator(t *testing.T) {
	svc, mock, done := newHotelService(t)
	defer done()

	mock.ExpectQuery(`FROM hotels WHERE id = \?`).
		WithArgs(int64(7)).
		WillReturnRows(hotelRow(7, "Grand Palm", 500, 3, 42))

	if err := svc.Delete(context.Background(), 41, 7); !domain.IsForbidden(err) {
		t.Fatalf("expected forbidden error, got %v", err)
	}
	expectMet(t, mock)
}

func TestUpdateHotelRejectsNegativeRooms(t *testing.T) {
	svc, mock, done := newHotelService(t)
	defer done()

	mock.ExpectQuery(`FROM hotels WHERE id = \?`).
		WithArgs(int64(7)).
		WillReturnRows(hotelRow(7, "Grand Palm", 500, 3, 42))

	rooms := -1
	_, err := svc.Update(context.Background(), 42, 7, models.HotelUpdate{AvailableRooms: &rooms})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	expectMet(t, mock)
}
