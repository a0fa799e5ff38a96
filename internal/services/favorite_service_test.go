package services

import (
	"context"
	"database/sql"
	"testing"

	"wanderlust-backend/internal/domain"
	"wanderlust-backend/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
)

func newFavoriteService(t *testing.T) (FavoriteService, sqlmock.Sqlmock, func()) {
	t.Helper()
	dbh, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	svc := FavoriteService{
		DB:        dbh,
		Favorites: repositories.FavoriteRepository{},
		Hotels:    repositories.HotelRepository{},
	}
	return svc, mock, func() { dbh.Close() }
}

func TestAddFavoriteUnknownHotel(t *testing.T) {
	svc, mock, done := newFavoriteService(t)
	defer done()

	mock.ExpectQuery(`FROM hotels WHERE id = \?`).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	if err := svc.Add(context.Background(), 3, 99); !domain.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
	expectMet(t, mock)
}

func TestAddFavoriteDuplicate(t *testing.T) {
	svc, mock, done := newFavoriteService(t)
	defer done()

	mock.ExpectQuery(`FROM hotels WHERE id = \?`).
		WithArgs(int64(7)).
		WillReturnRows(hotelRow(7, "Grand Palm", 500, 3, 42))
	mock.ExpectExec(`INSERT INTO favorites`).
		WithArgs(int64(3), int64(7)).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

	if err := svc.Add(context.Background(), 3, 7); !domain.IsConflict(err) {
		t.Fatalf("expected conflict error, got %v", err)
	}
	expectMet(t, mock)
}

func TestRemoveFavoriteMissing(t *testing.T) {
	svc, mock, done := newFavoriteService(t)
	defer done()

	mock.ExpectExec(`DELETE FROM favorites`).
		WithArgs(int64(3), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := svc.Remove(context.Background(), 3, 7); !domain.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
	expectMet(t, mock)
}
