package services

import (
	"context"
	"database/sql"
	"errors"

	"wanderlust-backend/internal/domain"
	"wanderlust-backend/internal/domain/models"
	"wanderlust-backend/internal/repositories"

	"github.com/go-sql-driver/mysql"
)

const mysqlErrDuplicateEntry = 1062

type FavoriteService struct {
	DB        *sql.DB
	Favorites repositories.FavoriteRepository
	Hotels    repositories.HotelRepository
}

func (s FavoriteService) List(ctx context.Context, userID int64) ([]models.FavoriteHotel, error) {
	hotels, err := s.Favorites.ListByUser(ctx, s.DB, userID)
	if err != nil {
		return nil, wrapInternal(err)
	}
	return hotels, nil
}

// Add favorites a hotel for the caller. The unique (user, hotel) key turns
// a duplicate into a conflict instead of a second row.
func (s FavoriteService) Add(ctx context.Context, userID, hotelID int64) error {
	if hotelID <= 0 {
		return domain.ValidationError{Field: "hotelId", Msg: "is required"}
	}

	if _, err := s.Hotels.FindByID(ctx, s.DB, hotelID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NotFoundError{Resource: "hotel", Err: err}
		}
		return wrapInternal(err)
	}

	if err := s.Favorites.Insert(ctx, s.DB, userID, hotelID); err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == mysqlErrDuplicateEntry {
			return domain.ConflictError{Resource: "favorite", Msg: "already favorited this hotel", Err: err}
		}
		return wrapInternal(err)
	}
	return nil
}

func (s FavoriteService) Remove(ctx context.Context, userID, hotelID int64) error {
	removed, err := s.Favorites.Delete(ctx, s.DB, userID, hotelID)
	if err != nil {
		return wrapInternal(err)
	}
	if !removed {
		return domain.NotFoundError{Resource: "favorite"}
	}
	return nil
}

func (s FavoriteService) Check(ctx context.Context, userID, hotelID int64) (bool, error) {
	exists, err := s.Favorites.Exists(ctx, s.DB, userID, hotelID)
	if err != nil {
		return false, wrapInternal(err)
	}
	return exists, nil
}
