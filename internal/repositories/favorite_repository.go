package repositories

import (
	"context"

	"wanderlust-backend/internal/db"
	"wanderlust-backend/internal/domain/models"
)

type FavoriteRepository struct{}

// ListByUser returns the caller's favorited hotels with current listing data.
func (r FavoriteRepository) ListByUser(ctx context.Context, q db.Queryer, userID int64) ([]models.FavoriteHotel, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT h.id, h.name, h.address, h.price, h.available_rooms
		FROM favorites f
		JOIN hotels h ON h.id = f.hotel_id
		WHERE f.user_id = ?
		ORDER BY f.created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hotels := []models.FavoriteHotel{}
	for rows.Next() {
		var h models.FavoriteHotel
		if err := rows.Scan(&h.ID, &h.Name, &h.Address, &h.Price, &h.AvailableRooms); err != nil {
			return nil, err
		}
		hotels = append(hotels, h)
	}
	return hotels, rows.Err()
}

// Insert relies on the unique (user_id, hotel_id) key to reject duplicates.
func (r FavoriteRepository) Insert(ctx context.Context, q db.Queryer, userID, hotelID int64) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO favorites (user_id, hotel_id) VALUES (?, ?)
	`, userID, hotelID)
	return err
}

// Delete removes the pair and reports whether it existed.
func (r FavoriteRepository) Delete(ctx context.Context, q db.Queryer, userID, hotelID int64) (bool, error) {
	res, err := q.ExecContext(ctx, `
		DELETE FROM favorites WHERE user_id = ? AND hotel_id = ?
	`, userID, hotelID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r FavoriteRepository) Exists(ctx context.Context, q db.Queryer, userID, hotelID int64) (bool, error) {
	var count int
	err := q.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM favorites WHERE user_id = ? AND hotel_id = ?
	`, userID, hotelID).Scan(&count)
	return count > 0, err
}
