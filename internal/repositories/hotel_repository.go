package repositories

import (
	"context"
	"strings"

	"wanderlust-backend/internal/db"
	"wanderlust-backend/internal/domain/models"
)

// HotelRepository owns SQL access to the hotels table. Methods take a
// db.Queryer so callers decide whether they run inside a transaction.
type HotelRepository struct{}

const hotelColumns = `id, name, address, COALESCE(description, ''), price, available_rooms, operator_id, created_at, updated_at`

func scanHotel(row interface{ Scan(dest ...any) error }) (models.Hotel, error) {
	var h models.Hotel
	err := row.Scan(
		&h.ID,
		&h.Name,
		&h.Address,
		&h.Description,
		&h.Price,
		&h.AvailableRooms,
		&h.OperatorID,
		&h.CreatedAt,
		&h.UpdatedAt,
	)
	return h, err
}

func (r HotelRepository) FindByID(ctx context.Context, q db.Queryer, id int64) (models.Hotel, error) {
	row := q.QueryRowContext(ctx, `SELECT `+hotelColumns+` FROM hotels WHERE id = ?`, id)
	return scanHotel(row)
}

// FindByIDForUpdate locks the hotel row for the rest of the transaction so
// the availability check and the decrement act on the same value.
func (r HotelRepository) FindByIDForUpdate(ctx context.Context, q db.Queryer, id int64) (models.Hotel, error) {
	row := q.QueryRowContext(ctx, `SELECT `+hotelColumns+` FROM hotels WHERE id = ? FOR UPDATE`, id)
	return scanHotel(row)
}

func (r HotelRepository) List(ctx context.Context, q db.Queryer, nameFilter string) ([]models.Hotel, error) {
	query := `SELECT ` + hotelColumns + ` FROM hotels`
	args := []any{}
	if f := strings.TrimSpace(nameFilter); f != "" {
		query += ` WHERE name LIKE ?`
		args = append(args, "%"+f+"%")
	}
	query += ` ORDER BY id`

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hotels := []models.Hotel{}
	for rows.Next() {
		h, err := scanHotel(rows)
		if err != nil {
			return nil, err
		}
		hotels = append(hotels, h)
	}
	return hotels, rows.Err()
}

func (r HotelRepository) Insert(ctx context.Context, q db.Queryer, h models.Hotel) (int64, error) {
	res, err := q.ExecContext(ctx, `
		INSERT INTO hotels (name, address, description, price, available_rooms, operator_id)
		VALUES (?, ?, ?, ?, ?, ?)
	`, h.Name, h.Address, h.Description, h.Price, h.AvailableRooms, h.OperatorID)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Update performs PATCH-style updates based on key presence.
func (r HotelRepository) Update(ctx context.Context, q db.Queryer, id int64, upd models.HotelUpdate) error {
	sets := []string{}
	args := []any{}

	if upd.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, strings.TrimSpace(*upd.Name))
	}
	if upd.Address != nil {
		sets = append(sets, "address = ?")
		args = append(args, strings.TrimSpace(*upd.Address))
	}
	if upd.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, strings.TrimSpace(*upd.Description))
	}
	if upd.Price != nil {
		sets = append(sets, "price = ?")
		args = append(args, *upd.Price)
	}
	if upd.AvailableRooms != nil {
		sets = append(sets, "available_rooms = ?")
		args = append(args, *upd.AvailableRooms)
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	_, err := q.ExecContext(ctx, `UPDATE hotels SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	return err
}

func (r HotelRepository) Delete(ctx context.Context, q db.Queryer, id int64) error {
	_, err := q.ExecContext(ctx, `DELETE FROM hotels WHERE id = ?`, id)
	return err
}

// DecrementRooms takes one room, but only while at least one is left.
// Returns false when the guard did not match, i.e. the hotel is full.
func (r HotelRepository) DecrementRooms(ctx context.Context, q db.Queryer, id int64) (bool, error) {
	res, err := q.ExecContext(ctx, `
		UPDATE hotels SET available_rooms = available_rooms - 1
		WHERE id = ? AND available_rooms > 0
	`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// IncrementRooms hands one room back on cancellation.
func (r HotelRepository) IncrementRooms(ctx context.Context, q db.Queryer, id int64) error {
	_, err := q.ExecContext(ctx, `
		UPDATE hotels SET available_rooms = available_rooms + 1
		WHERE id = ?
	`, id)
	return err
}
