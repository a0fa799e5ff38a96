package repositories

import (
	"context"
	"time"

	"wanderlust-backend/internal/db"
	"wanderlust-backend/internal/domain"
	"wanderlust-backend/internal/domain/models"
	"wanderlust-backend/internal/utils"
)

// BookingRepository owns SQL access to the bookings table. Reads that feed
// API responses are explicit joins returning plain view structs.
type BookingRepository struct{}

func (r BookingRepository) Insert(ctx context.Context, q db.Queryer, b models.Booking) (int64, error) {
	res, err := q.ExecContext(ctx, `
		INSERT INTO bookings
			(user_id, hotel_id, check_in_date, check_out_date, guest_count, special_requests, total_price, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		b.UserID,
		b.HotelID,
		b.CheckInDate,
		b.CheckOutDate,
		b.GuestCount,
		b.SpecialRequests,
		b.TotalPrice,
		string(b.Status),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// FindOwnedForUpdate locks the booking row, scoped to its owner. Bookings
// of other users are indistinguishable from missing ones.
func (r BookingRepository) FindOwnedForUpdate(ctx context.Context, q db.Queryer, id, userID int64) (models.Booking, error) {
	var b models.Booking
	var status string
	err := q.QueryRowContext(ctx, `
		SELECT id, user_id, hotel_id, status FROM bookings
		WHERE id = ? AND user_id = ? FOR UPDATE
	`, id, userID).Scan(&b.ID, &b.UserID, &b.HotelID, &status)
	if err != nil {
		return models.Booking{}, err
	}
	b.Status = domain.BookingStatus(status)
	return b, nil
}

// FindWithOperatorForUpdate locks the booking row and resolves the owning
// hotel's operator in the same statement.
func (r BookingRepository) FindWithOperatorForUpdate(ctx context.Context, q db.Queryer, id int64) (models.Booking, int64, error) {
	var b models.Booking
	var status string
	var operatorID int64
	err := q.QueryRowContext(ctx, `
		SELECT b.id, b.user_id, b.hotel_id, b.status, h.operator_id
		FROM bookings b
		JOIN hotels h ON h.id = b.hotel_id
		WHERE b.id = ? FOR UPDATE
	`, id).Scan(&b.ID, &b.UserID, &b.HotelID, &status, &operatorID)
	if err != nil {
		return models.Booking{}, 0, err
	}
	b.Status = domain.BookingStatus(status)
	return b, operatorID, nil
}

func (r BookingRepository) UpdateStatus(ctx context.Context, q db.Queryer, id int64, status domain.BookingStatus) error {
	_, err := q.ExecContext(ctx, `
		UPDATE bookings SET status = ?, updated_at = NOW() WHERE id = ?
	`, string(status), id)
	return err
}

const bookingViewColumns = `
	b.id, h.name, h.address,
	b.check_in_date, b.check_out_date, b.guest_count,
	b.total_price, b.status, COALESCE(b.special_requests, ''), b.created_at`

func scanBookingView(row interface{ Scan(dest ...any) error }, extra ...any) (models.BookingView, error) {
	var v models.BookingView
	var checkIn, checkOut, createdAt time.Time
	var status string
	dest := []any{
		&v.ID, &v.HotelName, &v.HotelAddress,
		&checkIn, &checkOut, &v.GuestCount,
		&v.TotalPrice, &status, &v.SpecialRequests, &createdAt,
	}
	dest = append(dest, extra...)
	if err := row.Scan(dest...); err != nil {
		return models.BookingView{}, err
	}
	v.CheckInDate = utils.FormatDate(checkIn)
	v.CheckOutDate = utils.FormatDate(checkOut)
	v.CreatedAt = utils.FormatDateTime(createdAt)
	v.Status = domain.BookingStatus(status)
	return v, nil
}

// ListByUser returns the caller's bookings, newest first, joined with the
// hotel display fields.
func (r BookingRepository) ListByUser(ctx context.Context, q db.Queryer, userID int64) ([]models.BookingView, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT `+bookingViewColumns+`
		FROM bookings b
		JOIN hotels h ON h.id = b.hotel_id
		WHERE b.user_id = ?
		ORDER BY b.created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := []models.BookingView{}
	for rows.Next() {
		v, err := scanBookingView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, rows.Err()
}

// ListByOperator returns bookings across every hotel the operator owns,
// newest first, including the requesting guest's email.
func (r BookingRepository) ListByOperator(ctx context.Context, q db.Queryer, operatorID int64) ([]models.OperatorBookingView, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT `+bookingViewColumns+`, u.email
		FROM bookings b
		JOIN hotels h ON h.id = b.hotel_id
		JOIN users u ON u.id = b.user_id
		WHERE h.operator_id = ?
		ORDER BY b.created_at DESC
	`, operatorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := []models.OperatorBookingView{}
	for rows.Next() {
		var email string
		v, err := scanBookingView(rows, &email)
		if err != nil {
			return nil, err
		}
		views = append(views, models.OperatorBookingView{BookingView: v, UserEmail: email})
	}
	return views, rows.Err()
}

// FindDetailForUser fetches one booking scoped to its owner, joined with
// the hotel display fields and description.
func (r BookingRepository) FindDetailForUser(ctx context.Context, q db.Queryer, id, userID int64) (models.BookingDetail, error) {
	row := q.QueryRowContext(ctx, `
		SELECT `+bookingViewColumns+`, COALESCE(h.description, '')
		FROM bookings b
		JOIN hotels h ON h.id = b.hotel_id
		WHERE b.id = ? AND b.user_id = ?
	`, id, userID)

	var description string
	v, err := scanBookingView(row, &description)
	if err != nil {
		return models.BookingDetail{}, err
	}
	return models.BookingDetail{BookingView: v, HotelDescription: description}, nil
}
