package repositories

import (
	"context"

	"wanderlust-backend/internal/db"
	"wanderlust-backend/internal/domain"
	"wanderlust-backend/internal/domain/models"
)

type UserRepository struct{}

const userColumns = `id, email, password_hash, role, COALESCE(avatar, ''), created_at, updated_at`

func scanUser(row interface{ Scan(dest ...any) error }) (models.User, error) {
	var u models.User
	var role string
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &role, &u.Avatar, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return models.User{}, err
	}
	u.Role = domain.Role(role)
	return u, nil
}

func (r UserRepository) FindByEmail(ctx context.Context, q db.Queryer, email string) (models.User, error) {
	row := q.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	return scanUser(row)
}

func (r UserRepository) FindByID(ctx context.Context, q db.Queryer, id int64) (models.User, error) {
	row := q.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r UserRepository) EmailExists(ctx context.Context, q db.Queryer, email string) (bool, error) {
	var count int
	err := q.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE email = ?`, email).Scan(&count)
	return count > 0, err
}

func (r UserRepository) Insert(ctx context.Context, q db.Queryer, u models.User) (int64, error) {
	res, err := q.ExecContext(ctx, `
		INSERT INTO users (email, password_hash, role) VALUES (?, ?, ?)
	`, u.Email, u.PasswordHash, string(u.Role))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r UserRepository) UpdatePassword(ctx context.Context, q db.Queryer, id int64, hash string) error {
	_, err := q.ExecContext(ctx, `
		UPDATE users SET password_hash = ?, updated_at = NOW() WHERE id = ?
	`, hash, id)
	return err
}
