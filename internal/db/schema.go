package db

import (
	"context"
	"database/sql"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var schemaDDL = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		email VARCHAR(255) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		role ENUM('user','operator') NOT NULL,
		avatar VARCHAR(512) NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		UNIQUE KEY uniq_email (email)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS hotels (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		address VARCHAR(512) NOT NULL,
		description TEXT NULL,
		price DECIMAL(10,2) NOT NULL,
		available_rooms INT NOT NULL,
		operator_id BIGINT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		KEY idx_operator (operator_id),
		CONSTRAINT fk_hotels_operator FOREIGN KEY (operator_id) REFERENCES users(id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS bookings (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		user_id BIGINT NOT NULL,
		hotel_id BIGINT NOT NULL,
		check_in_date DATE NOT NULL,
		check_out_date DATE NOT NULL,
		guest_count INT NOT NULL,
		special_requests TEXT NULL,
		total_price DECIMAL(10,2) NOT NULL,
		status ENUM('pending','confirmed','cancelled','completed') NOT NULL DEFAULT 'pending',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		KEY idx_user (user_id),
		KEY idx_hotel (hotel_id),
		CONSTRAINT fk_bookings_user FOREIGN KEY (user_id) REFERENCES users(id),
		CONSTRAINT fk_bookings_hotel FOREIGN KEY (hotel_id) REFERENCES hotels(id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS favorites (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		user_id BIGINT NOT NULL,
		hotel_id BIGINT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		UNIQUE KEY uniq_user_hotel (user_id, hotel_id),
		KEY idx_fav_hotel (hotel_id),
		CONSTRAINT fk_favorites_user FOREIGN KEY (user_id) REFERENCES users(id),
		CONSTRAINT fk_favorites_hotel FOREIGN KEY (hotel_id) REFERENCES hotels(id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
}

// EnsureSchema creates the tables on first boot. Statements are idempotent.
func EnsureSchema(ctx context.Context, d *sql.DB) error {
	for _, ddl := range schemaDDL {
		if _, err := d.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// SeedDemo inserts a demo operator, a demo guest and a few hotels so a
// fresh install has something to browse. No-op when users already exist.
func SeedDemo(ctx context.Context, d *sql.DB) error {
	var count int
	if err := d.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return fmt.Errorf("seed demo: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed demo: %w", err)
	}

	res, err := d.ExecContext(ctx, `
		INSERT INTO users (email, password_hash, role) VALUES (?, ?, 'operator')
	`, "operator@wanderlust.com", string(hash))
	if err != nil {
		return fmt.Errorf("seed demo: %w", err)
	}
	operatorID, _ := res.LastInsertId()

	if _, err := d.ExecContext(ctx, `
		INSERT INTO users (email, password_hash, role) VALUES (?, ?, 'user')
	`, "user@wanderlust.com", string(hash)); err != nil {
		return fmt.Errorf("seed demo: %w", err)
	}

	hotels := []struct {
		name, address, description string
		price                      float64
		rooms                      int
	}{
		{
			"The Ritz-Carlton Beijing",
			"83 Jianguomen Outer St, Chaoyang, Beijing",
			"Luxury five-star hotel in the heart of Beijing CBD, adjacent to the World Trade Center.",
			1288, 15,
		},
		{
			"Waldorf Astoria Shanghai on the Bund",
			"No.2 Zhongshan Dong Yi Road, Huangpu, Shanghai",
			"Historic Bund address with views of the Huangpu River and Lujiazui skyline.",
			1688, 8,
		},
		{
			"White Swan Hotel Guangzhou",
			"No.1 Shamian South St, Liwan, Guangzhou",
			"On picturesque Shamian Island, the first five-star hotel in China.",
			988, 22,
		},
		{
			"Shangri-La Hotel Shenzhen Futian",
			"4088 Yitian Rd, Futian, Shenzhen",
			"Center of Futian next to Shopping Park Metro Station.",
			1188, 12,
		},
	}
	for _, h := range hotels {
		if _, err := d.ExecContext(ctx, `
			INSERT INTO hotels (name, address, description, price, available_rooms, operator_id)
			VALUES (?, ?, ?, ?, ?, ?)
		`, h.name, h.address, h.description, h.price, h.rooms, operatorID); err != nil {
			return fmt.Errorf("seed demo: %w", err)
		}
	}

	return nil
}
