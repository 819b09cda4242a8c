package database

import (
	"context"
	"database/sql"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS accounts (
		id            BIGSERIAL PRIMARY KEY,
		username      TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role          TEXT NOT NULL DEFAULT 'renter',
		status        TEXT NOT NULL DEFAULT 'ACTIVE'
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id         BIGSERIAL PRIMARY KEY,
		account_id BIGINT NOT NULL REFERENCES accounts(id),
		full_name  TEXT NOT NULL,
		email      TEXT NOT NULL UNIQUE,
		phone      TEXT,
		avatar_url TEXT,
		address    TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS hostels (
		id          BIGSERIAL PRIMARY KEY,
		owner_id    BIGINT NOT NULL REFERENCES users(id),
		name        TEXT NOT NULL,
		address     TEXT,
		province    TEXT,
		district    TEXT,
		ward        TEXT,
		description TEXT,
		status      TEXT NOT NULL DEFAULT 'ACTIVE'
	)`,
	`CREATE TABLE IF NOT EXISTS rooms (
		id        BIGSERIAL PRIMARY KEY,
		owner_id  BIGINT NOT NULL REFERENCES users(id),
		hostel_id BIGINT REFERENCES hostels(id),
		title     TEXT NOT NULL,
		area      DOUBLE PRECISION,
		price     NUMERIC(12,2) NOT NULL,
		deposit   NUMERIC(12,2) NOT NULL DEFAULT 0,
		utilities TEXT,
		status    TEXT NOT NULL DEFAULT 'available'
	)`,
	`CREATE TABLE IF NOT EXISTS posts (
		id          BIGSERIAL PRIMARY KEY,
		room_id     BIGINT NOT NULL REFERENCES rooms(id),
		title       TEXT NOT NULL,
		description TEXT,
		status      TEXT NOT NULL DEFAULT 'VISIBLE',
		images      JSONB NOT NULL DEFAULT '[]',
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS rental_requests (
		id           BIGSERIAL PRIMARY KEY,
		room_id      BIGINT NOT NULL REFERENCES rooms(id),
		renter_id    BIGINT NOT NULL REFERENCES users(id),
		request_type TEXT NOT NULL,
		status       TEXT NOT NULL DEFAULT 'PENDING',
		sent_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
		note         TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS rental_infos (
		id            BIGSERIAL PRIMARY KEY,
		room_id       BIGINT NOT NULL REFERENCES rooms(id),
		renter_id     BIGINT NOT NULL REFERENCES users(id),
		request_id    BIGINT NOT NULL UNIQUE REFERENCES rental_requests(id),
		start_date    TIMESTAMPTZ NOT NULL DEFAULT now(),
		end_date      TIMESTAMPTZ,
		monthly_price NUMERIC(12,2) NOT NULL,
		deposit       NUMERIC(12,2) NOT NULL DEFAULT 0,
		status        TEXT NOT NULL DEFAULT 'ACTIVE'
	)`,
	// one active tenancy per room
	`CREATE UNIQUE INDEX IF NOT EXISTS rental_infos_room_active
		ON rental_infos (room_id) WHERE end_date IS NULL`,
	`CREATE TABLE IF NOT EXISTS reviews (
		id         BIGSERIAL PRIMARY KEY,
		room_id    BIGINT NOT NULL REFERENCES rooms(id),
		renter_id  BIGINT NOT NULL REFERENCES users(id),
		rating     INT NOT NULL CHECK (rating BETWEEN 1 AND 5),
		comment    TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// Migrate applies the schema statements in order. Every statement is
// idempotent, so re-running on startup is safe.
func Migrate(ctx context.Context, db *sql.DB) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
