package storage

import (
	"context"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		role TEXT NOT NULL DEFAULT 'customer',
		is_verified BOOLEAN NOT NULL DEFAULT FALSE,
		restaurant_id INTEGER,
		delivery_partner_id INTEGER,
		delivery_rating DOUBLE PRECISION NOT NULL DEFAULT 0,
		num_delivery_reviews INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS addresses (
		id SERIAL PRIMARY KEY,
		user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		label TEXT,
		street TEXT NOT NULL,
		city TEXT NOT NULL,
		state TEXT,
		postal_code TEXT,
		phone TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS restaurants (
		id SERIAL PRIMARY KEY,
		owner_id INTEGER NOT NULL,
		name TEXT NOT NULL,
		address TEXT,
		description TEXT,
		cuisine TEXT,
		image_url TEXT,
		recipe_box BOOLEAN NOT NULL DEFAULT FALSE,
		is_blocked BOOLEAN NOT NULL DEFAULT FALSE,
		total_orders INTEGER NOT NULL DEFAULT 0,
		total_revenue NUMERIC(12,2) NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS dishes (
		id SERIAL PRIMARY KEY,
		restaurant_id INTEGER NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		description TEXT,
		price NUMERIC(12,2) NOT NULL CHECK (price > 0),
		image_url TEXT,
		calories DOUBLE PRECISION NOT NULL DEFAULT 0,
		protein DOUBLE PRECISION NOT NULL DEFAULT 0,
		carbs DOUBLE PRECISION NOT NULL DEFAULT 0,
		fat DOUBLE PRECISION NOT NULL DEFAULT 0,
		tags TEXT[] NOT NULL DEFAULT '{}',
		rating DOUBLE PRECISION NOT NULL DEFAULT 0,
		num_reviews INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS parent_orders (
		id SERIAL PRIMARY KEY,
		user_id INTEGER NOT NULL REFERENCES users(id),
		total_price NUMERIC(12,2) NOT NULL,
		delivery_address JSONB NOT NULL,
		payment_method TEXT NOT NULL,
		payment_status TEXT NOT NULL,
		payment_id TEXT UNIQUE,
		delivery_rating INTEGER,
		qr_code BYTEA,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id SERIAL PRIMARY KEY,
		parent_id INTEGER REFERENCES parent_orders(id),
		user_id INTEGER NOT NULL REFERENCES users(id),
		restaurant_id INTEGER NOT NULL,
		total_price NUMERIC(12,2) NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		delivery_address JSONB NOT NULL,
		payment_method TEXT NOT NULL,
		payment_status TEXT NOT NULL,
		payment_id TEXT,
		delivery_partner_id INTEGER,
		delivery_rating INTEGER,
		custom_order_id INTEGER,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_parent ON orders (parent_id)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_restaurant ON orders (restaurant_id)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_status ON orders (status)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id SERIAL PRIMARY KEY,
		order_id INTEGER NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		dish_id INTEGER REFERENCES dishes(id) ON DELETE SET NULL,
		name TEXT NOT NULL,
		price NUMERIC(12,2) NOT NULL,
		quantity INTEGER NOT NULL CHECK (quantity > 0),
		rating INTEGER CHECK (rating BETWEEN 1 AND 5)
	)`,
	`CREATE TABLE IF NOT EXISTS order_status_history (
		id SERIAL PRIMARY KEY,
		order_id INTEGER NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		from_status TEXT,
		to_status TEXT NOT NULL,
		changed_by INTEGER NOT NULL,
		changed_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS partner_requests (
		id SERIAL PRIMARY KEY,
		user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		kind TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		details JSONB NOT NULL,
		reject_reason TEXT,
		reviewed_by INTEGER,
		reviewed_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (user_id, kind)
	)`,
	`CREATE TABLE IF NOT EXISTS custom_orders (
		id SERIAL PRIMARY KEY,
		user_id INTEGER NOT NULL REFERENCES users(id),
		restaurant_id INTEGER NOT NULL REFERENCES restaurants(id),
		name TEXT NOT NULL,
		ingredients TEXT[] NOT NULL DEFAULT '{}',
		instructions TEXT,
		status TEXT NOT NULL DEFAULT 'pending',
		price NUMERIC(12,2) NOT NULL DEFAULT 0,
		order_id INTEGER REFERENCES orders(id),
		payment_id TEXT UNIQUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS restaurant_tables (
		id SERIAL PRIMARY KEY,
		restaurant_id INTEGER NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
		table_number INTEGER NOT NULL,
		capacity INTEGER NOT NULL CHECK (capacity > 0),
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (restaurant_id, table_number)
	)`,
	`CREATE TABLE IF NOT EXISTS reservations (
		id SERIAL PRIMARY KEY,
		table_id INTEGER REFERENCES restaurant_tables(id) ON DELETE SET NULL,
		restaurant_id INTEGER NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
		user_id INTEGER REFERENCES users(id),
		customer_name TEXT,
		customer_phone TEXT,
		customer_email TEXT,
		party_size INTEGER NOT NULL CHECK (party_size > 0),
		reserved_at TIMESTAMPTZ NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		notes TEXT,
		amount NUMERIC(12,2) NOT NULL DEFAULT 0,
		payment_status TEXT NOT NULL DEFAULT 'pending',
		payment_id TEXT UNIQUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_reservations_table_time ON reservations (table_id, reserved_at)`,
	`CREATE TABLE IF NOT EXISTS daily_sales (
		day DATE NOT NULL,
		restaurant_id INTEGER NOT NULL,
		orders INTEGER NOT NULL DEFAULT 0,
		cancelled INTEGER NOT NULL DEFAULT 0,
		revenue NUMERIC(12,2) NOT NULL DEFAULT 0,
		PRIMARY KEY (day, restaurant_id)
	)`,
	`CREATE TABLE IF NOT EXISTS processed_events (
		event_key TEXT PRIMARY KEY,
		processed_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// EnsureSchema creates every table the marketplace and agg-svc rely on.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", firstLine(stmt), err)
		}
	}
	return nil
}

func firstLine(s string) string {
	for i, c := range s {
		if c == '\n' {
			return s[:i]
		}
	}
	return s
}
