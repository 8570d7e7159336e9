package storage

import (
	"context"
	"database/sql"
	"time"

	"tiffinbox/marketplace-svc/internal/domain"
)

const tableColumns = `id, restaurant_id, table_number, capacity, is_active, created_at`

func scanTable(row rowScanner, t *domain.Table) error {
	return row.Scan(&t.ID, &t.RestaurantID, &t.Number, &t.Capacity, &t.IsActive, &t.CreatedAt)
}

func (r *PostgresRepository) CreateTable(ctx context.Context, table *domain.Table) error {
	return r.q.QueryRowContext(ctx, `
		INSERT INTO restaurant_tables (restaurant_id, table_number, capacity, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		table.RestaurantID, table.Number, table.Capacity, table.IsActive,
	).Scan(&table.ID, &table.CreatedAt)
}

func (r *PostgresRepository) getTable(ctx context.Context, query string, id int) (*domain.Table, error) {
	var t domain.Table
	if err := scanTable(r.q.QueryRowContext(ctx, query, id), &t); err != nil {
		return nil, notFound(err)
	}
	return &t, nil
}

func (r *PostgresRepository) GetTable(ctx context.Context, id int) (*domain.Table, error) {
	return r.getTable(ctx, `SELECT `+tableColumns+` FROM restaurant_tables WHERE id = $1`, id)
}

func (r *PostgresRepository) LockTable(ctx context.Context, id int) (*domain.Table, error) {
	return r.getTable(ctx, `SELECT `+tableColumns+` FROM restaurant_tables WHERE id = $1 FOR UPDATE`, id)
}

func (r *PostgresRepository) queryTables(ctx context.Context, query string, args ...any) ([]domain.Table, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tables := []domain.Table{}
	for rows.Next() {
		var t domain.Table
		if err := scanTable(rows, &t); err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, rows.Err()
}

func (r *PostgresRepository) ListTables(ctx context.Context, restaurantID int) ([]domain.Table, error) {
	return r.queryTables(ctx, `SELECT `+tableColumns+`
		FROM restaurant_tables WHERE restaurant_id = $1 ORDER BY table_number`, restaurantID)
}

// ListAvailableTables returns active tables big enough for the party with no
// live reservation starting strictly inside (from, to).
func (r *PostgresRepository) ListAvailableTables(ctx context.Context, restaurantID, partySize int, from, to time.Time) ([]domain.Table, error) {
	return r.queryTables(ctx, `SELECT `+tableColumns+`
		FROM restaurant_tables t
		WHERE t.restaurant_id = $1 AND t.is_active AND t.capacity >= $2
			AND NOT EXISTS (
				SELECT 1 FROM reservations res
				WHERE res.table_id = t.id
					AND res.status IN ('pending', 'confirmed', 'occupied')
					AND res.reserved_at > $3 AND res.reserved_at < $4
			)
		ORDER BY t.capacity, t.table_number`, restaurantID, partySize, from, to)
}

func (r *PostgresRepository) UpdateTable(ctx context.Context, table *domain.Table) error {
	return affected(r.q.ExecContext(ctx, `
		UPDATE restaurant_tables SET table_number = $1, capacity = $2, is_active = $3 WHERE id = $4`,
		table.Number, table.Capacity, table.IsActive, table.ID))
}

func (r *PostgresRepository) DeleteTable(ctx context.Context, id int) (int64, error) {
	res, err := r.q.ExecContext(ctx, `DELETE FROM restaurant_tables WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *PostgresRepository) CountTableConflicts(ctx context.Context, tableID int, from, to time.Time, excludeID int) (int, error) {
	var n int
	err := r.q.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM reservations
		WHERE table_id = $1 AND id <> $2
			AND status IN ('pending', 'confirmed', 'occupied')
			AND reserved_at > $3 AND reserved_at < $4`,
		tableID, excludeID, from, to).Scan(&n)
	return n, err
}

const reservationColumns = `id, table_id, restaurant_id, user_id, COALESCE(customer_name, ''), COALESCE(customer_phone, ''),
	COALESCE(customer_email, ''), party_size, reserved_at, status, COALESCE(notes, ''), amount, payment_status,
	COALESCE(payment_id, ''), created_at`

func scanReservation(row rowScanner, res *domain.Reservation) error {
	var table, user sql.NullInt64
	if err := row.Scan(&res.ID, &table, &res.RestaurantID, &user, &res.CustomerName, &res.CustomerPhone,
		&res.CustomerEmail, &res.PartySize, &res.ReservedAt, &res.Status, &res.Notes, &res.Amount, &res.PaymentStatus,
		&res.PaymentID, &res.CreatedAt); err != nil {
		return err
	}
	res.TableID = intPtr(table)
	res.UserID = intPtr(user)
	return nil
}

func (r *PostgresRepository) CreateReservation(ctx context.Context, res *domain.Reservation) error {
	return r.q.QueryRowContext(ctx, `
		INSERT INTO reservations (table_id, restaurant_id, user_id, customer_name, customer_phone, customer_email,
			party_size, reserved_at, status, notes, amount, payment_status, payment_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at`,
		nullInt(res.TableID), res.RestaurantID, nullInt(res.UserID), res.CustomerName, res.CustomerPhone, res.CustomerEmail,
		res.PartySize, res.ReservedAt, res.Status, res.Notes, res.Amount, res.PaymentStatus, nullString(res.PaymentID),
	).Scan(&res.ID, &res.CreatedAt)
}

func (r *PostgresRepository) getReservation(ctx context.Context, query string, args ...any) (*domain.Reservation, error) {
	var res domain.Reservation
	if err := scanReservation(r.q.QueryRowContext(ctx, query, args...), &res); err != nil {
		return nil, notFound(err)
	}
	return &res, nil
}

func (r *PostgresRepository) GetReservation(ctx context.Context, id int) (*domain.Reservation, error) {
	return r.getReservation(ctx, `SELECT `+reservationColumns+` FROM reservations WHERE id = $1`, id)
}

func (r *PostgresRepository) LockReservation(ctx context.Context, id int) (*domain.Reservation, error) {
	return r.getReservation(ctx, `SELECT `+reservationColumns+` FROM reservations WHERE id = $1 FOR UPDATE`, id)
}

func (r *PostgresRepository) FindReservationByPaymentID(ctx context.Context, paymentID string) (*domain.Reservation, error) {
	return r.getReservation(ctx, `SELECT `+reservationColumns+` FROM reservations WHERE payment_id = $1`, paymentID)
}

func (r *PostgresRepository) listReservations(ctx context.Context, query string, arg int) ([]domain.Reservation, error) {
	rows, err := r.q.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Reservation{}
	for rows.Next() {
		var res domain.Reservation
		if err := scanReservation(rows, &res); err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) ListReservationsByUser(ctx context.Context, userID int) ([]domain.Reservation, error) {
	return r.listReservations(ctx, `SELECT `+reservationColumns+`
		FROM reservations WHERE user_id = $1 ORDER BY reserved_at DESC`, userID)
}

func (r *PostgresRepository) ListReservationsByRestaurant(ctx context.Context, restaurantID int) ([]domain.Reservation, error) {
	return r.listReservations(ctx, `SELECT `+reservationColumns+`
		FROM reservations WHERE restaurant_id = $1 ORDER BY reserved_at DESC`, restaurantID)
}

func (r *PostgresRepository) UpdateReservation(ctx context.Context, res *domain.Reservation) error {
	return affected(r.q.ExecContext(ctx, `
		UPDATE reservations SET table_id = $1, party_size = $2, reserved_at = $3, status = $4, notes = $5
		WHERE id = $6`,
		nullInt(res.TableID), res.PartySize, res.ReservedAt, res.Status, res.Notes, res.ID))
}

func (r *PostgresRepository) DeleteReservation(ctx context.Context, id int) (int64, error) {
	res, err := r.q.ExecContext(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
