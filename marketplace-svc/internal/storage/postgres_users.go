package storage

import (
	"context"
	"database/sql"

	"tiffinbox/marketplace-svc/internal/domain"
)

func (r *PostgresRepository) GetUser(ctx context.Context, id int) (*domain.User, error) {
	var (
		u          domain.User
		restaurant sql.NullInt64
		partner    sql.NullInt64
	)
	err := r.q.QueryRowContext(ctx, `
		SELECT id, name, email, role, is_verified, restaurant_id, delivery_partner_id,
			delivery_rating, num_delivery_reviews, created_at
		FROM users WHERE id = $1`, id).
		Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.IsVerified, &restaurant, &partner,
			&u.DeliveryRating, &u.NumDeliveryReviews, &u.CreatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	u.RestaurantID = intPtr(restaurant)
	u.DeliveryPartnerID = intPtr(partner)
	return &u, nil
}

// CreateUser inserts an account row. Sign-up lives outside this service, so
// only the seed command calls it.
func (r *PostgresRepository) CreateUser(ctx context.Context, u *domain.User) error {
	return r.q.QueryRowContext(ctx, `
		INSERT INTO users (name, email, role, is_verified, restaurant_id, delivery_partner_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`,
		u.Name, u.Email, u.Role, u.IsVerified, nullInt(u.RestaurantID), nullInt(u.DeliveryPartnerID),
	).Scan(&u.ID, &u.CreatedAt)
}

func (r *PostgresRepository) SetUserRestaurant(ctx context.Context, userID int, restaurantID *int) error {
	return affected(r.q.ExecContext(ctx, `UPDATE users SET restaurant_id = $1 WHERE id = $2`, nullInt(restaurantID), userID))
}

func (r *PostgresRepository) SetUserRole(ctx context.Context, userID int, role domain.Role) error {
	return affected(r.q.ExecContext(ctx, `UPDATE users SET role = $1 WHERE id = $2`, role, userID))
}

func (r *PostgresRepository) SetUserDeliveryPartner(ctx context.Context, userID int, partnerID *int) error {
	return affected(r.q.ExecContext(ctx, `UPDATE users SET delivery_partner_id = $1 WHERE id = $2`, nullInt(partnerID), userID))
}

func (r *PostgresRepository) ApplyPartnerRating(ctx context.Context, userID, rating int) error {
	var (
		avg   float64
		count int
	)
	if err := r.q.QueryRowContext(ctx,
		`SELECT delivery_rating, num_delivery_reviews FROM users WHERE id = $1 FOR UPDATE`, userID).Scan(&avg, &count); err != nil {
		return notFound(err)
	}
	avg, count = domain.RunningAverage(avg, count, rating)
	return affected(r.q.ExecContext(ctx,
		`UPDATE users SET delivery_rating = $1, num_delivery_reviews = $2 WHERE id = $3`, avg, count, userID))
}

// ListAddresses returns the address book oldest first; the first entry is the default.
func (r *PostgresRepository) ListAddresses(ctx context.Context, userID int) ([]domain.Address, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, COALESCE(label, ''), street, city, COALESCE(state, ''), COALESCE(postal_code, ''), COALESCE(phone, '')
		FROM addresses WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	addresses := []domain.Address{}
	for rows.Next() {
		var a domain.Address
		if err := rows.Scan(&a.ID, &a.Label, &a.Street, &a.City, &a.State, &a.PostalCode, &a.Phone); err != nil {
			return nil, err
		}
		addresses = append(addresses, a)
	}
	return addresses, rows.Err()
}

func (r *PostgresRepository) CreateAddress(ctx context.Context, userID int, addr *domain.Address) error {
	return r.q.QueryRowContext(ctx, `
		INSERT INTO addresses (user_id, label, street, city, state, postal_code, phone)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		userID, addr.Label, addr.Street, addr.City, addr.State, addr.PostalCode, addr.Phone,
	).Scan(&addr.ID)
}
