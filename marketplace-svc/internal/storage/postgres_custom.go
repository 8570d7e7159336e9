package storage

import (
	"context"
	"database/sql"

	"tiffinbox/marketplace-svc/internal/domain"

	"github.com/lib/pq"
)

const customColumns = `id, user_id, restaurant_id, name, ingredients, COALESCE(instructions, ''), status, price,
	order_id, COALESCE(payment_id, ''), created_at, updated_at`

func scanCustomOrder(row rowScanner, co *domain.CustomOrder) error {
	var (
		ingredients []string
		order       sql.NullInt64
	)
	if err := row.Scan(&co.ID, &co.UserID, &co.RestaurantID, &co.Name, pq.Array(&ingredients), &co.Instructions,
		&co.Status, &co.Price, &order, &co.PaymentID, &co.CreatedAt, &co.UpdatedAt); err != nil {
		return err
	}
	if ingredients == nil {
		ingredients = []string{}
	}
	co.Ingredients = ingredients
	co.OrderID = intPtr(order)
	return nil
}

func (r *PostgresRepository) CreateCustomOrder(ctx context.Context, co *domain.CustomOrder) error {
	return r.q.QueryRowContext(ctx, `
		INSERT INTO custom_orders (user_id, restaurant_id, name, ingredients, instructions, status, price)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`,
		co.UserID, co.RestaurantID, co.Name, pq.Array(co.Ingredients), co.Instructions, co.Status, co.Price,
	).Scan(&co.ID, &co.CreatedAt, &co.UpdatedAt)
}

func (r *PostgresRepository) getCustomOrder(ctx context.Context, query string, id int) (*domain.CustomOrder, error) {
	var co domain.CustomOrder
	if err := scanCustomOrder(r.q.QueryRowContext(ctx, query, id), &co); err != nil {
		return nil, notFound(err)
	}
	return &co, nil
}

func (r *PostgresRepository) GetCustomOrder(ctx context.Context, id int) (*domain.CustomOrder, error) {
	return r.getCustomOrder(ctx, `SELECT `+customColumns+` FROM custom_orders WHERE id = $1`, id)
}

func (r *PostgresRepository) LockCustomOrder(ctx context.Context, id int) (*domain.CustomOrder, error) {
	return r.getCustomOrder(ctx, `SELECT `+customColumns+` FROM custom_orders WHERE id = $1 FOR UPDATE`, id)
}

func (r *PostgresRepository) UpdateCustomOrder(ctx context.Context, co *domain.CustomOrder) error {
	return r.q.QueryRowContext(ctx, `
		UPDATE custom_orders SET status = $1, price = $2, order_id = $3, payment_id = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING updated_at`,
		co.Status, co.Price, nullInt(co.OrderID), nullString(co.PaymentID), co.ID,
	).Scan(&co.UpdatedAt)
}

func (r *PostgresRepository) listCustomOrders(ctx context.Context, query string, arg int) ([]domain.CustomOrder, error) {
	rows, err := r.q.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.CustomOrder{}
	for rows.Next() {
		var co domain.CustomOrder
		if err := scanCustomOrder(rows, &co); err != nil {
			return nil, err
		}
		orders = append(orders, co)
	}
	return orders, rows.Err()
}

func (r *PostgresRepository) ListCustomOrdersByUser(ctx context.Context, userID int) ([]domain.CustomOrder, error) {
	return r.listCustomOrders(ctx, `SELECT `+customColumns+` FROM custom_orders WHERE user_id = $1 ORDER BY created_at DESC`, userID)
}

func (r *PostgresRepository) ListCustomOrdersByRestaurant(ctx context.Context, restaurantID int) ([]domain.CustomOrder, error) {
	return r.listCustomOrders(ctx, `SELECT `+customColumns+` FROM custom_orders WHERE restaurant_id = $1 ORDER BY created_at DESC`, restaurantID)
}
