package storage

import (
	"context"
	"database/sql"
	"fmt"

	"tiffinbox/marketplace-svc/internal/domain"

	"github.com/lib/pq"
)

const orderColumns = `o.id, o.parent_id, o.user_id, o.restaurant_id, COALESCE(r.name, ''), o.total_price, o.status,
	o.delivery_address, o.payment_method, o.payment_status, COALESCE(o.payment_id, ''),
	o.delivery_partner_id, o.delivery_rating, o.custom_order_id, o.created_at, o.updated_at`

const orderFrom = ` FROM orders o LEFT JOIN restaurants r ON r.id = o.restaurant_id`

func scanOrder(row rowScanner, o *domain.Order) error {
	var (
		parent, partner, rating, custom sql.NullInt64
		address                         []byte
	)
	if err := row.Scan(&o.ID, &parent, &o.UserID, &o.RestaurantID, &o.RestaurantName, &o.TotalPrice, &o.Status,
		&address, &o.PaymentMethod, &o.PaymentStatus, &o.PaymentID,
		&partner, &rating, &custom, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return err
	}
	o.ParentID = intPtr(parent)
	o.DeliveryPartnerID = intPtr(partner)
	o.DeliveryRating = intPtr(rating)
	o.CustomOrderID = intPtr(custom)
	return decodeAddress(address, &o.DeliveryAddress)
}

func (r *PostgresRepository) CreateParentOrder(ctx context.Context, parent *domain.ParentOrder) error {
	address, err := encodeAddress(parent.DeliveryAddress)
	if err != nil {
		return err
	}
	return r.q.QueryRowContext(ctx, `
		INSERT INTO parent_orders (user_id, total_price, delivery_address, payment_method, payment_status, payment_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`,
		parent.UserID, parent.TotalPrice, address, parent.PaymentMethod, parent.PaymentStatus, nullString(parent.PaymentID),
	).Scan(&parent.ID, &parent.CreatedAt)
}

func (r *PostgresRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	address, err := encodeAddress(order.DeliveryAddress)
	if err != nil {
		return err
	}
	if err := r.q.QueryRowContext(ctx, `
		INSERT INTO orders (parent_id, user_id, restaurant_id, total_price, status, delivery_address,
			payment_method, payment_status, payment_id, custom_order_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at`,
		nullInt(order.ParentID), order.UserID, order.RestaurantID, order.TotalPrice, order.Status, address,
		order.PaymentMethod, order.PaymentStatus, nullString(order.PaymentID), nullInt(order.CustomOrderID),
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt); err != nil {
		return err
	}

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID
		if err := r.q.QueryRowContext(ctx, `
			INSERT INTO order_items (order_id, dish_id, name, price, quantity)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			order.ID, nullInt(item.DishID), item.Name, item.Price, item.Quantity,
		).Scan(&item.ID); err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return nil
}

func (r *PostgresRepository) SaveQRCode(ctx context.Context, parentID int, qr []byte) error {
	return affected(r.q.ExecContext(ctx, `UPDATE parent_orders SET qr_code = $1 WHERE id = $2`, qr, parentID))
}

func (r *PostgresRepository) GetQRCode(ctx context.Context, parentID int) ([]byte, error) {
	var qr []byte
	if err := r.q.QueryRowContext(ctx, `SELECT qr_code FROM parent_orders WHERE id = $1`, parentID).Scan(&qr); err != nil {
		return nil, notFound(err)
	}
	return qr, nil
}

// loadItems attaches line items to the given orders in one round trip.
func (r *PostgresRepository) loadItems(ctx context.Context, orders []domain.Order) error {
	if len(orders) == 0 {
		return nil
	}
	ids := make([]int, len(orders))
	index := make(map[int]int, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
		index[o.ID] = i
		orders[i].Items = []domain.OrderItem{}
	}

	rows, err := r.q.QueryContext(ctx, `
		SELECT id, order_id, dish_id, name, price, quantity, rating
		FROM order_items WHERE order_id = ANY($1) ORDER BY id`, pq.Array(ids))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			item         domain.OrderItem
			dish, rating sql.NullInt64
		)
		if err := rows.Scan(&item.ID, &item.OrderID, &dish, &item.Name, &item.Price, &item.Quantity, &rating); err != nil {
			return err
		}
		item.DishID = intPtr(dish)
		item.Rating = intPtr(rating)
		i := index[item.OrderID]
		orders[i].Items = append(orders[i].Items, item)
	}
	return rows.Err()
}

func (r *PostgresRepository) queryOrders(ctx context.Context, query string, args ...any) ([]domain.Order, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	orders := []domain.Order{}
	for rows.Next() {
		var o domain.Order
		if err := scanOrder(rows, &o); err != nil {
			rows.Close()
			return nil, err
		}
		orders = append(orders, o)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.loadItems(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *PostgresRepository) getOrder(ctx context.Context, query string, id int) (*domain.Order, error) {
	orders, err := r.queryOrders(ctx, query, id)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, notFound(sql.ErrNoRows)
	}
	return &orders[0], nil
}

func (r *PostgresRepository) GetOrder(ctx context.Context, id int) (*domain.Order, error) {
	return r.getOrder(ctx, `SELECT `+orderColumns+orderFrom+` WHERE o.id = $1`, id)
}

func (r *PostgresRepository) LockOrder(ctx context.Context, id int) (*domain.Order, error) {
	return r.getOrder(ctx, `SELECT `+orderColumns+orderFrom+` WHERE o.id = $1 FOR UPDATE OF o`, id)
}

func (r *PostgresRepository) UpdateOrderState(ctx context.Context, order *domain.Order) error {
	return r.q.QueryRowContext(ctx, `
		UPDATE orders SET status = $1, delivery_partner_id = $2, payment_status = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING updated_at`,
		order.Status, nullInt(order.DeliveryPartnerID), order.PaymentStatus, order.ID,
	).Scan(&order.UpdatedAt)
}

func (r *PostgresRepository) ListRestaurantOrders(ctx context.Context, restaurantID int) ([]domain.Order, error) {
	return r.queryOrders(ctx, `SELECT `+orderColumns+orderFrom+`
		WHERE o.restaurant_id = $1 ORDER BY o.created_at DESC`, restaurantID)
}

func (r *PostgresRepository) ListDeliveryOrders(ctx context.Context, partnerID int) ([]domain.Order, error) {
	return r.queryOrders(ctx, `SELECT `+orderColumns+orderFrom+`
		WHERE o.status = 'ready'
			OR (o.delivery_partner_id = $1 AND o.status IN ('on-the-way', 'delivered'))
		ORDER BY o.created_at DESC`, partnerID)
}

func (r *PostgresRepository) AppendStatusHistory(ctx context.Context, change *domain.StatusChange) error {
	return r.q.QueryRowContext(ctx, `
		INSERT INTO order_status_history (order_id, from_status, to_status, changed_by)
		VALUES ($1, $2, $3, $4)
		RETURNING changed_at`,
		change.OrderID, nullString(string(change.From)), change.To, change.ChangedBy,
	).Scan(&change.ChangedAt)
}

func (r *PostgresRepository) ListStatusHistory(ctx context.Context, orderID int) ([]domain.StatusChange, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT order_id, COALESCE(from_status, ''), to_status, changed_by, changed_at
		FROM order_status_history WHERE order_id = $1 ORDER BY changed_at, id`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := []domain.StatusChange{}
	for rows.Next() {
		var c domain.StatusChange
		if err := rows.Scan(&c.OrderID, &c.From, &c.To, &c.ChangedBy, &c.ChangedAt); err != nil {
			return nil, err
		}
		history = append(history, c)
	}
	return history, rows.Err()
}

const parentColumns = `id, user_id, total_price, delivery_address, payment_method, payment_status,
	COALESCE(payment_id, ''), delivery_rating, created_at`

func scanParent(row rowScanner, p *domain.ParentOrder) error {
	var (
		rating  sql.NullInt64
		address []byte
	)
	if err := row.Scan(&p.ID, &p.UserID, &p.TotalPrice, &address, &p.PaymentMethod, &p.PaymentStatus,
		&p.PaymentID, &rating, &p.CreatedAt); err != nil {
		return err
	}
	p.DeliveryRating = intPtr(rating)
	return decodeAddress(address, &p.DeliveryAddress)
}

func (r *PostgresRepository) attachChildren(ctx context.Context, parents []domain.ParentOrder) error {
	if len(parents) == 0 {
		return nil
	}
	ids := make([]int, len(parents))
	index := make(map[int]int, len(parents))
	for i, p := range parents {
		ids[i] = p.ID
		index[p.ID] = i
		parents[i].Orders = []domain.Order{}
	}
	children, err := r.queryOrders(ctx, `SELECT `+orderColumns+orderFrom+`
		WHERE o.parent_id = ANY($1) ORDER BY o.id`, pq.Array(ids))
	if err != nil {
		return err
	}
	for _, child := range children {
		i := index[*child.ParentID]
		parents[i].Orders = append(parents[i].Orders, child)
	}
	return nil
}

func (r *PostgresRepository) getParent(ctx context.Context, query string, args ...any) (*domain.ParentOrder, error) {
	var p domain.ParentOrder
	if err := scanParent(r.q.QueryRowContext(ctx, query, args...), &p); err != nil {
		return nil, notFound(err)
	}
	parents := []domain.ParentOrder{p}
	if err := r.attachChildren(ctx, parents); err != nil {
		return nil, err
	}
	return &parents[0], nil
}

func (r *PostgresRepository) GetParentOrder(ctx context.Context, id int) (*domain.ParentOrder, error) {
	return r.getParent(ctx, `SELECT `+parentColumns+` FROM parent_orders WHERE id = $1`, id)
}

// LockParentOrder locks the parent row and every child row under it.
func (r *PostgresRepository) LockParentOrder(ctx context.Context, id int) (*domain.ParentOrder, error) {
	parent, err := r.getParent(ctx, `SELECT `+parentColumns+` FROM parent_orders WHERE id = $1 FOR UPDATE`, id)
	if err != nil {
		return nil, err
	}
	if _, err := r.q.ExecContext(ctx, `SELECT id FROM orders WHERE parent_id = $1 FOR UPDATE`, id); err != nil {
		return nil, err
	}
	return parent, nil
}

func (r *PostgresRepository) FindParentByPaymentID(ctx context.Context, paymentID string) (*domain.ParentOrder, error) {
	return r.getParent(ctx, `SELECT `+parentColumns+` FROM parent_orders WHERE payment_id = $1`, paymentID)
}

func (r *PostgresRepository) ListParentOrdersByUser(ctx context.Context, userID int) ([]domain.ParentOrder, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT `+parentColumns+`
		FROM parent_orders WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	parents := []domain.ParentOrder{}
	for rows.Next() {
		var p domain.ParentOrder
		if err := scanParent(rows, &p); err != nil {
			rows.Close()
			return nil, err
		}
		parents = append(parents, p)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.attachChildren(ctx, parents); err != nil {
		return nil, err
	}
	return parents, nil
}

func (r *PostgresRepository) SetDeliveryRating(ctx context.Context, parentID, rating int) error {
	if err := affected(r.q.ExecContext(ctx,
		`UPDATE parent_orders SET delivery_rating = $1 WHERE id = $2`, rating, parentID)); err != nil {
		return err
	}
	_, err := r.q.ExecContext(ctx, `UPDATE orders SET delivery_rating = $1 WHERE parent_id = $2`, rating, parentID)
	return err
}

func (r *PostgresRepository) SetItemRating(ctx context.Context, itemID, rating int) error {
	return affected(r.q.ExecContext(ctx, `UPDATE order_items SET rating = $1 WHERE id = $2`, rating, itemID))
}
