package storage

import (
	"context"

	"tiffinbox/marketplace-svc/internal/domain"

	"github.com/lib/pq"
)

const restaurantColumns = `id, owner_id, name, COALESCE(address, ''), COALESCE(description, ''),
	COALESCE(cuisine, ''), COALESCE(image_url, ''), recipe_box, is_blocked, total_orders, total_revenue, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRestaurant(row rowScanner, rest *domain.Restaurant) error {
	return row.Scan(&rest.ID, &rest.OwnerID, &rest.Name, &rest.Address, &rest.Description,
		&rest.Cuisine, &rest.ImageURL, &rest.RecipeBox, &rest.IsBlocked, &rest.TotalOrders, &rest.TotalRevenue, &rest.CreatedAt)
}

func (r *PostgresRepository) CreateRestaurant(ctx context.Context, rest *domain.Restaurant) error {
	return r.q.QueryRowContext(ctx, `
		INSERT INTO restaurants (owner_id, name, address, description, cuisine, recipe_box)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`,
		rest.OwnerID, rest.Name, rest.Address, rest.Description, rest.Cuisine, rest.RecipeBox,
	).Scan(&rest.ID, &rest.CreatedAt)
}

func (r *PostgresRepository) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT `+restaurantColumns+` FROM restaurants ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	restaurants := []domain.Restaurant{}
	for rows.Next() {
		var rest domain.Restaurant
		if err := scanRestaurant(rows, &rest); err != nil {
			return nil, err
		}
		restaurants = append(restaurants, rest)
	}
	return restaurants, rows.Err()
}

func (r *PostgresRepository) GetRestaurant(ctx context.Context, id int) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	row := r.q.QueryRowContext(ctx, `SELECT `+restaurantColumns+` FROM restaurants WHERE id = $1`, id)
	if err := scanRestaurant(row, &rest); err != nil {
		return nil, notFound(err)
	}
	return &rest, nil
}

func (r *PostgresRepository) UpdateRestaurant(ctx context.Context, rest *domain.Restaurant) error {
	return affected(r.q.ExecContext(ctx, `
		UPDATE restaurants SET name = $1, address = $2, description = $3, cuisine = $4, recipe_box = $5
		WHERE id = $6`,
		rest.Name, rest.Address, rest.Description, rest.Cuisine, rest.RecipeBox, rest.ID))
}

func (r *PostgresRepository) SetRestaurantBlocked(ctx context.Context, id int, blocked bool) error {
	return affected(r.q.ExecContext(ctx, `UPDATE restaurants SET is_blocked = $1 WHERE id = $2`, blocked, id))
}

func (r *PostgresRepository) DeleteRestaurant(ctx context.Context, id int) (int64, error) {
	res, err := r.q.ExecContext(ctx, `DELETE FROM restaurants WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *PostgresRepository) UpdateRestaurantImage(ctx context.Context, id int, imageURL string) error {
	return affected(r.q.ExecContext(ctx, `UPDATE restaurants SET image_url = $1 WHERE id = $2`, imageURL, id))
}

func (r *PostgresRepository) IncrementRestaurantTotals(ctx context.Context, id int, revenue float64) error {
	return affected(r.q.ExecContext(ctx, `
		UPDATE restaurants SET total_orders = total_orders + 1, total_revenue = total_revenue + $1
		WHERE id = $2`, revenue, id))
}

const dishColumns = `id, restaurant_id, name, COALESCE(description, ''), price, COALESCE(image_url, ''),
	calories, protein, carbs, fat, tags, rating, num_reviews, created_at`

func scanDish(row rowScanner, dish *domain.Dish) error {
	var tags []string
	err := row.Scan(&dish.ID, &dish.RestaurantID, &dish.Name, &dish.Description, &dish.Price, &dish.ImageURL,
		&dish.Nutrition.Calories, &dish.Nutrition.Protein, &dish.Nutrition.Carbs, &dish.Nutrition.Fat,
		pq.Array(&tags), &dish.Rating, &dish.NumReviews, &dish.CreatedAt)
	if tags == nil {
		tags = []string{}
	}
	dish.Tags = tags
	return err
}

func (r *PostgresRepository) CreateDish(ctx context.Context, dish *domain.Dish) error {
	if dish.Tags == nil {
		dish.Tags = []string{}
	}
	return r.q.QueryRowContext(ctx, `
		INSERT INTO dishes (restaurant_id, name, description, price, calories, protein, carbs, fat, tags)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at`,
		dish.RestaurantID, dish.Name, dish.Description, dish.Price,
		dish.Nutrition.Calories, dish.Nutrition.Protein, dish.Nutrition.Carbs, dish.Nutrition.Fat,
		pq.Array(dish.Tags),
	).Scan(&dish.ID, &dish.CreatedAt)
}

func (r *PostgresRepository) queryDishes(ctx context.Context, query string, args ...any) ([]domain.Dish, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dishes := []domain.Dish{}
	for rows.Next() {
		var dish domain.Dish
		if err := scanDish(rows, &dish); err != nil {
			return nil, err
		}
		dishes = append(dishes, dish)
	}
	return dishes, rows.Err()
}

func (r *PostgresRepository) ListDishes(ctx context.Context, restaurantID int) ([]domain.Dish, error) {
	return r.queryDishes(ctx, `SELECT `+dishColumns+` FROM dishes WHERE restaurant_id = $1 ORDER BY created_at DESC`, restaurantID)
}

func (r *PostgresRepository) GetDish(ctx context.Context, id int) (*domain.Dish, error) {
	var dish domain.Dish
	row := r.q.QueryRowContext(ctx, `SELECT `+dishColumns+` FROM dishes WHERE id = $1`, id)
	if err := scanDish(row, &dish); err != nil {
		return nil, notFound(err)
	}
	return &dish, nil
}

func (r *PostgresRepository) GetDishesByIDs(ctx context.Context, ids []int) ([]domain.Dish, error) {
	if len(ids) == 0 {
		return []domain.Dish{}, nil
	}
	return r.queryDishes(ctx, `SELECT `+dishColumns+` FROM dishes WHERE id = ANY($1) ORDER BY id`, pq.Array(ids))
}

func (r *PostgresRepository) UpdateDish(ctx context.Context, dish *domain.Dish) error {
	return affected(r.q.ExecContext(ctx, `
		UPDATE dishes SET name = $1, description = $2, price = $3,
			calories = $4, protein = $5, carbs = $6, fat = $7, tags = $8
		WHERE id = $9`,
		dish.Name, dish.Description, dish.Price,
		dish.Nutrition.Calories, dish.Nutrition.Protein, dish.Nutrition.Carbs, dish.Nutrition.Fat,
		pq.Array(dish.Tags), dish.ID))
}

func (r *PostgresRepository) DeleteDish(ctx context.Context, id int) (int64, error) {
	res, err := r.q.ExecContext(ctx, `DELETE FROM dishes WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *PostgresRepository) UpdateDishImage(ctx context.Context, id int, imageURL string) error {
	return affected(r.q.ExecContext(ctx, `UPDATE dishes SET image_url = $1 WHERE id = $2`, imageURL, id))
}

// ApplyDishRating folds one rating into the running average; the row stays locked until the caller commits.
func (r *PostgresRepository) ApplyDishRating(ctx context.Context, dishID, rating int) error {
	var (
		avg   float64
		count int
	)
	if err := r.q.QueryRowContext(ctx,
		`SELECT rating, num_reviews FROM dishes WHERE id = $1 FOR UPDATE`, dishID).Scan(&avg, &count); err != nil {
		return notFound(err)
	}
	avg, count = domain.RunningAverage(avg, count, rating)
	return affected(r.q.ExecContext(ctx,
		`UPDATE dishes SET rating = $1, num_reviews = $2 WHERE id = $3`, avg, count, dishID))
}
