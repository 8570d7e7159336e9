package domain

import "time"

type Role string

const (
	RoleCustomer   Role = "customer"
	RoleRestaurant Role = "restaurant"
	RoleDelivery   Role = "delivery"
	RoleAdmin      Role = "admin"
)

type User struct {
	ID                 int       `json:"id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	Role               Role      `json:"role"`
	IsVerified         bool      `json:"is_verified"`
	RestaurantID       *int      `json:"restaurant_id,omitempty"`
	DeliveryPartnerID  *int      `json:"delivery_partner_id,omitempty"`
	DeliveryRating     float64   `json:"delivery_rating"`
	NumDeliveryReviews int       `json:"num_delivery_reviews"`
	CreatedAt          time.Time `json:"created_at"`
}

type Address struct {
	ID         int    `json:"id,omitempty"`
	Label      string `json:"label,omitempty"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Phone      string `json:"phone"`
}

type Restaurant struct {
	ID           int       `json:"id"`
	OwnerID      int       `json:"owner_id"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	Description  string    `json:"description"`
	Cuisine      string    `json:"cuisine"`
	ImageURL     string    `json:"image_url"`
	RecipeBox    bool      `json:"recipe_box"`
	IsBlocked    bool      `json:"is_blocked"`
	TotalOrders  int       `json:"total_orders"`
	TotalRevenue float64   `json:"total_revenue"`
	CreatedAt    time.Time `json:"created_at"`
}

type Nutrition struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

type Dish struct {
	ID           int       `json:"dish_id"`
	RestaurantID int       `json:"restaurant_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	ImageURL     string    `json:"image_url"`
	Nutrition    Nutrition `json:"nutrition"`
	Tags         []string  `json:"tags"`
	Rating       float64   `json:"rating"`
	NumReviews   int       `json:"num_reviews"`
	CreatedAt    time.Time `json:"created_at"`
}

type CartItem struct {
	DishID   int   `json:"dish_id"`
	Quantity int   `json:"quantity"`
	Dish     *Dish `json:"dish,omitempty"`
}

type Cart struct {
	UserID   int        `json:"user_id"`
	Items    []CartItem `json:"items"`
	Subtotal float64    `json:"subtotal"`
}

type RestaurantStats struct {
	RestaurantID int          `json:"restaurant_id"`
	TotalOrders  int          `json:"total_orders"`
	TotalRevenue float64      `json:"total_revenue"`
	TodayRevenue float64      `json:"today_revenue"`
	TopDishes    []DishMetric `json:"top_dishes"`
}

type DishMetric struct {
	DishID int     `json:"dish_id"`
	Score  float64 `json:"score"`
}

type RestaurantUpdate struct {
	Name        *string `json:"name,omitempty"`
	Address     *string `json:"address,omitempty"`
	Description *string `json:"description,omitempty"`
	Cuisine     *string `json:"cuisine,omitempty"`
	RecipeBox   *bool   `json:"recipe_box,omitempty"`
}

// DishUpdate has no rating fields; ratings only move through order ratings.
type DishUpdate struct {
	Name        *string    `json:"name,omitempty"`
	Description *string    `json:"description,omitempty"`
	Price       *float64   `json:"price,omitempty"`
	Nutrition   *Nutrition `json:"nutrition,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
}

// RunningAverage folds one more rating into an average over count ratings.
func RunningAverage(avg float64, count, rating int) (float64, int) {
	return (avg*float64(count) + float64(rating)) / float64(count+1), count + 1
}
