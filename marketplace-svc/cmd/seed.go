package cmd

import (
	"context"
	"fmt"
	"time"

	"tiffinbox/config"
	httpapi "tiffinbox/marketplace-svc/internal/api/http"
	"tiffinbox/marketplace-svc/internal/domain"
	"tiffinbox/marketplace-svc/internal/storage"

	"github.com/jaswdr/faker"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var (
	seedRestaurants int
	seedDishes      int
	seedTokenTTL    time.Duration
)

var cuisines = []string{"North Indian", "South Indian", "Chinese", "Italian", "Mughlai", "Bengali", "Street Food"}

var dishTags = []string{"veg", "non-veg", "vegan", "gluten-free", "high-protein", "low-carb", "spicy"}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill the database with a demo catalog and print bearer tokens for the demo accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}
		db, err := config.OpenPostgres(cfg.Database)
		if err != nil {
			return err
		}
		defer db.Close()

		repo := storage.NewPostgresRepository(db)
		ctx := cmd.Context()
		if err := repo.EnsureSchema(ctx); err != nil {
			return err
		}

		fake := faker.New()
		accounts := map[string]*domain.User{}
		for _, role := range []domain.Role{domain.RoleAdmin, domain.RoleCustomer, domain.RoleDelivery} {
			u := &domain.User{
				Name:       fake.Person().Name(),
				Email:      fake.Internet().Email(),
				Role:       role,
				IsVerified: true,
			}
			if err := repo.CreateUser(ctx, u); err != nil {
				return fmt.Errorf("create %s: %w", role, err)
			}
			accounts[string(role)] = u
		}
		if err := repo.CreateAddress(ctx, accounts[string(domain.RoleCustomer)].ID, &domain.Address{
			Label:      "home",
			Street:     fake.Address().StreetAddress(),
			City:       fake.Address().City(),
			State:      fake.Address().State(),
			PostalCode: fake.Address().PostCode(),
			Phone:      fake.Phone().Number(),
		}); err != nil {
			return err
		}

		bar := progressbar.Default(int64(seedRestaurants), "seeding restaurants")
		for i := 0; i < seedRestaurants; i++ {
			if err := seedRestaurant(ctx, repo, fake, accounts); err != nil {
				return err
			}
			bar.Add(1)
		}

		for name, u := range accounts {
			token, err := httpapi.IssueToken(cfg.Auth.JWTSecret, u.ID, seedTokenTTL)
			if err != nil {
				return err
			}
			fmt.Printf("%-10s user=%d email=%s\n  token=%s\n", name, u.ID, u.Email, token)
		}
		return nil
	},
}

func init() {
	seedCmd.Flags().IntVar(&seedRestaurants, "restaurants", 10, "number of restaurants to create")
	seedCmd.Flags().IntVar(&seedDishes, "dishes", 8, "dishes per restaurant")
	seedCmd.Flags().DurationVar(&seedTokenTTL, "token-ttl", 24*time.Hour, "lifetime of the printed tokens")
}

func seedRestaurant(ctx context.Context, repo *storage.PostgresRepository, fake faker.Faker, accounts map[string]*domain.User) error {
	owner := &domain.User{
		Name:       fake.Person().Name(),
		Email:      fake.Internet().Email(),
		Role:       domain.RoleRestaurant,
		IsVerified: true,
	}
	if err := repo.CreateUser(ctx, owner); err != nil {
		return err
	}

	rest := &domain.Restaurant{
		OwnerID:     owner.ID,
		Name:        fake.Company().Name() + " Kitchen",
		Address:     fake.Address().Address(),
		Description: fake.Lorem().Sentence(10),
		Cuisine:     cuisines[fake.IntBetween(0, len(cuisines)-1)],
		RecipeBox:   fake.Bool(),
	}
	if err := repo.CreateRestaurant(ctx, rest); err != nil {
		return err
	}
	if err := repo.SetUserRestaurant(ctx, owner.ID, &rest.ID); err != nil {
		return err
	}
	if _, ok := accounts[string(domain.RoleRestaurant)]; !ok {
		accounts[string(domain.RoleRestaurant)] = owner
	}

	for j := 0; j < seedDishes; j++ {
		dish := &domain.Dish{
			RestaurantID: rest.ID,
			Name:         fake.Food().Vegetable() + " " + fake.Food().Fruit(),
			Description:  fake.Lorem().Sentence(8),
			Price:        fake.Float64(2, 80, 600),
			Nutrition: domain.Nutrition{
				Calories: fake.Float64(0, 150, 900),
				Protein:  fake.Float64(1, 2, 40),
				Carbs:    fake.Float64(1, 5, 90),
				Fat:      fake.Float64(1, 1, 45),
			},
			Tags: []string{dishTags[fake.IntBetween(0, len(dishTags)-1)]},
		}
		if err := repo.CreateDish(ctx, dish); err != nil {
			return err
		}
	}

	for n := 1; n <= 4; n++ {
		table := &domain.Table{RestaurantID: rest.ID, Number: n, Capacity: 2 * n, IsActive: true}
		if err := repo.CreateTable(ctx, table); err != nil {
			return err
		}
	}
	return nil
}
