package main

import (
	"context"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/agriconnect/agriconnect-backend/internal/products"
	"github.com/agriconnect/agriconnect-backend/pkg/config"
	"github.com/agriconnect/agriconnect-backend/pkg/db"
	"github.com/agriconnect/agriconnect-backend/pkg/db/models"
	"github.com/agriconnect/agriconnect-backend/pkg/enums"
	"github.com/agriconnect/agriconnect-backend/pkg/logger"
)

func badge(b enums.ProductBadge) *enums.ProductBadge {
	return &b
}

// sampleProducts mirrors the demo catalog shipped with the mobile app. Farmer
// and location strings are the Bengali originals.
var sampleProducts = []models.Product{
	{
		Name:        "Fresh Organic Tomatoes",
		Price:       550,
		Image:       "https://images.unsplash.com/photo-1546094096-0df4bcaaa337?w=400",
		Category:    enums.CategoryVegetables,
		Farmer:      "সবুজ উপত্যকা খামার",
		Rating:      4.5,
		Unit:        "per kg",
		Location:    "সিলেট",
		Badge:       badge(enums.BadgeOrganic),
		Description: "Fresh and high-quality organic tomatoes sourced directly from local farmers.",
	},
	{
		Name:        "Sweet Corn",
		Price:       385,
		Image:       "https://images.unsplash.com/photo-1574323347407-f5e1ad6d020b?w=400",
		Category:    enums.CategoryVegetables,
		Farmer:      "রৌদ্রোজ্জ্বল খামার",
		Rating:      4.8,
		Unit:        "per dozen",
		Location:    "রংপুর",
		Badge:       badge(enums.BadgeFresh),
		Description: "Sweet and tender corn freshly harvested from sunny acres.",
	},
	{
		Name:        "Mixed Leafy Greens",
		Price:       770,
		Image:       "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?w=400",
		Category:    enums.CategoryVegetables,
		Farmer:      "জৈব ফসল কোম্পানি",
		Rating:      4.6,
		Unit:        "per bundle",
		Location:    "ময়মনসিংহ",
		Badge:       badge(enums.BadgeOrganic),
		Description: "A nutritious mix of fresh leafy greens perfect for salads.",
	},
	{
		Name:        "Farm Fresh Carrots",
		Price:       330,
		Image:       "https://images.unsplash.com/photo-1598170845058-32b9d6a5da37?w=400",
		Category:    enums.CategoryVegetables,
		Farmer:      "ঐতিহ্য খামার",
		Rating:      4.4,
		Unit:        "per kg",
		Location:    "দিনাজপুর",
		Badge:       badge(enums.BadgeLocal),
		Description: "Crunchy and sweet carrots from heritage farms.",
	},
	{
		Name:        "Fresh Strawberries",
		Price:       990,
		Image:       "https://images.unsplash.com/photo-1464965911861-746a04b4bca6?w=400",
		Category:    enums.CategoryFruits,
		Farmer:      "বেরি আনন্দ খামার",
		Rating:      4.9,
		Unit:        "per box",
		Location:    "চট্টগ্রাম",
		Badge:       badge(enums.BadgePremium),
		Description: "Juicy and sweet strawberries packed with flavor.",
	},
	{
		Name:        "Organic Bell Peppers",
		Price:       605,
		Image:       "https://images.unsplash.com/photo-1563565375-f3fdfdbefa83?w=400",
		Category:    enums.CategoryVegetables,
		Farmer:      "রঙিন ফসল খামার",
		Rating:      4.7,
		Unit:        "per kg",
		Location:    "বরিশাল",
		Badge:       badge(enums.BadgeOrganic),
		Description: "Colorful and crispy bell peppers grown organically.",
	},
	{
		Name:        "Fresh Avocados",
		Price:       880,
		Image:       "https://images.unsplash.com/photo-1523049673857-eb18f1d7b578?w=400",
		Category:    enums.CategoryFruits,
		Farmer:      "ক্রান্তীয় বাগান",
		Rating:      4.6,
		Unit:        "per kg",
		Location:    "স্যাধেট",
		Badge:       badge(enums.BadgeFresh),
		Description: "Creamy and nutritious avocados from tropical groves.",
	},
	{
		Name:        "Organic Broccoli",
		Price:       495,
		Image:       "https://images.unsplash.com/photo-1459411621453-7b03977f4bfc?w=400",
		Category:    enums.CategoryVegetables,
		Farmer:      "সবুজ ক্ষেত কোম্পানি",
		Rating:      4.5,
		Unit:        "per kg",
		Location:    "গাজীপুর",
		Badge:       badge(enums.BadgeOrganic),
		Description: "Fresh and nutritious organic broccoli.",
	},
}

func main() {
	logg := logger.New(logger.Options{ServiceName: "seed"})

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "seed",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	if cfg.App.IsProd() {
		logg.Warn(context.Background(), "refusing to seed a prod database")
		os.Exit(1)
	}

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer dbClient.Close()

	repo := products.NewRepository(dbClient.DB())
	farmerID := uuid.New()

	ctx := logg.WithField(context.Background(), "env", cfg.App.Env)
	for i := range sampleProducts {
		product := sampleProducts[i]
		product.FarmerID = farmerID
		if err := repo.Create(ctx, &product); err != nil {
			logg.Error(ctx, "failed to seed product "+product.Name, err)
			os.Exit(1)
		}
		logg.Info(logg.WithField(ctx, "product_id", product.ID.String()), "seeded "+product.Name)
	}
	logg.Info(ctx, "seeding complete")
}
