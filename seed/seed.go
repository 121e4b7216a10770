package main

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MdSaifulIslamMSI/Flipkart-Clone/shared/config"
	"github.com/MdSaifulIslamMSI/Flipkart-Clone/shared/models"
)

func main() {
	log.Println("Starting database seeder...")

	cfg := config.Load()

	clientOptions := options.Client().
		ApplyURI(cfg.MongoURI).
		SetServerSelectionTimeout(10 * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	log.Printf("Connecting to MongoDB at %s", cfg.MongoURI)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())

	log.Println("Pinging MongoDB...")
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}
	log.Println("Successfully connected to MongoDB!")

	db := client.Database(cfg.Database)

	cleanCollections(db)
	seedProducts(db)

	log.Println("Database seeding completed successfully!")
}

func cleanCollections(db *mongo.Database) {
	collections := []string{"products", "orders", "payments"}
	for _, collection := range collections {
		log.Printf("Cleaning collection: %s", collection)
		_, err := db.Collection(collection).DeleteMany(context.Background(), bson.M{})
		if err != nil {
			log.Printf("Failed to clean collection %s: %v", collection, err)
		}
	}
}

func seedProducts(db *mongo.Database) {
	log.Println("Seeding products...")
	productCollection := db.Collection("products")

	admin := primitive.NewObjectID()
	now := time.Now()

	products := []models.Product{
		{
			ID:          primitive.NewObjectID(),
			Name:        "OnePlus Nord CE 3",
			Description: "Mid-range smartphone with 8GB RAM and 128GB storage",
			Highlights:  []string{"8GB RAM", "128GB storage", "5000mAh battery"},
			Specifications: []models.Specification{
				{Title: "Display", Description: "6.7-inch AMOLED, 120Hz"},
				{Title: "Processor", Description: "Snapdragon 782G"},
			},
			Price:       26999,
			CuttedPrice: 29999,
			Images:      []models.Image{{PublicID: "products/nord-ce3", URL: "https://example.com/img/nord-ce3.jpg"}},
			Brand:       models.Brand{Name: "OnePlus", Logo: models.Image{PublicID: "brands/oneplus", URL: "https://example.com/img/oneplus.png"}},
			Category:    "Mobiles",
			Stock:       50,
			Warranty:    1,
			Reviews:     []models.Review{},
			CreatedBy:   admin,
			CreatedAt:   now,
		},
		{
			ID:          primitive.NewObjectID(),
			Name:        "Dell Inspiron 15",
			Description: "Core i5 laptop with 16GB RAM and 512GB SSD",
			Highlights:  []string{"Core i5 12th Gen", "16GB RAM", "512GB SSD"},
			Specifications: []models.Specification{
				{Title: "Display", Description: "15.6-inch FHD"},
				{Title: "Graphics", Description: "Intel Iris Xe"},
			},
			Price:       58999,
			CuttedPrice: 65999,
			Images:      []models.Image{{PublicID: "products/inspiron-15", URL: "https://example.com/img/inspiron-15.jpg"}},
			Brand:       models.Brand{Name: "Dell", Logo: models.Image{PublicID: "brands/dell", URL: "https://example.com/img/dell.png"}},
			Category:    "Laptops",
			Stock:       100,
			Warranty:    2,
			Reviews:     []models.Review{},
			CreatedBy:   admin,
			CreatedAt:   now,
		},
		{
			ID:          primitive.NewObjectID(),
			Name:        "boAt Rockerz 450",
			Description: "Wireless Bluetooth headphones with 15hr battery life",
			Highlights:  []string{"15hr battery", "40mm drivers"},
			Price:       1499,
			CuttedPrice: 2990,
			Images:      []models.Image{{PublicID: "products/rockerz-450", URL: "https://example.com/img/rockerz-450.jpg"}},
			Brand:       models.Brand{Name: "boAt", Logo: models.Image{PublicID: "brands/boat", URL: "https://example.com/img/boat.png"}},
			Category:    "Electronics",
			Stock:       200,
			Warranty:    1,
			Reviews:     []models.Review{},
			CreatedBy:   admin,
			CreatedAt:   now,
		},
		{
			ID:          primitive.NewObjectID(),
			Name:        "Noise ColorFit Pro 4",
			Description: "Smartwatch with SpO2 monitoring and fitness tracking",
			Highlights:  []string{"1.72-inch display", "SpO2 monitoring"},
			Price:       2499,
			CuttedPrice: 4999,
			Images:      []models.Image{{PublicID: "products/colorfit-pro4", URL: "https://example.com/img/colorfit-pro4.jpg"}},
			Brand:       models.Brand{Name: "Noise", Logo: models.Image{PublicID: "brands/noise", URL: "https://example.com/img/noise.png"}},
			Category:    "Electronics",
			Stock:       75,
			Warranty:    1,
			Reviews:     []models.Review{},
			CreatedBy:   admin,
			CreatedAt:   now,
		},
		{
			ID:          primitive.NewObjectID(),
			Name:        "Men's Cotton Casual Shirt",
			Description: "Slim fit full-sleeve shirt in breathable cotton",
			Highlights:  []string{"100% cotton", "Slim fit"},
			Price:       799,
			CuttedPrice: 1599,
			Images:      []models.Image{{PublicID: "products/casual-shirt", URL: "https://example.com/img/casual-shirt.jpg"}},
			Brand:       models.Brand{Name: "Allen Solly", Logo: models.Image{PublicID: "brands/allen-solly", URL: "https://example.com/img/allen-solly.png"}},
			Category:    "Fashion",
			Stock:       60,
			Warranty:    0,
			Reviews:     []models.Review{},
			CreatedBy:   admin,
			CreatedAt:   now,
		},
	}

	for _, product := range products {
		_, err := productCollection.InsertOne(context.Background(), product)
		if err != nil {
			log.Printf("Failed to insert product %s: %v", product.Name, err)
		}
	}

	log.Printf("Inserted %d products", len(products))
}
