package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Image is a reference to an asset held by the external image host.
type Image struct {
	PublicID string `bson:"public_id" json:"public_id"`
	URL      string `bson:"url" json:"url"`
}

type Brand struct {
	Name string `bson:"name" json:"name"`
	Logo Image  `bson:"logo" json:"logo"`
}

// Specification is a typed title/description pair. Free-form spec blobs from
// the client are validated into this shape at the API boundary.
type Specification struct {
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
}

type Review struct {
	ID      primitive.ObjectID `bson:"_id" json:"id"`
	UserID  primitive.ObjectID `bson:"user" json:"user"`
	Name    string             `bson:"name" json:"name"`
	Rating  float64            `bson:"rating" json:"rating"`
	Comment string             `bson:"comment" json:"comment"`
}

type Product struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	Description    string             `bson:"description" json:"description"`
	Highlights     []string           `bson:"highlights,omitempty" json:"highlights,omitempty"`
	Specifications []Specification    `bson:"specifications,omitempty" json:"specifications,omitempty"`
	Price          float64            `bson:"price" json:"price"`
	CuttedPrice    float64            `bson:"cuttedPrice" json:"cuttedPrice"`
	Images         []Image            `bson:"images" json:"images"`
	Brand          Brand              `bson:"brand" json:"brand"`
	Category       string             `bson:"category" json:"category"`
	Stock          int                `bson:"stock" json:"stock"`
	Warranty       int                `bson:"warranty" json:"warranty"`
	Ratings        float64            `bson:"ratings" json:"ratings"`
	NumOfReviews   int                `bson:"numOfReviews" json:"numOfReviews"`
	Reviews        []Review           `bson:"reviews" json:"reviews"`
	CreatedBy      primitive.ObjectID `bson:"user,omitempty" json:"user,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
}
