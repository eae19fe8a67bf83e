package models

import (
	"time"

	"gorm.io/gorm"
)

// ProductColor is a selectable color option for a product
type ProductColor struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Product represents a catalog item
type Product struct {
	ID          string         `gorm:"primaryKey" json:"id"` // slug, e.g. "rog-strix-gaming-laptop"
	Name        string         `gorm:"not null" json:"name"`
	Price       float64        `gorm:"not null" json:"price"`
	Description string         `gorm:"type:text" json:"description"`
	Images      []string       `gorm:"serializer:json" json:"images"`
	Colors      []ProductColor `gorm:"serializer:json" json:"colors"`
	Sizes       []string       `gorm:"serializer:json" json:"sizes"`
	Category    string         `gorm:"index" json:"category"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Product model
func (Product) TableName() string {
	return "products"
}
