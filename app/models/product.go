package models

import "github.com/shopspring/decimal"

// Product is a catalogue item. ImageURLs keeps its order and is stored as
// a JSON array.
type Product struct {
	Base
	Name               string              `gorm:"size:255;not null;index" json:"name"`
	Slug               string              `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Description        string              `gorm:"type:text" json:"description"`
	BasePrice          decimal.Decimal     `gorm:"type:decimal(12,2);not null" json:"basePrice"`
	DiscountPercentage decimal.NullDecimal `gorm:"type:decimal(5,2)" json:"discountPercentage"`
	ImageURLs          []string            `gorm:"serializer:json;type:text" json:"imageUrls"`
	CategoryID         string              `gorm:"type:varchar(36);not null;index" json:"categoryId"`
	Category           *Category           `json:"category,omitempty"`
	Enabled            bool                `gorm:"not null;default:true;index" json:"enabled"`
}
