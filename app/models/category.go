package models

// Category groups products. Disabling is one-way.
type Category struct {
	Base
	Name     string    `gorm:"size:255;not null;index" json:"name"`
	Slug     string    `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	ImageURL string    `gorm:"size:1024" json:"imageUrl"`
	Enabled  bool      `gorm:"not null;default:true;index" json:"enabled"`
	Products []Product `json:"products,omitempty"`
}
