package models

import "github.com/shopspring/decimal"

// OrderLine links a product to an order. Prices are snapshots taken when
// the line was written, not live product values.
type OrderLine struct {
	Base
	OrderID            string          `gorm:"type:varchar(36);not null;index" json:"orderId"`
	Order              *Order          `json:"order,omitempty"`
	ProductID          string          `gorm:"type:varchar(36);not null;index" json:"productId"`
	Product            *Product        `json:"product,omitempty"`
	BasePrice          decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"basePrice"`
	DiscountPercentage decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0" json:"discountPercentage"`
	Quantity           int             `gorm:"not null;default:1" json:"quantity"`
	Enabled            bool            `gorm:"not null;default:true;index" json:"enabled"`
}

func (OrderLine) TableName() string { return "order_products" }
