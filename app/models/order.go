package models

const (
	OrderPending   = "PENDING"
	OrderPaid      = "PAID"
	OrderShipped   = "SHIPPED"
	OrderDelivered = "DELIVERED"
	OrderCanceled  = "CANCELED"
)

// OrderStatuses lists every accepted status, in lifecycle order.
var OrderStatuses = []string{OrderPending, OrderPaid, OrderShipped, OrderDelivered, OrderCanceled}

// ValidOrderStatus reports whether s is one of OrderStatuses.
func ValidOrderStatus(s string) bool {
	for _, v := range OrderStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Order belongs to a user and holds order lines.
type Order struct {
	Base
	UserID  string      `gorm:"type:varchar(36);not null;index" json:"userId"`
	User    *User       `json:"user,omitempty"`
	Status  string      `gorm:"size:20;not null;default:PENDING" json:"status"`
	Enabled bool        `gorm:"not null;default:true;index" json:"enabled"`
	Lines   []OrderLine `gorm:"foreignKey:OrderID" json:"orderProducts,omitempty"`
}
