package services

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/backoffice/app/models"
	"github.com/shashiranjanraj/backoffice/app/repositories"
	"github.com/shashiranjanraj/backoffice/pkg/orm"
)

// CreateOrderLineInput carries the price snapshot stored on the line.
type CreateOrderLineInput struct {
	OrderID            string           `json:"orderId"`
	ProductID          string           `json:"productId"`
	BasePrice          *decimal.Decimal `json:"basePrice"          validate:"required,gte=0"`
	DiscountPercentage *decimal.Decimal `json:"discountPercentage" validate:"gte=0,lte=100"`
	Quantity           *int             `json:"quantity"           validate:"gte=1"`
}

type UpdateOrderLineInput struct {
	OrderID            *string          `json:"orderId"`
	ProductID          *string          `json:"productId"`
	BasePrice          *decimal.Decimal `json:"basePrice"          validate:"gte=0"`
	DiscountPercentage *decimal.Decimal `json:"discountPercentage" validate:"gte=0,lte=100"`
	Quantity           *int             `json:"quantity"           validate:"gte=1"`
}

type OrderProductService struct {
	db *gorm.DB
}

func NewOrderProductService(db *gorm.DB) *OrderProductService {
	return &OrderProductService{db: db}
}

func checkProduct(ctx context.Context, db *gorm.DB, id string) error {
	if strings.TrimSpace(id) == "" {
		return BadRequest("Product ID is required")
	}
	if _, err := repositories.NewProductRepository(db).FindByID(ctx, id); err != nil {
		return notFound(err, "Product not found")
	}
	return nil
}

func checkOrder(ctx context.Context, db *gorm.DB, id string) error {
	if strings.TrimSpace(id) == "" {
		return BadRequest("Order ID is required")
	}
	if _, err := repositories.NewOrderRepository(db).FindByID(ctx, id); err != nil {
		return notFound(err, "Order not found")
	}
	return nil
}

// Create validates the product, then the order, and stops at the first
// failure. Nothing is written unless both resolve.
func (s *OrderProductService) Create(ctx context.Context, in CreateOrderLineInput) (*models.OrderLine, error) {
	line := &models.OrderLine{
		OrderID:   strings.TrimSpace(in.OrderID),
		ProductID: strings.TrimSpace(in.ProductID),
		Quantity:  1,
		Enabled:   true,
	}
	if in.BasePrice != nil {
		line.BasePrice = *in.BasePrice
	}
	if in.DiscountPercentage != nil {
		line.DiscountPercentage = *in.DiscountPercentage
	}
	if in.Quantity != nil {
		line.Quantity = *in.Quantity
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkProduct(ctx, tx, line.ProductID); err != nil {
			return err
		}
		if err := checkOrder(ctx, tx, line.OrderID); err != nil {
			return err
		}
		return repositories.NewOrderLineRepository(tx).Create(ctx, line)
	})
	if err != nil {
		return nil, err
	}
	return line, nil
}

// FindAll always paginates; page and perPage default to 1 and 10.
func (s *OrderProductService) FindAll(ctx context.Context, q repositories.ListQuery) ([]models.OrderLine, orm.Pagination, error) {
	q.Page = q.Page.WithDefaults(1, 10)
	items, total, err := repositories.NewOrderLineRepository(s.db).List(ctx, q)
	if err != nil {
		return nil, orm.Pagination{}, err
	}
	return items, orm.NewPagination(q.Page, total), nil
}

func (s *OrderProductService) FindOne(ctx context.Context, id string) (*models.OrderLine, error) {
	l, err := repositories.NewOrderLineRepository(s.db).FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Order product not found")
	}
	return l, nil
}

// Update applies the non-nil fields. A supplied productId or orderId must
// resolve.
func (s *OrderProductService) Update(ctx context.Context, id string, in UpdateOrderLineInput) (*models.OrderLine, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lines := repositories.NewOrderLineRepository(tx)
		line, err := lines.FindByID(ctx, id)
		if err != nil {
			return notFound(err, "Order product not found")
		}
		line.Product = nil

		var fields []string
		if in.ProductID != nil {
			if err := checkProduct(ctx, tx, *in.ProductID); err != nil {
				return err
			}
			line.ProductID = strings.TrimSpace(*in.ProductID)
			fields = append(fields, "ProductID")
		}
		if in.OrderID != nil {
			if err := checkOrder(ctx, tx, *in.OrderID); err != nil {
				return err
			}
			line.OrderID = strings.TrimSpace(*in.OrderID)
			fields = append(fields, "OrderID")
		}
		if in.BasePrice != nil {
			line.BasePrice = *in.BasePrice
			fields = append(fields, "BasePrice")
		}
		if in.DiscountPercentage != nil {
			line.DiscountPercentage = *in.DiscountPercentage
			fields = append(fields, "DiscountPercentage")
		}
		if in.Quantity != nil {
			line.Quantity = *in.Quantity
			fields = append(fields, "Quantity")
		}
		return lines.Update(ctx, line, fields...)
	})
	if err != nil {
		return nil, err
	}
	return s.FindOne(ctx, id)
}

func (s *OrderProductService) Remove(ctx context.Context, id string) error {
	ok, err := repositories.NewOrderLineRepository(s.db).Disable(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return NotFound("Order product not found")
	}
	return nil
}
