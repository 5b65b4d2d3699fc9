package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/backoffice/app/models"
	"github.com/shashiranjanraj/backoffice/pkg/orm"
)

type OrderLineRepository struct {
	db *gorm.DB
}

func NewOrderLineRepository(db *gorm.DB) *OrderLineRepository {
	return &OrderLineRepository{db: db}
}

func (r *OrderLineRepository) enabled(ctx context.Context) *gorm.DB {
	return apply(r.db.WithContext(ctx).Model(&models.OrderLine{}), orm.Enabled("order_products"))
}

func (r *OrderLineRepository) FindByID(ctx context.Context, id string) (*models.OrderLine, error) {
	var l models.OrderLine
	err := r.enabled(ctx).Preload("Product").Where("order_products.id = ?", id).First(&l).Error
	return &l, err
}

// List orders by product id so lines of the same product sit together.
func (r *OrderLineRepository) List(ctx context.Context, q ListQuery) ([]models.OrderLine, int64, error) {
	base := r.enabled(ctx).Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []models.OrderLine
	err := apply(base, orm.Paginate(q.Page)).
		Order("order_products.product_id asc").
		Order("order_products.created_at asc").
		Find(&out).Error
	return out, total, err
}

func (r *OrderLineRepository) Create(ctx context.Context, l *models.OrderLine) error {
	return r.db.WithContext(ctx).Omit("Order", "Product").Create(l).Error
}

// Update writes the named fields of l, zero values included.
func (r *OrderLineRepository) Update(ctx context.Context, l *models.OrderLine, fields ...string) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(l).Select(fields).Updates(l).Error
}

func (r *OrderLineRepository) Disable(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Model(&models.OrderLine{}).
		Where("id = ? AND enabled = ?", id, true).
		Update("enabled", false)
	return res.RowsAffected > 0, res.Error
}
