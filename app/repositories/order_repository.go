package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/backoffice/app/models"
	"github.com/shashiranjanraj/backoffice/pkg/orm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) enabled(ctx context.Context) *gorm.DB {
	return apply(r.db.WithContext(ctx).Model(&models.Order{}), orm.Enabled("orders"))
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*models.Order, error) {
	var o models.Order
	err := r.enabled(ctx).Preload("User").Where("orders.id = ?", id).First(&o).Error
	return &o, err
}

// List filters on the owning user's name and orders by creation time.
func (r *OrderRepository) List(ctx context.Context, q ListQuery) ([]models.Order, int64, error) {
	base := r.enabled(ctx)
	if q.Name != "" {
		owners := apply(r.db.Model(&models.User{}).Select("id"), orm.NameContains("name", q.Name))
		base = base.Where("orders.user_id IN (?)", owners)
	}
	base = base.Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []models.Order
	err := apply(base, orm.Paginate(q.Page)).
		Preload("User").
		Order("orders.created_at asc").
		Find(&out).Error
	return out, total, err
}

func (r *OrderRepository) Create(ctx context.Context, o *models.Order) error {
	return r.db.WithContext(ctx).Omit("User", "Lines").Create(o).Error
}

// Update writes the named fields of o, zero values included.
func (r *OrderRepository) Update(ctx context.Context, o *models.Order, fields ...string) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(o).Select(fields).Updates(o).Error
}

func (r *OrderRepository) Disable(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Model(&models.Order{}).
		Where("id = ? AND enabled = ?", id, true).
		Update("enabled", false)
	return res.RowsAffected > 0, res.Error
}
