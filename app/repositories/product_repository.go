package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/backoffice/app/models"
	"github.com/shashiranjanraj/backoffice/pkg/orm"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) enabled(ctx context.Context) *gorm.DB {
	return apply(r.db.WithContext(ctx).Model(&models.Product{}), orm.Enabled("products"))
}

// FindByID returns an enabled product with its category.
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	var p models.Product
	err := r.enabled(ctx).Preload("Category").Where("products.id = ?", id).First(&p).Error
	return &p, err
}

// FindBySlug returns an enabled product, its category and that category's
// enabled products ordered by name.
func (r *ProductRepository) FindBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var p models.Product
	err := r.enabled(ctx).
		Preload("Category").
		Preload("Category.Products", func(db *gorm.DB) *gorm.DB {
			return apply(db, orm.Enabled("products")).Order("products.name asc")
		}).
		Where("products.slug = ?", slug).
		First(&p).Error
	return &p, err
}

func (r *ProductRepository) SlugTaken(ctx context.Context, slug, exceptID string) (bool, error) {
	q := r.db.Model(&models.Product{}).Where("slug = ?", slug)
	if exceptID != "" {
		q = q.Where("id <> ?", exceptID)
	}
	return exists(ctx, q)
}

// List returns enabled products ordered by name, with their category.
func (r *ProductRepository) List(ctx context.Context, q ListQuery) ([]models.Product, int64, error) {
	base := apply(r.enabled(ctx), orm.NameContains("products.name", q.Name)).Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []models.Product
	err := apply(base, orm.Paginate(q.Page)).
		Preload("Category").
		Order("products.name asc").
		Find(&out).Error
	return out, total, err
}

// Discounted returns enabled products whose discount is above zero.
func (r *ProductRepository) Discounted(ctx context.Context) ([]models.Product, error) {
	var out []models.Product
	err := r.enabled(ctx).
		Preload("Category").
		Where("products.discount_percentage IS NOT NULL AND products.discount_percentage > ?", 0).
		Order("products.name asc").
		Find(&out).Error
	return out, err
}

func (r *ProductRepository) Create(ctx context.Context, p *models.Product) error {
	return r.db.WithContext(ctx).Omit("Category").Create(p).Error
}

// Update writes the named fields of p, zero values included.
func (r *ProductRepository) Update(ctx context.Context, p *models.Product, fields ...string) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(p).Select(fields).Updates(p).Error
}

// Disable soft-deletes an enabled product and reports whether a row changed.
func (r *ProductRepository) Disable(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Model(&models.Product{}).
		Where("id = ? AND enabled = ?", id, true).
		Update("enabled", false)
	return res.RowsAffected > 0, res.Error
}
