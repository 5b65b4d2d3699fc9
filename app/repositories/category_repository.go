package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/backoffice/app/models"
	"github.com/shashiranjanraj/backoffice/pkg/orm"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) enabled(ctx context.Context) *gorm.DB {
	return apply(r.db.WithContext(ctx).Model(&models.Category{}), orm.Enabled("categories"))
}

func (r *CategoryRepository) FindByID(ctx context.Context, id string) (*models.Category, error) {
	var c models.Category
	err := r.enabled(ctx).Where("id = ?", id).First(&c).Error
	return &c, err
}

// FindBySlug loads the category with its enabled products, each carrying
// its category back-reference.
func (r *CategoryRepository) FindBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var c models.Category
	err := r.enabled(ctx).
		Preload("Products", func(db *gorm.DB) *gorm.DB {
			return apply(db, orm.Enabled("products")).Order("products.name asc")
		}).
		Preload("Products.Category").
		Where("slug = ?", slug).
		First(&c).Error
	return &c, err
}

// SlugTaken checks every row, disabled included, because the unique index does.
func (r *CategoryRepository) SlugTaken(ctx context.Context, slug, exceptID string) (bool, error) {
	q := r.db.Model(&models.Category{}).Where("slug = ?", slug)
	if exceptID != "" {
		q = q.Where("id <> ?", exceptID)
	}
	return exists(ctx, q)
}

func (r *CategoryRepository) List(ctx context.Context, q ListQuery) ([]models.Category, int64, error) {
	base := apply(r.enabled(ctx), orm.NameContains("categories.name", q.Name)).Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []models.Category
	err := apply(base, orm.Paginate(q.Page)).
		Order("categories.name asc").
		Find(&out).Error
	return out, total, err
}

func (r *CategoryRepository) Create(ctx context.Context, c *models.Category) error {
	return r.db.WithContext(ctx).Create(c).Error
}

// Update writes the named fields of c, zero values included.
func (r *CategoryRepository) Update(ctx context.Context, c *models.Category, fields ...string) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(c).Select(fields).Updates(c).Error
}

// CascadeResult counts the rows removed by DeleteCascade.
type CascadeResult struct {
	OrderLines int64 `json:"orderLines"`
	Products   int64 `json:"products"`
	Categories int64 `json:"categories"`
}

// DeleteCascade hard-deletes the order lines of the category's products,
// the products and the category. Run it inside a transaction.
func (r *CategoryRepository) DeleteCascade(ctx context.Context, id string) (CascadeResult, error) {
	var out CascadeResult
	db := r.db.WithContext(ctx)

	productIDs := db.Model(&models.Product{}).Select("id").Where("category_id = ?", id)

	res := db.Where("product_id IN (?)", productIDs).Delete(&models.OrderLine{})
	if res.Error != nil {
		return out, res.Error
	}
	out.OrderLines = res.RowsAffected

	res = db.Where("category_id = ?", id).Delete(&models.Product{})
	if res.Error != nil {
		return out, res.Error
	}
	out.Products = res.RowsAffected

	res = db.Where("id = ?", id).Delete(&models.Category{})
	if res.Error != nil {
		return out, res.Error
	}
	out.Categories = res.RowsAffected
	return out, nil
}
