package services

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/backoffice/app/models"
	"github.com/shashiranjanraj/backoffice/app/repositories"
	"github.com/shashiranjanraj/backoffice/pkg/cache"
	"github.com/shashiranjanraj/backoffice/pkg/orm"
)

// DealsCacheKey holds the cached discounted-products list.
const DealsCacheKey = "products:deals"

type CreateProductInput struct {
	Name               string           `json:"name"               validate:"required,min=2,max=255"`
	Slug               string           `json:"slug"               validate:"required,slug,max=255"`
	Description        string           `json:"description"        validate:"max=5000"`
	BasePrice          *decimal.Decimal `json:"basePrice"          validate:"required,gte=0"`
	DiscountPercentage *decimal.Decimal `json:"discountPercentage" validate:"gte=0,lte=100"`
	ImageURLs          []string         `json:"imageUrls"          validate:"max=20"`
	CategoryID         string           `json:"categoryId"`
}

// UpdateProductInput is a partial update; nil fields are left unchanged.
type UpdateProductInput struct {
	Name               *string          `json:"name"               validate:"min=2,max=255"`
	Slug               *string          `json:"slug"               validate:"slug,max=255"`
	Description        *string          `json:"description"        validate:"max=5000"`
	BasePrice          *decimal.Decimal `json:"basePrice"          validate:"gte=0"`
	DiscountPercentage *decimal.Decimal `json:"discountPercentage" validate:"gte=0,lte=100"`
	ImageURLs          *[]string        `json:"imageUrls"          validate:"max=20"`
	CategoryID         *string          `json:"categoryId"`
}

type ProductService struct {
	db       *gorm.DB
	cache    cache.Store
	cacheTTL time.Duration
}

func NewProductService(db *gorm.DB, store cache.Store, ttl time.Duration) *ProductService {
	if store == nil {
		store = cache.NewMemory()
	}
	return &ProductService{db: db, cache: store, cacheTTL: ttl}
}

// Create checks the slug, then the category, then inserts, all in one
// transaction.
func (s *ProductService) Create(ctx context.Context, in CreateProductInput) (*models.Product, error) {
	product := &models.Product{
		Name:        strings.TrimSpace(in.Name),
		Slug:        in.Slug,
		Description: in.Description,
		ImageURLs:   in.ImageURLs,
		CategoryID:  strings.TrimSpace(in.CategoryID),
		Enabled:     true,
	}
	if in.BasePrice != nil {
		product.BasePrice = *in.BasePrice
	}
	if in.DiscountPercentage != nil {
		product.DiscountPercentage = decimal.NewNullDecimal(*in.DiscountPercentage)
	}
	if product.ImageURLs == nil {
		product.ImageURLs = []string{}
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		products := repositories.NewProductRepository(tx)

		taken, err := products.SlugTaken(ctx, product.Slug, "")
		if err != nil {
			return err
		}
		if taken {
			return BadRequest("Product with this slug already exists")
		}
		if product.CategoryID == "" {
			return BadRequest("Category ID is required")
		}
		if _, err := repositories.NewCategoryRepository(tx).FindByID(ctx, product.CategoryID); err != nil {
			return notFound(err, "Category not found")
		}
		return products.Create(ctx, product)
	})
	if err != nil {
		return nil, err
	}

	s.forgetDeals(ctx)
	return s.FindOne(ctx, product.ID)
}

func (s *ProductService) FindAll(ctx context.Context, q repositories.ListQuery) ([]models.Product, orm.Pagination, error) {
	items, total, err := repositories.NewProductRepository(s.db).List(ctx, q)
	if err != nil {
		return nil, orm.Pagination{}, err
	}
	return items, orm.NewPagination(q.Page, total), nil
}

func (s *ProductService) FindOne(ctx context.Context, id string) (*models.Product, error) {
	p, err := repositories.NewProductRepository(s.db).FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Product not found")
	}
	return p, nil
}

func (s *ProductService) FindBySlug(ctx context.Context, slug string) (*models.Product, error) {
	p, err := repositories.NewProductRepository(s.db).FindBySlug(ctx, slug)
	if err != nil {
		return nil, notFound(err, "Product not found")
	}
	return p, nil
}

// FindDiscounted serves the deals list from cache, loading it on a miss.
func (s *ProductService) FindDiscounted(ctx context.Context) ([]models.Product, error) {
	return cache.Remember(ctx, s.cache, DealsCacheKey, s.cacheTTL, func() ([]models.Product, error) {
		return repositories.NewProductRepository(s.db).Discounted(ctx)
	})
}

// Update applies the non-nil fields of in. A nil CategoryID keeps the
// current category.
func (s *ProductService) Update(ctx context.Context, id string, in UpdateProductInput) (*models.Product, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		products := repositories.NewProductRepository(tx)

		product, err := products.FindByID(ctx, id)
		if err != nil {
			return notFound(err, "Product not found")
		}
		product.Category = nil

		var fields []string
		if in.Slug != nil && *in.Slug != product.Slug {
			taken, err := products.SlugTaken(ctx, *in.Slug, id)
			if err != nil {
				return err
			}
			if taken {
				return BadRequest("Product with this slug already exists")
			}
			product.Slug = *in.Slug
			fields = append(fields, "Slug")
		}
		if in.CategoryID != nil {
			categoryID := strings.TrimSpace(*in.CategoryID)
			if categoryID == "" {
				return BadRequest("Category ID is required")
			}
			if _, err := repositories.NewCategoryRepository(tx).FindByID(ctx, categoryID); err != nil {
				return notFound(err, "Category not found")
			}
			product.CategoryID = categoryID
			fields = append(fields, "CategoryID")
		}
		if in.Name != nil {
			product.Name = strings.TrimSpace(*in.Name)
			fields = append(fields, "Name")
		}
		if in.Description != nil {
			product.Description = *in.Description
			fields = append(fields, "Description")
		}
		if in.BasePrice != nil {
			product.BasePrice = *in.BasePrice
			fields = append(fields, "BasePrice")
		}
		if in.DiscountPercentage != nil {
			product.DiscountPercentage = decimal.NewNullDecimal(*in.DiscountPercentage)
			fields = append(fields, "DiscountPercentage")
		}
		if in.ImageURLs != nil {
			product.ImageURLs = *in.ImageURLs
			fields = append(fields, "ImageURLs")
		}
		return products.Update(ctx, product, fields...)
	})
	if err != nil {
		return nil, err
	}

	s.forgetDeals(ctx)
	return s.FindOne(ctx, id)
}

// Remove soft-deletes the product. Removing it twice is a 404.
func (s *ProductService) Remove(ctx context.Context, id string) error {
	ok, err := repositories.NewProductRepository(s.db).Disable(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return NotFound("Product not found")
	}
	s.forgetDeals(ctx)
	return nil
}

func (s *ProductService) forgetDeals(ctx context.Context) {
	cache.Forget(ctx, s.cache, DealsCacheKey)
}
