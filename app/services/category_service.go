package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/backoffice/app/models"
	"github.com/shashiranjanraj/backoffice/app/repositories"
	"github.com/shashiranjanraj/backoffice/pkg/cache"
	"github.com/shashiranjanraj/backoffice/pkg/orm"
)

type CreateCategoryInput struct {
	Name     string `json:"name"     validate:"required,min=2,max=255"`
	Slug     string `json:"slug"     validate:"required,slug,max=255"`
	ImageURL string `json:"imageUrl" validate:"nullable,url,max=1024"`
}

type UpdateCategoryInput struct {
	Name     *string `json:"name"     validate:"min=2,max=255"`
	Slug     *string `json:"slug"     validate:"slug,max=255"`
	ImageURL *string `json:"imageUrl" validate:"nullable,url,max=1024"`
}

type CategoryService struct {
	db    *gorm.DB
	cache cache.Store
}

// NewCategoryService takes the product cache so a cascade delete can drop
// the deals list.
func NewCategoryService(db *gorm.DB, store cache.Store) *CategoryService {
	if store == nil {
		store = cache.NewMemory()
	}
	return &CategoryService{db: db, cache: store}
}

func (s *CategoryService) Create(ctx context.Context, in CreateCategoryInput) (*models.Category, error) {
	category := &models.Category{
		Name:     strings.TrimSpace(in.Name),
		Slug:     in.Slug,
		ImageURL: in.ImageURL,
		Enabled:  true,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		categories := repositories.NewCategoryRepository(tx)
		taken, err := categories.SlugTaken(ctx, category.Slug, "")
		if err != nil {
			return err
		}
		if taken {
			return BadRequest("Category with this slug already exists")
		}
		return categories.Create(ctx, category)
	})
	if err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) FindAll(ctx context.Context, q repositories.ListQuery) ([]models.Category, orm.Pagination, error) {
	items, total, err := repositories.NewCategoryRepository(s.db).List(ctx, q)
	if err != nil {
		return nil, orm.Pagination{}, err
	}
	return items, orm.NewPagination(q.Page, total), nil
}

func (s *CategoryService) FindOne(ctx context.Context, id string) (*models.Category, error) {
	c, err := repositories.NewCategoryRepository(s.db).FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Category not found")
	}
	return c, nil
}

func (s *CategoryService) FindBySlug(ctx context.Context, slug string) (*models.Category, error) {
	c, err := repositories.NewCategoryRepository(s.db).FindBySlug(ctx, slug)
	if err != nil {
		return nil, notFound(err, "Category not found")
	}
	return c, nil
}

func (s *CategoryService) Update(ctx context.Context, id string, in UpdateCategoryInput) (*models.Category, error) {
	var category *models.Category
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		categories := repositories.NewCategoryRepository(tx)

		var err error
		category, err = categories.FindByID(ctx, id)
		if err != nil {
			return notFound(err, "Category not found")
		}

		var fields []string
		if in.Slug != nil && *in.Slug != category.Slug {
			taken, err := categories.SlugTaken(ctx, *in.Slug, id)
			if err != nil {
				return err
			}
			if taken {
				return BadRequest("Category with this slug already exists")
			}
			category.Slug = *in.Slug
			fields = append(fields, "Slug")
		}
		if in.Name != nil {
			category.Name = strings.TrimSpace(*in.Name)
			fields = append(fields, "Name")
		}
		if in.ImageURL != nil {
			category.ImageURL = *in.ImageURL
			fields = append(fields, "ImageURL")
		}
		return categories.Update(ctx, category, fields...)
	})
	if err != nil {
		return nil, err
	}
	return category, nil
}

// Remove hard-deletes the category, its products and their order lines in
// one transaction. Any failure rolls the whole cascade back.
func (s *CategoryService) Remove(ctx context.Context, id string) (repositories.CascadeResult, error) {
	var result repositories.CascadeResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		categories := repositories.NewCategoryRepository(tx)
		if _, err := categories.FindByID(ctx, id); err != nil {
			return notFound(err, "Category not found")
		}

		var err error
		result, err = categories.DeleteCascade(ctx, id)
		return err
	})
	if err != nil {
		return repositories.CascadeResult{}, err
	}

	cache.Forget(ctx, s.cache, DealsCacheKey)
	return result, nil
}
