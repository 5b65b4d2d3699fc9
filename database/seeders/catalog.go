package seeders

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/backoffice/app/models"
	"github.com/shashiranjanraj/backoffice/app/repositories"
)

func init() {
	Register("catalog", SeedCatalog)
}

type sampleProduct struct {
	name, slug, price, discount string
}

var sampleCatalog = []struct {
	name, slug string
	products   []sampleProduct
}{
	{"Mugs", "mugs", []sampleProduct{
		{"Red Mug", "red-mug", "12.50", ""},
		{"Blue Mug", "blue-mug", "12.50", "10"},
	}},
	{"Plates", "plates", []sampleProduct{
		{"Dinner Plate", "dinner-plate", "18.00", ""},
		{"Side Plate", "side-plate", "9.90", "25"},
	}},
}

// SeedCatalog inserts the sample categories and products whose slugs are
// not taken yet.
func SeedCatalog(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		categories := repositories.NewCategoryRepository(tx)
		products := repositories.NewProductRepository(tx)

		for _, sc := range sampleCatalog {
			cat, err := categories.FindBySlug(ctx, sc.slug)
			if repositories.IsNotFound(err) {
				cat = &models.Category{Name: sc.name, Slug: sc.slug, Enabled: true}
				err = categories.Create(ctx, cat)
			}
			if err != nil {
				return err
			}

			for _, sp := range sc.products {
				taken, err := products.SlugTaken(ctx, sp.slug, "")
				if err != nil {
					return err
				}
				if taken {
					continue
				}
				p := &models.Product{
					Name:       sp.name,
					Slug:       sp.slug,
					BasePrice:  decimal.RequireFromString(sp.price),
					ImageURLs:  []string{},
					CategoryID: cat.ID,
					Enabled:    true,
				}
				if sp.discount != "" {
					p.DiscountPercentage = decimal.NewNullDecimal(decimal.RequireFromString(sp.discount))
				}
				if err := products.Create(ctx, p); err != nil {
					return err
				}
			}
		}
		return nil
	})
}
