package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/backoffice/app/models"
	"github.com/shashiranjanraj/backoffice/app/repositories"
	"github.com/shashiranjanraj/backoffice/pkg/auth"
)

var ctx = context.Background()

func seedUser(t *testing.T, db *gorm.DB, name, email, role string) *models.User {
	t.Helper()
	hash, err := auth.HashPassword("secret-password")
	require.NoError(t, err)
	u := &models.User{Name: name, Email: email, Password: hash, Role: role}
	require.NoError(t, repositories.NewUserRepository(db).Create(ctx, u))
	return u
}

func seedCategory(t *testing.T, db *gorm.DB, name, slug string) *models.Category {
	t.Helper()
	c := &models.Category{Name: name, Slug: slug, Enabled: true}
	require.NoError(t, repositories.NewCategoryRepository(db).Create(ctx, c))
	return c
}

func seedProduct(t *testing.T, db *gorm.DB, categoryID, name, slug string, discount string) *models.Product {
	t.Helper()
	p := &models.Product{
		Name:       name,
		Slug:       slug,
		BasePrice:  decimal.RequireFromString("10.00"),
		ImageURLs:  []string{},
		CategoryID: categoryID,
		Enabled:    true,
	}
	if discount != "" {
		p.DiscountPercentage = decimal.NewNullDecimal(decimal.RequireFromString(discount))
	}
	require.NoError(t, repositories.NewProductRepository(db).Create(ctx, p))
	return p
}

func seedOrder(t *testing.T, db *gorm.DB, userID string) *models.Order {
	t.Helper()
	o := &models.Order{UserID: userID, Status: models.OrderPending, Enabled: true}
	require.NoError(t, repositories.NewOrderRepository(db).Create(ctx, o))
	return o
}

func seedLine(t *testing.T, db *gorm.DB, orderID, productID string) *models.OrderLine {
	t.Helper()
	l := &models.OrderLine{
		OrderID:   orderID,
		ProductID: productID,
		BasePrice: decimal.RequireFromString("10.00"),
		Quantity:  1,
		Enabled:   true,
	}
	require.NoError(t, repositories.NewOrderLineRepository(db).Create(ctx, l))
	return l
}

func count(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func strPtr(s string) *string { return &s }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}
