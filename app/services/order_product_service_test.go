package services

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/backoffice/app/models"
	"github.com/shashiranjanraj/backoffice/app/repositories"
	"github.com/shashiranjanraj/backoffice/pkg/testkit"
)

func orderFixture(t *testing.T) (*gorm.DB, *models.Order, *models.Product) {
	db := testkit.NewDB(t, models.All()...)
	user := seedUser(t, db, "Ann", "ann@example.com", models.RoleUser)
	cat := seedCategory(t, db, "Mugs", "mugs")
	return db, seedOrder(t, db, user.ID), seedProduct(t, db, cat.ID, "Red Mug", "red-mug", "")
}

func TestOrderLineCreate(t *testing.T) {
	db, order, product := orderFixture(t)
	svc := NewOrderProductService(db)

	l, err := svc.Create(ctx, CreateOrderLineInput{
		OrderID:            order.ID,
		ProductID:          product.ID,
		BasePrice:          decPtr("9.99"),
		DiscountPercentage: decPtr("5"),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, l.Quantity)
	assert.True(t, l.BasePrice.Equal(*decPtr("9.99")))

	got, err := svc.FindOne(ctx, l.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Product)
	assert.Equal(t, product.ID, got.Product.ID)
}

func TestOrderLineCreateChecksProductFirst(t *testing.T) {
	db, order, product := orderFixture(t)
	svc := NewOrderProductService(db)

	_, err := svc.Create(ctx, CreateOrderLineInput{OrderID: "", ProductID: "", BasePrice: decPtr("1")})
	require.True(t, IsStatus(err, http.StatusBadRequest))
	assert.Equal(t, "Product ID is required", err.Error())

	_, err = svc.Create(ctx, CreateOrderLineInput{OrderID: "missing", ProductID: "missing", BasePrice: decPtr("1")})
	require.True(t, IsStatus(err, http.StatusNotFound))
	assert.Equal(t, "Product not found", err.Error())

	_, err = svc.Create(ctx, CreateOrderLineInput{ProductID: product.ID, BasePrice: decPtr("1")})
	require.True(t, IsStatus(err, http.StatusBadRequest))
	assert.Equal(t, "Order ID is required", err.Error())

	_, err = svc.Create(ctx, CreateOrderLineInput{OrderID: "missing", ProductID: product.ID, BasePrice: decPtr("1")})
	require.True(t, IsStatus(err, http.StatusNotFound))
	assert.Equal(t, "Order not found", err.Error())

	assert.Equal(t, int64(0), count(t, db, &models.OrderLine{}))
	_ = order
}

func TestOrderLineUpdateAndRemove(t *testing.T) {
	db, order, product := orderFixture(t)
	svc := NewOrderProductService(db)
	l := seedLine(t, db, order.ID, product.ID)

	qty := 4
	got, err := svc.Update(ctx, l.ID, UpdateOrderLineInput{Quantity: &qty})
	require.NoError(t, err)
	assert.Equal(t, 4, got.Quantity)
	assert.Equal(t, product.ID, got.ProductID)

	_, err = svc.Update(ctx, l.ID, UpdateOrderLineInput{ProductID: strPtr("missing")})
	assert.True(t, IsStatus(err, http.StatusNotFound))

	require.NoError(t, svc.Remove(ctx, l.ID))
	_, err = svc.FindOne(ctx, l.ID)
	assert.True(t, IsStatus(err, http.StatusNotFound))
	assert.True(t, IsStatus(svc.Remove(ctx, l.ID), http.StatusNotFound))
}

func TestOrderLineFindAllDefaults(t *testing.T) {
	db, order, product := orderFixture(t)
	svc := NewOrderProductService(db)
	for i := 0; i < 11; i++ {
		seedLine(t, db, order.ID, product.ID)
	}

	items, p, err := svc.FindAll(ctx, repositories.ListQuery{})
	require.NoError(t, err)
	assert.Len(t, items, 10)
	assert.Equal(t, 2, p.TotalPages)
	assert.Equal(t, int64(11), p.TotalRecords)
}
