package graphql

import (
	"context"
	"testing"
	"time"

	"github.com/graphql-go/graphql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/backoffice/app/models"
	"github.com/shashiranjanraj/backoffice/app/services"
	"github.com/shashiranjanraj/backoffice/pkg/cache"
	"github.com/shashiranjanraj/backoffice/pkg/testkit"
)

func newSchema(t *testing.T) graphql.Schema {
	t.Helper()
	db := testkit.NewDB(t, models.All()...)
	store := cache.NewMemory()

	cat := &models.Category{Name: "Mugs", Slug: "mugs", Enabled: true}
	require.NoError(t, db.Create(cat).Error)
	require.NoError(t, db.Create(&models.Product{
		Name: "Red Mug", Slug: "red-mug", BasePrice: decimal.RequireFromString("12.50"),
		DiscountPercentage: decimal.NewNullDecimal(decimal.NewFromInt(10)),
		ImageURLs:          []string{"a.png"}, CategoryID: cat.ID, Enabled: true,
	}).Error)
	require.NoError(t, db.Create(&models.Product{
		Name: "Blue Mug", Slug: "blue-mug", BasePrice: decimal.NewFromInt(9),
		ImageURLs: []string{}, CategoryID: cat.ID, Enabled: true,
	}).Error)

	schema, err := Schema(
		services.NewProductService(db, store, time.Minute),
		services.NewCategoryService(db, store),
	)
	require.NoError(t, err)
	return schema
}

func query(t *testing.T, schema graphql.Schema, q string) map[string]interface{} {
	t.Helper()
	res := graphql.Do(graphql.Params{Schema: schema, RequestString: q, Context: context.Background()})
	require.Empty(t, res.Errors)
	return res.Data.(map[string]interface{})
}

func TestProductBySlug(t *testing.T) {
	data := query(t, newSchema(t), `{ productBySlug(slug: "red-mug") { id name basePrice discountPercentage imageUrls category { slug } } }`)

	p := data["productBySlug"].(map[string]interface{})
	assert.NotEmpty(t, p["id"])
	assert.Equal(t, "Red Mug", p["name"])
	assert.Equal(t, 12.5, p["basePrice"])
	assert.Equal(t, 10.0, p["discountPercentage"])
	assert.Equal(t, []interface{}{"a.png"}, p["imageUrls"])
	assert.Equal(t, "mugs", p["category"].(map[string]interface{})["slug"])
}

func TestDealsAndLists(t *testing.T) {
	schema := newSchema(t)

	data := query(t, schema, `{ deals { slug } }`)
	assert.Equal(t, []interface{}{map[string]interface{}{"slug": "red-mug"}}, data["deals"])

	data = query(t, schema, `{ products(name: "blue") { slug discountPercentage } }`)
	assert.Equal(t, []interface{}{map[string]interface{}{"slug": "blue-mug", "discountPercentage": nil}}, data["products"])

	data = query(t, schema, `{ categoryBySlug(slug: "mugs") { name products { slug } } }`)
	c := data["categoryBySlug"].(map[string]interface{})
	assert.Equal(t, "Mugs", c["name"])
	assert.Len(t, c["products"], 2)
}

func TestUnknownSlugIsAnError(t *testing.T) {
	res := graphql.Do(graphql.Params{
		Schema:        newSchema(t),
		RequestString: `{ productBySlug(slug: "nope") { id } }`,
		Context:       context.Background(),
	})
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "Product not found", res.Errors[0].Message)
}
