package validate_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/backoffice/pkg/validate"
)

type productInput struct {
	Name     string           `json:"name"      validate:"required,min=2,max=20"`
	Slug     string           `json:"slug"      validate:"required,slug"`
	Price    decimal.Decimal  `json:"basePrice" validate:"gte=0"`
	Discount *decimal.Decimal `json:"discount"  validate:"gte=0,lte=100"`
	Image    string           `json:"imageUrl"  validate:"nullable,url"`
	Category string           `json:"categoryId" validate:"nullable,uuid"`
	Status   *string          `json:"status"    validate:"in=PENDING|PAID"`
	Images   []string         `json:"imageUrls" validate:"max=2"`
}

func validProduct() productInput {
	return productInput{
		Name:     "Red mug",
		Slug:     "red-mug",
		Price:    decimal.RequireFromString("9.99"),
		Category: "7d7c0f6e-3a3c-4a8e-9c55-0b4d8f2c6a11",
	}
}

func TestValidInput(t *testing.T) {
	errs := validate.Struct(validProduct())
	assert.False(t, validate.HasErrors(errs), "unexpected errors: %v", errs)
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(productInput{})

	assert.Equal(t, "The name field is required.", errs["name"])
	assert.Contains(t, errs, "slug")
}

func TestEmailRule(t *testing.T) {
	type in struct {
		Email string `json:"email" validate:"required,email"`
	}
	assert.Contains(t, validate.Struct(in{Email: "not-an-email"}), "email")
	assert.Empty(t, validate.Struct(in{Email: "valid@example.com"}))
}

func TestSlugRule(t *testing.T) {
	for _, bad := range []string{"Red-Mug", "red--mug", "-red", "red mug"} {
		p := validProduct()
		p.Slug = bad
		assert.Contains(t, validate.Struct(p), "slug", bad)
	}
}

func TestDecimalBounds(t *testing.T) {
	p := validProduct()
	p.Price = decimal.RequireFromString("-1")
	assert.Contains(t, validate.Struct(p), "basePrice")

	over := decimal.NewFromInt(101)
	p = validProduct()
	p.Discount = &over
	assert.Contains(t, validate.Struct(p), "discount")

	ok := decimal.NewFromInt(15)
	p.Discount = &ok
	assert.Empty(t, validate.Struct(p))
}

func TestNilPointerIsSkipped(t *testing.T) {
	p := validProduct()
	p.Status = nil
	assert.NotContains(t, validate.Struct(p), "status")

	bogus := "LOST"
	p.Status = &bogus
	assert.Equal(t, "The selected status is invalid.", validate.Struct(p)["status"])

	paid := "PAID"
	p.Status = &paid
	assert.Empty(t, validate.Struct(p))
}

func TestRequiredPointer(t *testing.T) {
	type in struct {
		UserID *string `json:"userId" validate:"required"`
	}
	assert.Contains(t, validate.Struct(in{}), "userId")

	blank := "  "
	assert.Contains(t, validate.Struct(in{UserID: &blank}), "userId")
}

func TestNullableURL(t *testing.T) {
	p := validProduct()
	p.Image = "not a url"
	assert.Contains(t, validate.Struct(p), "imageUrl")

	p.Image = "https://cdn.example.com/mug.png"
	assert.Empty(t, validate.Struct(p))
}

func TestSliceLength(t *testing.T) {
	p := validProduct()
	p.Images = []string{"a", "b", "c"}
	assert.Contains(t, validate.Struct(p), "imageUrls")
}

func TestMinMaxStringLength(t *testing.T) {
	p := validProduct()
	p.Name = "A"
	assert.Contains(t, validate.Struct(p), "name")

	p.Name = "This name is far too long"
	assert.Contains(t, validate.Struct(p), "name")
}
