package controllers

import (
	"github.com/shashiranjanraj/backoffice/app/repositories"
	"github.com/shashiranjanraj/backoffice/app/services"
	"github.com/shashiranjanraj/backoffice/pkg/ctx"
)

type ProductController struct {
	products *services.ProductService
}

func NewProductController(products *services.ProductService) *ProductController {
	return &ProductController{products: products}
}

// Index GET /product?page=&perPage=&name=
func (pc *ProductController) Index(c *ctx.Context) {
	page, ok := c.Page()
	if !ok {
		return
	}
	items, p, err := pc.products.FindAll(c.Context(), repositories.ListQuery{Page: page, Name: c.Query("name")})
	if err != nil {
		c.Fail(err)
		return
	}
	c.Paginated("Products retrieved successfully", items, p)
}

// Deals GET /product/deals
func (pc *ProductController) Deals(c *ctx.Context) {
	items, err := pc.products.FindDiscounted(c.Context())
	if err != nil {
		c.Fail(err)
		return
	}
	c.OK("Products retrieved successfully", items)
}

func (pc *ProductController) Show(c *ctx.Context) {
	product, err := pc.products.FindOne(c.Context(), c.Param("id"))
	if err != nil {
		c.Fail(err)
		return
	}
	c.OK("Product retrieved successfully", product)
}

func (pc *ProductController) ShowBySlug(c *ctx.Context) {
	product, err := pc.products.FindBySlug(c.Context(), c.Param("slug"))
	if err != nil {
		c.Fail(err)
		return
	}
	c.OK("Product retrieved successfully", product)
}

func (pc *ProductController) Store(c *ctx.Context) {
	var input services.CreateProductInput
	if !c.BindJSON(&input) {
		return
	}
	product, err := pc.products.Create(c.Context(), input)
	if err != nil {
		c.Fail(err)
		return
	}
	c.Created("Product created successfully", product)
}

func (pc *ProductController) Update(c *ctx.Context) {
	var input services.UpdateProductInput
	if !c.BindJSON(&input) {
		return
	}
	product, err := pc.products.Update(c.Context(), c.Param("id"), input)
	if err != nil {
		c.Fail(err)
		return
	}
	c.OK("Product updated successfully", product)
}

func (pc *ProductController) Destroy(c *ctx.Context) {
	if err := pc.products.Remove(c.Context(), c.Param("id")); err != nil {
		c.Fail(err)
		return
	}
	c.OK("Product removed successfully", nil)
}
