package controllers

import (
	"github.com/shashiranjanraj/backoffice/app/repositories"
	"github.com/shashiranjanraj/backoffice/app/services"
	"github.com/shashiranjanraj/backoffice/pkg/ctx"
)

type CategoryController struct {
	categories *services.CategoryService
}

func NewCategoryController(categories *services.CategoryService) *CategoryController {
	return &CategoryController{categories: categories}
}

func (cc *CategoryController) Index(c *ctx.Context) {
	page, ok := c.Page()
	if !ok {
		return
	}
	items, p, err := cc.categories.FindAll(c.Context(), repositories.ListQuery{Page: page, Name: c.Query("name")})
	if err != nil {
		c.Fail(err)
		return
	}
	c.Paginated("Categories retrieved successfully", items, p)
}

func (cc *CategoryController) Show(c *ctx.Context) {
	category, err := cc.categories.FindOne(c.Context(), c.Param("id"))
	if err != nil {
		c.Fail(err)
		return
	}
	c.OK("Category retrieved successfully", category)
}

func (cc *CategoryController) ShowBySlug(c *ctx.Context) {
	category, err := cc.categories.FindBySlug(c.Context(), c.Param("slug"))
	if err != nil {
		c.Fail(err)
		return
	}
	c.OK("Category retrieved successfully", category)
}

func (cc *CategoryController) Store(c *ctx.Context) {
	var input services.CreateCategoryInput
	if !c.BindJSON(&input) {
		return
	}
	category, err := cc.categories.Create(c.Context(), input)
	if err != nil {
		c.Fail(err)
		return
	}
	c.Created("Category created successfully", category)
}

func (cc *CategoryController) Update(c *ctx.Context) {
	var input services.UpdateCategoryInput
	if !c.BindJSON(&input) {
		return
	}
	category, err := cc.categories.Update(c.Context(), c.Param("id"), input)
	if err != nil {
		c.Fail(err)
		return
	}
	c.OK("Category updated successfully", category)
}

// Destroy DELETE /category/{id} reports how many rows the cascade removed.
func (cc *CategoryController) Destroy(c *ctx.Context) {
	removed, err := cc.categories.Remove(c.Context(), c.Param("id"))
	if err != nil {
		c.Fail(err)
		return
	}
	c.OK("Category deleted successfully", removed)
}
