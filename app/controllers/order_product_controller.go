package controllers

import (
	"github.com/shashiranjanraj/backoffice/app/repositories"
	"github.com/shashiranjanraj/backoffice/app/services"
	"github.com/shashiranjanraj/backoffice/pkg/ctx"
)

type OrderProductController struct {
	lines *services.OrderProductService
}

func NewOrderProductController(lines *services.OrderProductService) *OrderProductController {
	return &OrderProductController{lines: lines}
}

func (oc *OrderProductController) Store(c *ctx.Context) {
	var input services.CreateOrderLineInput
	if !c.BindJSON(&input) {
		return
	}
	line, err := oc.lines.Create(c.Context(), input)
	if err != nil {
		c.Fail(err)
		return
	}
	c.Created("Order Product created successfully", line)
}

func (oc *OrderProductController) Index(c *ctx.Context) {
	page, ok := c.Page()
	if !ok {
		return
	}
	items, p, err := oc.lines.FindAll(c.Context(), repositories.ListQuery{Page: page})
	if err != nil {
		c.Fail(err)
		return
	}
	c.Paginated("order products retrieved successfully", items, p)
}

func (oc *OrderProductController) Show(c *ctx.Context) {
	line, err := oc.lines.FindOne(c.Context(), c.Param("id"))
	if err != nil {
		c.Fail(err)
		return
	}
	c.OK("order product retrieved successfully", line)
}

func (oc *OrderProductController) Update(c *ctx.Context) {
	var input services.UpdateOrderLineInput
	if !c.BindJSON(&input) {
		return
	}
	line, err := oc.lines.Update(c.Context(), c.Param("id"), input)
	if err != nil {
		c.Fail(err)
		return
	}
	c.OK("order product updated successfully", line)
}

func (oc *OrderProductController) Destroy(c *ctx.Context) {
	if err := oc.lines.Remove(c.Context(), c.Param("id")); err != nil {
		c.Fail(err)
		return
	}
	c.OK("order Product removed successfully", nil)
}
