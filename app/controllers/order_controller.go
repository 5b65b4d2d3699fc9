package controllers

import (
	"github.com/shashiranjanraj/backoffice/app/repositories"
	"github.com/shashiranjanraj/backoffice/app/services"
	"github.com/shashiranjanraj/backoffice/pkg/ctx"
)

type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

// Store POST /order/{userId}
func (oc *OrderController) Store(c *ctx.Context) {
	order, err := oc.orders.Create(c.Context(), c.Param("userId"))
	if err != nil {
		c.Fail(err)
		return
	}
	c.Created("Order created successfully", order)
}

// Index GET /order?page=&perPage=&name= filters on the owner's name.
func (oc *OrderController) Index(c *ctx.Context) {
	page, ok := c.Page()
	if !ok {
		return
	}
	items, p, err := oc.orders.FindAll(c.Context(), repositories.ListQuery{Page: page, Name: c.Query("name")})
	if err != nil {
		c.Fail(err)
		return
	}
	c.Paginated("Orders retrieved successfully", items, p)
}

func (oc *OrderController) Show(c *ctx.Context) {
	order, err := oc.orders.FindOne(c.Context(), c.Param("id"))
	if err != nil {
		c.Fail(err)
		return
	}
	c.OK("Order retrieved successfully", order)
}

func (oc *OrderController) Update(c *ctx.Context) {
	var input services.UpdateOrderInput
	if !c.BindJSON(&input) {
		return
	}
	order, err := oc.orders.Update(c.Context(), c.Param("id"), input)
	if err != nil {
		c.Fail(err)
		return
	}
	c.OK("Order updated successfully", order)
}

func (oc *OrderController) Destroy(c *ctx.Context) {
	if err := oc.orders.Remove(c.Context(), c.Param("id")); err != nil {
		c.Fail(err)
		return
	}
	c.OK("Order removed successfully", nil)
}
