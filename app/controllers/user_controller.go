package controllers

import (
	"github.com/shashiranjanraj/backoffice/app/services"
	"github.com/shashiranjanraj/backoffice/pkg/ctx"
	"github.com/shashiranjanraj/backoffice/pkg/rbac"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

func (uc *UserController) Store(c *ctx.Context) {
	var input services.CreateUserInput
	if !c.BindJSON(&input) {
		return
	}
	user, err := uc.users.Create(c.Context(), input)
	if err != nil {
		c.Fail(err)
		return
	}
	c.Created("User created successfully", user)
}

// Show is open to the user themself and to admins.
func (uc *UserController) Show(c *ctx.Context) {
	id := c.Param("id")
	if !rbac.SelfOrAdmin(c.R, id) {
		c.Forbidden()
		return
	}
	user, err := uc.users.FindOne(c.Context(), id)
	if err != nil {
		c.Fail(err)
		return
	}
	c.OK("User retrieved successfully", user)
}

func (uc *UserController) Update(c *ctx.Context) {
	var input services.UpdateUserInput
	if !c.BindJSON(&input) {
		return
	}
	claims, _ := c.Claims()
	actor := services.Actor{IsAdmin: rbac.IsAdmin(c.R)}
	if claims != nil {
		actor.ID = claims.UserID()
	}

	user, err := uc.users.Update(c.Context(), actor, c.Param("id"), input)
	if err != nil {
		c.Fail(err)
		return
	}
	c.OK("User updated successfully", user)
}

func (uc *UserController) Destroy(c *ctx.Context) {
	if err := uc.users.Remove(c.Context(), c.Param("id")); err != nil {
		c.Fail(err)
		return
	}
	c.OK("User removed successfully", nil)
}
