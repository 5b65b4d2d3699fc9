package controllers

import (
	"github.com/shashiranjanraj/backoffice/app/services"
	"github.com/shashiranjanraj/backoffice/pkg/ctx"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// Login POST /auth/login
func (ac *AuthController) Login(c *ctx.Context) {
	var input services.LoginInput
	if !c.BindJSON(&input) {
		return
	}
	token, err := ac.auth.Login(c.Context(), input)
	if err != nil {
		c.Fail(err)
		return
	}
	c.OK("Login successful", token)
}

// Register POST /auth/register
func (ac *AuthController) Register(c *ctx.Context) {
	var input services.RegisterInput
	if !c.BindJSON(&input) {
		return
	}
	user, err := ac.auth.Register(c.Context(), input)
	if err != nil {
		c.Fail(err)
		return
	}
	c.Created("User created successfully", user)
}
