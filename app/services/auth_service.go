package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/backoffice/app/models"
	"github.com/shashiranjanraj/backoffice/app/repositories"
	"github.com/shashiranjanraj/backoffice/pkg/auth"
)

type LoginInput struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterInput struct {
	Name     string `json:"name"     validate:"required,min=2,max=255"`
	Email    string `json:"email"    validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// Token is the body of a successful login.
type Token struct {
	AccessToken string `json:"accessToken"`
}

type AuthService struct {
	db     *gorm.DB
	signer *auth.Signer
}

func NewAuthService(db *gorm.DB, signer *auth.Signer) *AuthService {
	return &AuthService{db: db, signer: signer}
}

// Login returns the same 401 for an unknown email and a wrong password.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*Token, error) {
	user, err := repositories.NewUserRepository(s.db).FindByEmail(ctx, strings.TrimSpace(in.Email))
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, Unauthorized("Invalid credentials")
		}
		return nil, err
	}
	if !auth.CheckPassword(user.Password, in.Password) {
		return nil, Unauthorized("Invalid credentials")
	}

	token, err := s.signer.Issue(user.ID, user.Email, user.Name, user.Role)
	if err != nil {
		return nil, err
	}
	return &Token{AccessToken: token}, nil
}

// Register creates a USER account. The role is never taken from input.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.PublicUser, error) {
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Name:     strings.TrimSpace(in.Name),
		Email:    strings.TrimSpace(in.Email),
		Password: hash,
		Role:     models.RoleUser,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		users := repositories.NewUserRepository(tx)
		taken, err := users.EmailTaken(ctx, user.Email, "")
		if err != nil {
			return err
		}
		if taken {
			return BadRequest("User already exists")
		}
		return users.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	pub := user.Public()
	return &pub, nil
}
