package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/backoffice/app/models"
	"github.com/shashiranjanraj/backoffice/app/repositories"
	"github.com/shashiranjanraj/backoffice/pkg/auth"
)

type CreateUserInput struct {
	Name     string `json:"name"     validate:"required,min=2,max=255"`
	Email    string `json:"email"    validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role"     validate:"nullable,in=USER|ADMIN"`
}

type UpdateUserInput struct {
	Name     *string `json:"name"     validate:"min=2,max=255"`
	Email    *string `json:"email"    validate:"email,max=255"`
	Password *string `json:"password" validate:"min=8,max=72"`
	Role     *string `json:"role"     validate:"in=USER|ADMIN"`
}

// Actor is the authenticated caller of a user operation.
type Actor struct {
	ID      string
	IsAdmin bool
}

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) Create(ctx context.Context, in CreateUserInput) (*models.PublicUser, error) {
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = models.RoleUser
	}
	user := &models.User{
		Name:     strings.TrimSpace(in.Name),
		Email:    strings.TrimSpace(in.Email),
		Password: hash,
		Role:     role,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		users := repositories.NewUserRepository(tx)
		taken, err := users.EmailTaken(ctx, user.Email, "")
		if err != nil {
			return err
		}
		if taken {
			return Conflict("Email already in use")
		}
		return users.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}
	pub := user.Public()
	return &pub, nil
}

func (s *UserService) FindOne(ctx context.Context, id string) (*models.PublicUser, error) {
	user, err := repositories.NewUserRepository(s.db).FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "User not found")
	}
	pub := user.Public()
	return &pub, nil
}

// Update lets a user edit their own account and an admin edit any. Only an
// admin may change a role.
func (s *UserService) Update(ctx context.Context, actor Actor, id string, in UpdateUserInput) (*models.PublicUser, error) {
	if !actor.IsAdmin && actor.ID != id {
		return nil, Forbidden("Forbidden")
	}

	var user *models.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		users := repositories.NewUserRepository(tx)
		var err error
		user, err = users.FindByID(ctx, id)
		if err != nil {
			return notFound(err, "User not found")
		}

		var fields []string
		if in.Role != nil && *in.Role != user.Role {
			if !actor.IsAdmin {
				return Forbidden("Only an admin can change roles")
			}
			user.Role = *in.Role
			fields = append(fields, "Role")
		}
		if in.Name != nil {
			user.Name = strings.TrimSpace(*in.Name)
			fields = append(fields, "Name")
		}
		if in.Email != nil {
			email := strings.TrimSpace(*in.Email)
			taken, err := users.EmailTaken(ctx, email, id)
			if err != nil {
				return err
			}
			if taken {
				return Conflict("Email already in use")
			}
			user.Email = email
			fields = append(fields, "Email")
		}
		if in.Password != nil {
			hash, err := auth.HashPassword(*in.Password)
			if err != nil {
				return err
			}
			user.Password = hash
			fields = append(fields, "Password")
		}
		return users.Update(ctx, user, fields...)
	})
	if err != nil {
		return nil, err
	}
	pub := user.Public()
	return &pub, nil
}

// Remove hard-deletes a user that owns no orders.
func (s *UserService) Remove(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		users := repositories.NewUserRepository(tx)
		if _, err := users.FindByID(ctx, id); err != nil {
			return notFound(err, "User not found")
		}
		owns, err := users.HasOrders(ctx, id)
		if err != nil {
			return err
		}
		if owns {
			return Conflict("User still has orders")
		}
		_, err = users.Delete(ctx, id)
		return err
	})
}
