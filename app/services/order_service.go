package services

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/backoffice/app/models"
	"github.com/shashiranjanraj/backoffice/app/repositories"
	"github.com/shashiranjanraj/backoffice/pkg/event"
	"github.com/shashiranjanraj/backoffice/pkg/orm"
)

// Order events fired on the bus after a successful write. The payload is
// the *models.Order.
const (
	EventOrderCreated = "order.created"
	EventOrderUpdated = "order.updated"
	EventOrderRemoved = "order.removed"
)

// UpdateOrderInput re-links the order and optionally overwrites its status.
type UpdateOrderInput struct {
	UserID *string `json:"userId"`
	Status *string `json:"status"`
}

type OrderService struct {
	db     *gorm.DB
	events *event.Bus
}

func NewOrderService(db *gorm.DB, events *event.Bus) *OrderService {
	return &OrderService{db: db, events: events}
}

func (s *OrderService) resolveUser(ctx context.Context, db *gorm.DB, userID string) (*models.User, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, BadRequest("User ID is required")
	}
	user, err := repositories.NewUserRepository(db).FindByID(ctx, userID)
	if err != nil {
		return nil, notFound(err, "User not found")
	}
	return user, nil
}

// Create opens a PENDING order for userID.
func (s *OrderService) Create(ctx context.Context, userID string) (*models.Order, error) {
	order := &models.Order{Status: models.OrderPending, Enabled: true}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := s.resolveUser(ctx, tx, userID)
		if err != nil {
			return err
		}
		order.UserID = user.ID
		if err := repositories.NewOrderRepository(tx).Create(ctx, order); err != nil {
			return err
		}
		order.User = user
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.events.FireAsync(ctx, EventOrderCreated, order)
	return order, nil
}

// FindAll always paginates; page and perPage default to 1 and 10.
func (s *OrderService) FindAll(ctx context.Context, q repositories.ListQuery) ([]models.Order, orm.Pagination, error) {
	q.Page = q.Page.WithDefaults(1, 10)
	items, total, err := repositories.NewOrderRepository(s.db).List(ctx, q)
	if err != nil {
		return nil, orm.Pagination{}, err
	}
	return items, orm.NewPagination(q.Page, total), nil
}

func (s *OrderService) FindOne(ctx context.Context, id string) (*models.Order, error) {
	o, err := repositories.NewOrderRepository(s.db).FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Order not found")
	}
	return o, nil
}

// Update checks the user first, then the order, then the status. Any
// status in models.OrderStatuses is accepted from any other.
func (s *OrderService) Update(ctx context.Context, id string, in UpdateOrderInput) (*models.Order, error) {
	var order *models.Order
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var userID string
		if in.UserID != nil {
			userID = *in.UserID
		}
		user, err := s.resolveUser(ctx, tx, userID)
		if err != nil {
			return err
		}

		orders := repositories.NewOrderRepository(tx)
		order, err = orders.FindByID(ctx, id)
		if err != nil {
			return notFound(err, "Order not found")
		}

		fields := []string{"UserID"}
		order.UserID = user.ID
		order.User = user
		if in.Status != nil {
			status := strings.ToUpper(strings.TrimSpace(*in.Status))
			if !models.ValidOrderStatus(status) {
				return Invalid("status", fmt.Sprintf("The status must be one of %s.", strings.Join(models.OrderStatuses, ", ")))
			}
			order.Status = status
			fields = append(fields, "Status")
		}
		return orders.Update(ctx, order, fields...)
	})
	if err != nil {
		return nil, err
	}

	s.events.FireAsync(ctx, EventOrderUpdated, order)
	return order, nil
}

// Remove soft-deletes the order.
func (s *OrderService) Remove(ctx context.Context, id string) error {
	ok, err := repositories.NewOrderRepository(s.db).Disable(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return NotFound("Order not found")
	}
	s.events.FireAsync(ctx, EventOrderRemoved, &models.Order{Base: models.Base{ID: id}})
	return nil
}
