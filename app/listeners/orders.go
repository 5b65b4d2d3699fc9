// Package listeners connects domain events to their side effects.
package listeners

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shashiranjanraj/backoffice/app/models"
	"github.com/shashiranjanraj/backoffice/app/services"
	"github.com/shashiranjanraj/backoffice/pkg/event"
	"github.com/shashiranjanraj/backoffice/pkg/logger"
)

// Broadcaster fans a message out to connected clients. *ws.Hub satisfies it.
type Broadcaster interface {
	Broadcast(msg []byte)
}

// OrderMessage is what admin websocket clients receive for each order event.
type OrderMessage struct {
	Event   string        `json:"event"`
	OrderID string        `json:"orderId"`
	Order   *models.Order `json:"order,omitempty"`
	At      time.Time     `json:"at"`
}

// RegisterOrderBroadcast pushes every order event to b.
func RegisterOrderBroadcast(bus *event.Bus, b Broadcaster) {
	for _, name := range []string{services.EventOrderCreated, services.EventOrderUpdated, services.EventOrderRemoved} {
		name := name
		bus.Listen(name, func(ctx context.Context, payload interface{}) {
			order, ok := payload.(*models.Order)
			if !ok {
				return
			}
			msg := OrderMessage{Event: name, OrderID: order.ID, At: time.Now().UTC()}
			if name != services.EventOrderRemoved {
				msg.Order = order
			}
			raw, err := json.Marshal(msg)
			if err != nil {
				logger.WithCtx(ctx).Error("order broadcast: encode", "error", err.Error())
				return
			}
			b.Broadcast(raw)
		})
	}
}
