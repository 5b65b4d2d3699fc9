// Package routes registers every API endpoint on the router.
package routes

import (
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/backoffice/app/controllers"
	"github.com/shashiranjanraj/backoffice/app/services"
	"github.com/shashiranjanraj/backoffice/pkg/auth"
	"github.com/shashiranjanraj/backoffice/pkg/cache"
	"github.com/shashiranjanraj/backoffice/pkg/ctx"
	"github.com/shashiranjanraj/backoffice/pkg/event"
	"github.com/shashiranjanraj/backoffice/pkg/middleware"
	"github.com/shashiranjanraj/backoffice/pkg/rbac"
	"github.com/shashiranjanraj/backoffice/pkg/router"
	"github.com/shashiranjanraj/backoffice/pkg/storage"
)

// Deps is everything the controllers need. Only DB and Signer are
// required to serve; a nil Disk disables /upload and a nil Hub disables
// /order/ws.
type Deps struct {
	DB       *gorm.DB
	Signer   *auth.Signer
	Cache    cache.Store
	CacheTTL time.Duration
	Events   *event.Bus
	Disk     storage.Disk
	Hub      http.Handler
}

// Services built from d, shared with the GraphQL schema.
type Services struct {
	Auth         *services.AuthService
	Users        *services.UserService
	Products     *services.ProductService
	Categories   *services.CategoryService
	Orders       *services.OrderService
	OrderProduct *services.OrderProductService
}

func NewServices(d Deps) *Services {
	if d.Cache == nil {
		d.Cache = cache.NewMemory()
	}
	return &Services{
		Auth:         services.NewAuthService(d.DB, d.Signer),
		Users:        services.NewUserService(d.DB),
		Products:     services.NewProductService(d.DB, d.Cache, d.CacheTTL),
		Categories:   services.NewCategoryService(d.DB, d.Cache),
		Orders:       services.NewOrderService(d.DB, d.Events),
		OrderProduct: services.NewOrderProductService(d.DB),
	}
}

func RegisterAPI(r *router.Router, d Deps, svc *Services) {
	authCtl := controllers.NewAuthController(svc.Auth)
	userCtl := controllers.NewUserController(svc.Users)
	productCtl := controllers.NewProductController(svc.Products)
	categoryCtl := controllers.NewCategoryController(svc.Categories)
	orderCtl := controllers.NewOrderController(svc.Orders)
	lineCtl := controllers.NewOrderProductController(svc.OrderProduct)

	bearer := router.Middleware(middleware.Auth(d.Signer))
	admin := router.Middleware(rbac.HasRole(rbac.RoleAdmin))

	a := r.Group("/auth")
	a.Post("/login", "auth.login", ctx.Wrap(authCtl.Login))
	a.Post("/register", "auth.register", ctx.Wrap(authCtl.Register))

	u := r.Group("/user", bearer)
	u.Post("/", "user.store", ctx.Wrap(userCtl.Store), admin)
	u.Get("/{id}", "user.show", ctx.Wrap(userCtl.Show))
	u.Patch("/{id}", "user.update", ctx.Wrap(userCtl.Update))
	u.Delete("/{id}", "user.destroy", ctx.Wrap(userCtl.Destroy), admin)

	p := r.Group("/product")
	p.Get("/", "product.index", ctx.Wrap(productCtl.Index))
	p.Get("/deals", "product.deals", ctx.Wrap(productCtl.Deals))
	p.Get("/slug/{slug}", "product.slug", ctx.Wrap(productCtl.ShowBySlug))
	p.Get("/{id}", "product.show", ctx.Wrap(productCtl.Show))
	p.Post("/", "product.store", ctx.Wrap(productCtl.Store), bearer, admin)
	p.Patch("/{id}", "product.update", ctx.Wrap(productCtl.Update), bearer, admin)
	p.Delete("/{id}", "product.destroy", ctx.Wrap(productCtl.Destroy), bearer, admin)

	c := r.Group("/category")
	c.Get("/", "category.index", ctx.Wrap(categoryCtl.Index))
	c.Get("/slug/{slug}", "category.slug", ctx.Wrap(categoryCtl.ShowBySlug))
	c.Get("/{id}", "category.show", ctx.Wrap(categoryCtl.Show))
	c.Post("/", "category.store", ctx.Wrap(categoryCtl.Store), bearer, admin)
	c.Patch("/{id}", "category.update", ctx.Wrap(categoryCtl.Update), bearer, admin)
	c.Delete("/{id}", "category.destroy", ctx.Wrap(categoryCtl.Destroy), bearer, admin)

	o := r.Group("/order", bearer)
	if d.Hub != nil {
		o.Get("/ws", "order.ws", d.Hub.ServeHTTP, admin)
	}
	o.Get("/", "order.index", ctx.Wrap(orderCtl.Index))
	o.Post("/{userId}", "order.store", ctx.Wrap(orderCtl.Store))
	o.Get("/{id}", "order.show", ctx.Wrap(orderCtl.Show))
	o.Patch("/{id}", "order.update", ctx.Wrap(orderCtl.Update))
	o.Delete("/{id}", "order.destroy", ctx.Wrap(orderCtl.Destroy))

	op := r.Group("/order-product", bearer)
	op.Post("/", "order_product.store", ctx.Wrap(lineCtl.Store))
	op.Get("/", "order_product.index", ctx.Wrap(lineCtl.Index))
	op.Get("/{id}", "order_product.show", ctx.Wrap(lineCtl.Show))
	op.Patch("/{id}", "order_product.update", ctx.Wrap(lineCtl.Update))
	op.Delete("/{id}", "order_product.destroy", ctx.Wrap(lineCtl.Destroy))

	if d.Disk != nil {
		uploadCtl := controllers.NewUploadController(d.Disk)
		r.Post("/upload", "upload.store", ctx.Wrap(uploadCtl.Store), bearer, admin)
	}
}
