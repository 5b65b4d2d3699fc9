// Package migrations registers the schema migrations with pkg/migration.
// cmd/backoffice imports it for its init side effect.
package migrations

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/backoffice/app/models"
	"github.com/shashiranjanraj/backoffice/pkg/migration"
)

func init() {
	migration.Register("20260101000000_create_users_table", table(&models.User{}, "users"))
	migration.Register("20260101000001_create_categories_table", table(&models.Category{}, "categories"))
	migration.Register("20260101000002_create_products_table", table(&models.Product{}, "products"))
	migration.Register("20260101000003_create_orders_table", table(&models.Order{}, "orders"))
	migration.Register("20260101000004_create_order_products_table", table(&models.OrderLine{}, "order_products"))
}

// createTable migrates one model and drops its table on rollback.
type createTable struct {
	model interface{}
	name  string
}

func table(model interface{}, name string) *createTable {
	return &createTable{model: model, name: name}
}

func (m *createTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(m.model)
}

func (m *createTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(m.name)
}
