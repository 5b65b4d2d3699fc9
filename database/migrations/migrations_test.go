package migrations

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/shashiranjanraj/backoffice/pkg/migration"
)

func TestMigrationsUpAndDown(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:migrations_up_down?mode=memory&cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	ctx := context.Background()
	applied, err := migration.New(db, migration.Default).Run(ctx)
	require.NoError(t, err)
	assert.Len(t, applied, 5)
	for _, table := range []string{"users", "categories", "products", "orders", "order_products"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}

	reverted, err := migration.New(db, migration.Default).Rollback(ctx)
	require.NoError(t, err)
	assert.Equal(t, "20260101000004_create_order_products_table", reverted[0])
	assert.False(t, db.Migrator().HasTable("products"))
}
