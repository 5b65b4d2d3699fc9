package testkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	ID   uint
	Name string
}

func TestNewDBMigratesGivenModels(t *testing.T) {
	db := NewDB(t, &widget{})
	assert.True(t, db.Migrator().HasTable(&widget{}))

	require.NoError(t, db.Create(&widget{Name: "cog"}).Error)
	var n int64
	require.NoError(t, db.Model(&widget{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestNewDBWithoutModelsIsEmpty(t *testing.T) {
	db := NewDB(t)
	tables, err := db.Migrator().GetTables()
	require.NoError(t, err)
	assert.Empty(t, tables)
}
