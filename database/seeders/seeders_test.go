package seeders

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/backoffice/app/models"
	"github.com/shashiranjanraj/backoffice/app/repositories"
	"github.com/shashiranjanraj/backoffice/config"
	"github.com/shashiranjanraj/backoffice/pkg/auth"
	"github.com/shashiranjanraj/backoffice/pkg/testkit"
)

func TestRunAllIsIdempotent(t *testing.T) {
	config.Set("ADMIN_EMAIL", "root@example.com")
	config.Set("ADMIN_PASSWORD", "root-password")
	t.Cleanup(func() { config.Set("ADMIN_PASSWORD", "") })

	ctx := context.Background()
	db := testkit.NewDB(t, models.All()...)

	ran, err := RunAll(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, []string{"admin", "catalog"}, ran)

	_, err = RunAll(ctx, db)
	require.NoError(t, err)

	var users, products int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	require.NoError(t, db.Model(&models.Product{}).Count(&products).Error)
	assert.Equal(t, int64(1), users)
	assert.Equal(t, int64(4), products)

	admin, err := repositories.NewUserRepository(db).FindByEmail(ctx, "root@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.True(t, auth.CheckPassword(admin.Password, "root-password"))
}
