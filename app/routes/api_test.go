package routes

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/backoffice/app/models"
	"github.com/shashiranjanraj/backoffice/pkg/auth"
	"github.com/shashiranjanraj/backoffice/pkg/router"
	"github.com/shashiranjanraj/backoffice/pkg/testkit"
)

const categoryID = "11111111-1111-1111-1111-111111111111"

type api struct {
	h          http.Handler
	db         *gorm.DB
	signer     *auth.Signer
	admin      *models.User
	user       *models.User
	adminToken string
	userToken  string
}

func newAPI(t *testing.T) *api {
	t.Helper()
	db := testkit.NewDB(t, models.All()...)
	signer, err := auth.NewSigner("routes-test-secret-0123456789")
	require.NoError(t, err)

	a := &api{db: db, signer: signer}
	a.admin, a.adminToken = a.account(t, "admin@example.com", models.RoleAdmin)
	a.user, a.userToken = a.account(t, "user@example.com", models.RoleUser)
	require.NoError(t, db.Create(&models.Category{Base: models.Base{ID: categoryID}, Name: "Mugs", Slug: "mugs", Enabled: true}).Error)

	d := Deps{DB: db, Signer: signer}
	r := router.New()
	RegisterAPI(r, d, NewServices(d))
	a.h = r.Handler()
	return a
}

func (a *api) account(t *testing.T, email, role string) (*models.User, string) {
	t.Helper()
	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)
	u := &models.User{Name: "Test", Email: email, Password: hash, Role: role}
	require.NoError(t, a.db.Create(u).Error)
	token, err := a.signer.Issue(u.ID, u.Email, u.Name, u.Role)
	require.NoError(t, err)
	return u, token
}

func (a *api) product(t *testing.T, slug string) *models.Product {
	t.Helper()
	var p models.Product
	require.NoError(t, a.db.Where("slug = ?", slug).First(&p).Error)
	return &p
}

func TestCatalogScenarios(t *testing.T) {
	a := newAPI(t)
	testkit.RunFile(t, a.h, "testdata/catalog.json", testkit.Vars{
		"adminToken": a.adminToken,
		"userToken":  a.userToken,
		"categoryId": categoryID,
	})
}

func TestRegisterThenLogin(t *testing.T) {
	a := newAPI(t)

	rec := testkit.Do(t, a.h, http.MethodPost, "/auth/register", "", map[string]string{
		"name": "Ada", "email": "ada@example.com", "password": "correct-horse",
	})
	var user map[string]interface{}
	body := testkit.DecodeData(t, rec, &user)
	assert.Equal(t, http.StatusCreated, body.StatusCode)
	assert.Equal(t, "ada@example.com", user["email"])
	assert.Equal(t, models.RoleUser, user["role"])
	assert.NotContains(t, user, "password")

	rec = testkit.Do(t, a.h, http.MethodPost, "/auth/register", "", map[string]string{
		"name": "Ada", "email": "ada@example.com", "password": "correct-horse",
	})
	assert.Equal(t, "User already exists", testkit.Decode(t, rec).Message)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = testkit.Do(t, a.h, http.MethodPost, "/auth/login", "", map[string]string{
		"email": "ada@example.com", "password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid credentials", testkit.Decode(t, rec).Message)

	rec = testkit.Do(t, a.h, http.MethodPost, "/auth/login", "", map[string]string{
		"email": "ada@example.com", "password": "correct-horse",
	})
	var token struct {
		AccessToken string `json:"accessToken"`
	}
	testkit.DecodeData(t, rec, &token)
	require.NotEmpty(t, token.AccessToken)

	rec = testkit.Do(t, a.h, http.MethodGet, "/user/"+user["id"].(string), token.AccessToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGuardRejectsBadTokens(t *testing.T) {
	a := newAPI(t)

	for name, token := range map[string]string{
		"missing":  "",
		"garbage":  "not-a-jwt",
		"tampered": a.userToken + "x",
	} {
		t.Run(name, func(t *testing.T) {
			rec := testkit.Do(t, a.h, http.MethodGet, "/order", token, nil)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestUserAccessRules(t *testing.T) {
	a := newAPI(t)

	rec := testkit.Do(t, a.h, http.MethodGet, "/user/"+a.admin.ID, a.userToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = testkit.Do(t, a.h, http.MethodPatch, "/user/"+a.user.ID, a.userToken, map[string]string{"role": models.RoleAdmin})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = testkit.Do(t, a.h, http.MethodPatch, "/user/"+a.user.ID, a.userToken, map[string]string{"name": "Renamed"})
	var updated map[string]interface{}
	testkit.DecodeData(t, rec, &updated)
	assert.Equal(t, "Renamed", updated["name"])

	rec = testkit.Do(t, a.h, http.MethodPost, "/user", a.userToken, map[string]string{
		"name": "Eve", "email": "eve@example.com", "password": "password123",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	require.NoError(t, a.db.Create(&models.Order{UserID: a.user.ID, Status: models.OrderPending, Enabled: true}).Error)
	rec = testkit.Do(t, a.h, http.MethodDelete, "/user/"+a.user.ID, a.adminToken, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "User still has orders", testkit.Decode(t, rec).Message)
}

func TestOrderLifecycle(t *testing.T) {
	a := newAPI(t)
	require.NoError(t, a.db.Create(&models.Product{
		Name: "Red Mug", Slug: "red-mug", ImageURLs: []string{}, CategoryID: categoryID, Enabled: true,
	}).Error)
	product := a.product(t, "red-mug")

	rec := testkit.Do(t, a.h, http.MethodPost, "/order/"+a.user.ID, a.userToken, nil)
	var order models.Order
	body := testkit.DecodeData(t, rec, &order)
	require.Equal(t, http.StatusCreated, body.StatusCode)
	assert.Equal(t, models.OrderPending, order.Status)
	assert.Equal(t, a.user.ID, order.UserID)

	rec = testkit.Do(t, a.h, http.MethodGet, "/order", a.userToken, nil)
	body = testkit.Decode(t, rec)
	require.NotNil(t, body.Pagination)
	assert.Equal(t, 1, body.Pagination.Page)
	assert.Equal(t, 10, body.Pagination.PerPage)
	assert.Equal(t, int64(1), body.Pagination.TotalRecords)

	rec = testkit.Do(t, a.h, http.MethodPatch, "/order/"+order.ID, a.userToken, map[string]string{"status": "paid"})
	var paid models.Order
	testkit.DecodeData(t, rec, &paid)
	assert.Equal(t, models.OrderPaid, paid.Status)

	rec = testkit.Do(t, a.h, http.MethodPatch, "/order/"+order.ID, a.userToken, map[string]string{"status": "lost"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = testkit.Do(t, a.h, http.MethodPost, "/order-product", a.userToken, map[string]interface{}{
		"orderId": order.ID, "productId": product.ID, "basePrice": 10, "quantity": 2,
	})
	var line models.OrderLine
	body = testkit.DecodeData(t, rec, &line)
	require.Equal(t, http.StatusCreated, body.StatusCode)
	assert.Equal(t, 2, line.Quantity)

	rec = testkit.Do(t, a.h, http.MethodGet, "/order-product/"+line.ID, a.userToken, nil)
	assert.Equal(t, "order product retrieved successfully", testkit.Decode(t, rec).Message)

	rec = testkit.Do(t, a.h, http.MethodDelete, "/order-product/"+line.ID, a.userToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = testkit.Do(t, a.h, http.MethodGet, "/order-product/"+line.ID, a.userToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = testkit.Do(t, a.h, http.MethodDelete, "/order/"+order.ID, a.userToken, nil)
	assert.Equal(t, "Order removed successfully", testkit.Decode(t, rec).Message)
	rec = testkit.Do(t, a.h, http.MethodDelete, "/order/"+order.ID, a.userToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOrderForUnknownUser(t *testing.T) {
	a := newAPI(t)
	rec := testkit.Do(t, a.h, http.MethodPost, "/order/missing-user", a.userToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", testkit.Decode(t, rec).Message)
}

func TestCategoryDeleteReportsCascade(t *testing.T) {
	a := newAPI(t)
	require.NoError(t, a.db.Create(&models.Product{
		Name: "Red Mug", Slug: "red-mug", ImageURLs: []string{}, CategoryID: categoryID, Enabled: true,
	}).Error)

	rec := testkit.Do(t, a.h, http.MethodDelete, "/category/"+categoryID, a.adminToken, nil)
	var removed map[string]interface{}
	body := testkit.DecodeData(t, rec, &removed)
	assert.Equal(t, "Category deleted successfully", body.Message)

	var n int64
	require.NoError(t, a.db.WithContext(context.Background()).Model(&models.Product{}).Count(&n).Error)
	assert.Zero(t, n)
}
