package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/javajoker/storefront-admin/internal/collaborator"
	"github.com/javajoker/storefront-admin/internal/config"
	"github.com/javajoker/storefront-admin/internal/crud"
	"github.com/javajoker/storefront-admin/internal/models"
	"github.com/javajoker/storefront-admin/internal/testutil"
	"github.com/javajoker/storefront-admin/internal/utils"
)

type WorkspaceTestSuite struct {
	suite.Suite
	backend   *testutil.Collaborator
	workspace *Workspace
	ctx       context.Context
}

func (suite *WorkspaceTestSuite) SetupTest() {
	suite.backend = testutil.NewCollaborator(suite.T())
	client, err := collaborator.New(config.CollaboratorConfig{BaseURL: suite.backend.URL})
	require.NoError(suite.T(), err)

	suite.workspace = NewWorkspace(client, nil)
	suite.ctx = context.Background()
}

func (suite *WorkspaceTestSuite) TestCreateProduct() {
	products := suite.workspace.Products
	require.NoError(suite.T(), products.Mount(suite.ctx))

	products.SetForm(models.ProductForm{ProductName: "Widget", Description: "A widget", Price: "9.99", Stock: "10"})
	require.NoError(suite.T(), products.Create(suite.ctx))

	assert.Equal(suite.T(), []string{"GET /products", "POST /createProducts", "GET /products"}, suite.backend.Calls())
	assert.Equal(suite.T(), map[string]interface{}{
		"product_name": "Widget",
		"description":  "A widget",
		"price":        9.99,
		"stock":        float64(10),
	}, suite.backend.Requests()[1].Body)

	view := products.View()
	require.Len(suite.T(), view.Records, 1)
	assert.Equal(suite.T(), "Widget", view.Records[0].ProductName)
	assert.Equal(suite.T(), "9.99", view.Records[0].Price.String())
	assert.Equal(suite.T(), 10, view.Records[0].Stock)
	assert.Equal(suite.T(), models.ProductForm{}, view.Form)
	assert.NoError(suite.T(), view.Err)
}

func (suite *WorkspaceTestSuite) TestCreateWithBlankFieldSendsNothing() {
	products := suite.workspace.Products
	products.SetForm(models.ProductForm{ProductName: "Widget", Price: "9.99", Stock: "10"})

	err := products.Create(suite.ctx)
	require.Error(suite.T(), err)
	assert.Empty(suite.T(), suite.backend.Calls())
	assert.Equal(suite.T(), "Description is required", utils.Message("en", products.Err()))
}

func (suite *WorkspaceTestSuite) TestDeleteConfirmedOrder() {
	suite.backend.Seed("orders",
		map[string]interface{}{"order_id": 5, "user_id": 1, "total_amount": "120.00", "status": "pending", "order_date": "2024-05-01T10:00:00Z"},
		map[string]interface{}{"order_id": 6, "user_id": 2, "total_amount": "15.50", "status": "shipped", "order_date": "2024-05-02T10:00:00Z"},
	)

	orders := suite.workspace.Orders
	require.NoError(suite.T(), orders.Mount(suite.ctx))
	require.Len(suite.T(), orders.View().Records, 2)
	suite.backend.ResetRequests()

	require.NoError(suite.T(), orders.Delete(suite.ctx, 5, crud.Answer(true)))

	assert.Equal(suite.T(), []string{"DELETE /deleteOrder/5", "GET /orders"}, suite.backend.Calls())
	records := orders.View().Records
	require.Len(suite.T(), records, 1)
	assert.Equal(suite.T(), int64(6), records[0].OrderID)
	assert.Equal(suite.T(), models.OrderStatusShipped, records[0].Status)
}

func (suite *WorkspaceTestSuite) TestDeclinedDeleteSendsNothing() {
	suite.backend.Seed("orders", map[string]interface{}{"order_id": 5, "user_id": 1, "total_amount": 3, "status": "pending"})

	orders := suite.workspace.Orders
	require.NoError(suite.T(), orders.Mount(suite.ctx))
	suite.backend.ResetRequests()

	err := orders.Delete(suite.ctx, 5, crud.Answer(false))
	assert.ErrorIs(suite.T(), err, crud.ErrCancelled)
	assert.Empty(suite.T(), suite.backend.Calls())
	assert.Len(suite.T(), orders.View().Records, 1)
}

func (suite *WorkspaceTestSuite) TestUpdateUserRequiresPassword() {
	suite.backend.Seed("users", map[string]interface{}{"user_id": 1, "username": "alice", "email": "alice@example.com"})

	users := suite.workspace.Users
	require.NoError(suite.T(), users.Mount(suite.ctx))
	require.NoError(suite.T(), users.BeginEdit(1))
	suite.backend.ResetRequests()

	err := users.Update(suite.ctx)
	require.Error(suite.T(), err)
	assert.Equal(suite.T(), "Password is required", utils.Message("en", err))
	assert.Empty(suite.T(), suite.backend.Calls())

	form := users.View().Form
	form.Email = "alice@example.org"
	form.Password = "n3w"
	users.SetForm(form)
	require.NoError(suite.T(), users.Update(suite.ctx))

	assert.Equal(suite.T(), []string{"PUT /updateUser/1", "GET /users"}, suite.backend.Calls())
	assert.Equal(suite.T(), map[string]interface{}{
		"name":     "alice",
		"email":    "alice@example.org",
		"password": "n3w",
	}, suite.backend.Requests()[0].Body)

	view := users.View()
	assert.Nil(suite.T(), view.Editing)
	assert.Equal(suite.T(), "alice@example.org", view.Records[0].Email)
}

func (suite *WorkspaceTestSuite) TestUpdateReviewLeavesAuthorOut() {
	suite.backend.Seed("reviews",
		map[string]interface{}{"review_id": 1, "user_id": 2, "product_id": 9, "rating": 3, "review_text": "Fine"},
		map[string]interface{}{"review_id": 2, "user_id": 4, "product_id": 9, "rating": 5, "review_text": "Great"},
	)

	reviews := suite.workspace.Reviews
	require.NoError(suite.T(), reviews.Mount(suite.ctx))
	require.NoError(suite.T(), reviews.BeginEdit(1))

	form := reviews.View().Form
	form.Rating = "4"
	reviews.SetForm(form)
	suite.backend.ResetRequests()
	require.NoError(suite.T(), reviews.Update(suite.ctx))

	body := suite.backend.Requests()[0].Body
	assert.NotContains(suite.T(), body, "user_id")
	assert.Equal(suite.T(), float64(4), body["rating"])

	records := reviews.View().Records
	assert.Equal(suite.T(), 4, records[0].Rating)
	assert.Equal(suite.T(), int64(2), records[0].UserID)
	assert.Equal(suite.T(), "Great", records[1].ReviewText)
	assert.Equal(suite.T(), 5, records[1].Rating)
}

func (suite *WorkspaceTestSuite) TestCollaboratorMessageIsShown() {
	suite.backend.Fail("POST", "/createUsers", 400, `{"error":"Email already exists"}`)

	users := suite.workspace.Users
	users.SetForm(models.UserForm{Name: "bob", Email: "bob@example.com", Password: "pw"})

	err := users.Create(suite.ctx)
	require.Error(suite.T(), err)
	assert.Equal(suite.T(), "Email already exists", utils.Message("en", users.Err()))
	assert.Equal(suite.T(), "bob", users.View().Form.Name)
}

func (suite *WorkspaceTestSuite) TestFailedLoadKeepsSnapshot() {
	suite.backend.Seed("products", map[string]interface{}{"product_id": 1, "product_name": "Bolt", "description": "M8", "price": 0.25, "stock": 400})

	products := suite.workspace.Products
	require.NoError(suite.T(), products.Load(suite.ctx))
	first := products.View().Records

	require.NoError(suite.T(), products.Load(suite.ctx))
	assert.Equal(suite.T(), first, products.View().Records)

	suite.backend.Fail("GET", "/products", 500, `{}`)
	require.Error(suite.T(), products.Load(suite.ctx))
	assert.Equal(suite.T(), first, products.View().Records)
	assert.Equal(suite.T(), "Failed to fetch products", utils.Message("en", products.Err()))
}

func (suite *WorkspaceTestSuite) TestPagesDoNotShareState() {
	suite.backend.Seed("users", map[string]interface{}{"user_id": 1, "username": "alice", "email": "a@example.com"})

	require.NoError(suite.T(), suite.workspace.Users.Load(suite.ctx))
	assert.Len(suite.T(), suite.workspace.Users.View().Records, 1)
	assert.Empty(suite.T(), suite.workspace.Products.View().Records)
	assert.False(suite.T(), suite.workspace.Products.View().Mounted)
}

func TestWorkspaceTestSuite(t *testing.T) {
	suite.Run(t, new(WorkspaceTestSuite))
}

func TestSessionStore(t *testing.T) {
	store := NewSessionStore(nil, 10*time.Minute)
	defer store.Close()

	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	id, ws := store.Get("")
	require.NotEmpty(t, id)
	require.NotNil(t, ws)

	again, same := store.Get(id)
	assert.Equal(t, id, again)
	assert.Same(t, ws, same)

	other, fresh := store.Get("not-a-session")
	assert.NotEqual(t, "not-a-session", other)
	assert.NotSame(t, ws, fresh)
	assert.Equal(t, 2, store.Len())

	now = now.Add(6 * time.Minute)
	store.Get(id)

	now = now.Add(6 * time.Minute)
	assert.Equal(t, 1, store.Sweep())
	assert.Equal(t, 1, store.Len())

	_, kept := store.Get(id)
	assert.Same(t, ws, kept)
}

func TestSessionStoreCloseIsIdempotent(t *testing.T) {
	store := NewSessionStore(nil, time.Minute)
	store.Close()
	store.Close()
}

func TestSweepInterval(t *testing.T) {
	assert.Equal(t, time.Minute, sweepInterval(30*time.Minute))
	assert.Equal(t, 15*time.Second, sweepInterval(30*time.Second))
	assert.Equal(t, time.Second, sweepInterval(time.Second))
}
