package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/achraf-fouad/aura-scents/middleware"
	"github.com/achraf-fouad/aura-scents/models"
	"github.com/achraf-fouad/aura-scents/services"
)

type fakeOrderService struct {
	lastSession   string
	lastCheckout  *services.CheckoutRequest
	submitErr     *services.ServiceError
	submitCalled  int
	lastStatusID  uuid.UUID
	lastStatus    string
	statusErr     *services.ServiceError
	lastPage      int
	lastLimit     int
	deleteCalled  int
	deleteErr     *services.ServiceError
	getOrderErr   *services.ServiceError
	lastGetID     uuid.UUID
	createdStatus string
}

func (f *fakeOrderService) SubmitOrder(_ context.Context, sessionID string, req *services.CheckoutRequest) (*models.Order, *services.ServiceError) {
	f.submitCalled++
	f.lastSession = sessionID
	f.lastCheckout = req
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	status := f.createdStatus
	if status == "" {
		status = models.StatusPending
	}
	return &models.Order{ID: uuid.New(), Total: 2530, Status: status}, nil
}

func (f *fakeOrderService) GetOrders(_ context.Context, page, limit int) (*services.OrderResponse, *services.ServiceError) {
	f.lastPage = page
	f.lastLimit = limit
	return &services.OrderResponse{Orders: []models.Order{}, Meta: services.MetaData{Page: page, Limit: limit}}, nil
}

func (f *fakeOrderService) GetOrder(_ context.Context, id uuid.UUID) (*services.OrderDetail, *services.ServiceError) {
	f.lastGetID = id
	if f.getOrderErr != nil {
		return nil, f.getOrderErr
	}
	return &services.OrderDetail{Order: models.Order{ID: id}}, nil
}

func (f *fakeOrderService) SetStatus(_ context.Context, id uuid.UUID, status string) (*models.Order, *services.ServiceError) {
	f.lastStatusID = id
	f.lastStatus = status
	if f.statusErr != nil {
		return nil, f.statusErr
	}
	return &models.Order{ID: id, Status: status}, nil
}

func (f *fakeOrderService) DeleteOrder(_ context.Context, id uuid.UUID) *services.ServiceError {
	f.deleteCalled++
	return f.deleteErr
}

func newOrderRouter(fake *fakeOrderService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewOrderController(fake)
	router := gin.New()

	checkout := router.Group("/checkout")
	checkout.Use(middleware.CartSession())
	checkout.POST("", controller.Checkout)

	admin := router.Group("/admin")
	admin.GET("/orders", controller.GetOrders)
	admin.GET("/orders/:id", controller.GetOrder)
	admin.PATCH("/orders/:id/status", controller.UpdateStatus)
	admin.DELETE("/orders/:id", controller.DeleteOrder)
	return router
}

const checkoutBody = `{
	"first_name": "Amina",
	"last_name": "Belkadi",
	"email": "amina@example.com",
	"phone": "+212600000000",
	"address": "12 Rue des Fleurs",
	"city": "Casablanca"
}`

func TestCheckout_Created(t *testing.T) {
	fake := &fakeOrderService{}
	router := newOrderRouter(fake)

	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(checkoutBody))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: "cart_session", Value: "session-xyz"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "session-xyz", fake.lastSession)
	assert.Equal(t, "Amina", fake.lastCheckout.FirstName)
	assert.Contains(t, w.Body.String(), `"status":"pending"`)
	assert.Contains(t, w.Body.String(), `"order_id"`)
}

func TestCheckout_EmptyCart(t *testing.T) {
	fake := &fakeOrderService{submitErr: services.ErrEmptyCart()}
	router := newOrderRouter(fake)

	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(checkoutBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), services.CodeEmptyCart)
}

func TestCheckout_MalformedJSON(t *testing.T) {
	fake := &fakeOrderService{}
	router := newOrderRouter(fake)

	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(`{`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, fake.submitCalled)
}

func TestGetOrders_PaginationDefaults(t *testing.T) {
	fake := &fakeOrderService{}
	router := newOrderRouter(fake)

	req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, DefaultPage, fake.lastPage)
	assert.Equal(t, DefaultLimit, fake.lastLimit)
}

func TestGetOrders_LimitCapped(t *testing.T) {
	fake := &fakeOrderService{}
	router := newOrderRouter(fake)

	req := httptest.NewRequest(http.MethodGet, "/admin/orders?page=3&limit=500", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, fake.lastPage)
	assert.Equal(t, MaxLimit, fake.lastLimit)
}

func TestGetOrder_InvalidID(t *testing.T) {
	fake := &fakeOrderService{}
	router := newOrderRouter(fake)

	req := httptest.NewRequest(http.MethodGet, "/admin/orders/nope", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateStatus_ForwardsLabel(t *testing.T) {
	fake := &fakeOrderService{}
	router := newOrderRouter(fake)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodPatch, "/admin/orders/"+id.String()+"/status",
		strings.NewReader(`{"status":"confirmed"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, id, fake.lastStatusID)
	assert.Equal(t, models.StatusConfirmed, fake.lastStatus)
}

func TestUpdateStatus_MissingStatusField(t *testing.T) {
	fake := &fakeOrderService{}
	router := newOrderRouter(fake)

	req := httptest.NewRequest(http.MethodPatch, "/admin/orders/"+uuid.New().String()+"/status",
		strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "", fake.lastStatus)
}

func TestUpdateStatus_InvalidLabelPassesThrough(t *testing.T) {
	fake := &fakeOrderService{statusErr: services.ErrValidation("Invalid status: livrée")}
	router := newOrderRouter(fake)

	req := httptest.NewRequest(http.MethodPatch, "/admin/orders/"+uuid.New().String()+"/status",
		strings.NewReader(`{"status":"livrée"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), services.CodeValidation)
}

func TestDeleteOrder_NotFound(t *testing.T) {
	fake := &fakeOrderService{deleteErr: services.ErrNotFound("Order not found")}
	router := newOrderRouter(fake)

	req := httptest.NewRequest(http.MethodDelete, "/admin/orders/"+uuid.New().String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), services.CodeNotFound)
}
