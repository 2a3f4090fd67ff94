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
	"github.com/achraf-fouad/aura-scents/services"
)

type fakeCartService struct {
	lastSession  string
	lastProduct  uuid.UUID
	lastQuantity int
	addCalled    int
	addErr       *services.ServiceError
	clearCalled  int
}

func (f *fakeCartService) GetCart(_ context.Context, sessionID string) (*services.CartView, *services.ServiceError) {
	f.lastSession = sessionID
	return &services.CartView{Items: []services.CartViewItem{}}, nil
}

func (f *fakeCartService) AddToCart(_ context.Context, sessionID string, productID uuid.UUID, quantity int) (*services.CartView, *services.ServiceError) {
	f.addCalled++
	f.lastSession = sessionID
	f.lastProduct = productID
	f.lastQuantity = quantity
	if f.addErr != nil {
		return nil, f.addErr
	}
	return &services.CartView{Items: []services.CartViewItem{}, TotalItems: quantity}, nil
}

func (f *fakeCartService) UpdateQuantity(_ context.Context, sessionID string, productID uuid.UUID, quantity int) (*services.CartView, *services.ServiceError) {
	f.lastSession = sessionID
	f.lastProduct = productID
	f.lastQuantity = quantity
	return &services.CartView{Items: []services.CartViewItem{}}, nil
}

func (f *fakeCartService) RemoveFromCart(_ context.Context, sessionID string, productID uuid.UUID) (*services.CartView, *services.ServiceError) {
	f.lastSession = sessionID
	f.lastProduct = productID
	return &services.CartView{Items: []services.CartViewItem{}}, nil
}

func (f *fakeCartService) ClearCart(_ context.Context, sessionID string) *services.ServiceError {
	f.clearCalled++
	f.lastSession = sessionID
	return nil
}

func newCartRouter(fake *fakeCartService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewCartController(fake)
	router := gin.New()
	cart := router.Group("/cart")
	cart.Use(middleware.CartSession())
	cart.GET("", controller.GetCart)
	cart.POST("/items", controller.AddItem)
	cart.PATCH("/items/:productId", controller.UpdateItem)
	cart.DELETE("/items/:productId", controller.RemoveItem)
	cart.DELETE("", controller.ClearCart)
	return router
}

func TestGetCart_MintsSessionCookie(t *testing.T) {
	fake := &fakeCartService{}
	router := newCartRouter(fake)

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, fake.lastSession)

	cookies := w.Result().Cookies()
	var found bool
	for _, c := range cookies {
		if c.Name == "cart_session" {
			found = true
			assert.Equal(t, fake.lastSession, c.Value)
		}
	}
	assert.True(t, found)
}

func TestGetCart_ReusesExistingSession(t *testing.T) {
	fake := &fakeCartService{}
	router := newCartRouter(fake)

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.AddCookie(&http.Cookie{Name: "cart_session", Value: "session-existing"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "session-existing", fake.lastSession)
}

func TestAddItem_DefaultsQuantityToOne(t *testing.T) {
	fake := &fakeCartService{}
	router := newCartRouter(fake)

	id := uuid.New()
	body := `{"product_id":"` + id.String() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, fake.addCalled)
	assert.Equal(t, id, fake.lastProduct)
	assert.Equal(t, 1, fake.lastQuantity)
}

func TestAddItem_ExplicitQuantity(t *testing.T) {
	fake := &fakeCartService{}
	router := newCartRouter(fake)

	id := uuid.New()
	body := `{"product_id":"` + id.String() + `","quantity":3}`
	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, fake.lastQuantity)
}

func TestAddItem_InvalidProductID(t *testing.T) {
	fake := &fakeCartService{}
	router := newCartRouter(fake)

	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(`{"product_id":"abc"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, fake.addCalled)
}

func TestAddItem_MissingProductID(t *testing.T) {
	fake := &fakeCartService{}
	router := newCartRouter(fake)

	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(`{"quantity":2}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, fake.addCalled)
}

func TestAddItem_UnknownProductPassesThrough(t *testing.T) {
	fake := &fakeCartService{addErr: services.ErrNotFound("Product not found")}
	router := newCartRouter(fake)

	body := `{"product_id":"` + uuid.New().String() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), services.CodeNotFound)
}

func TestUpdateItem_ForwardsQuantity(t *testing.T) {
	fake := &fakeCartService{}
	router := newCartRouter(fake)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodPatch, "/cart/items/"+id.String(), strings.NewReader(`{"quantity":0}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, id, fake.lastProduct)
	assert.Equal(t, 0, fake.lastQuantity)
}

func TestClearCart(t *testing.T) {
	fake := &fakeCartService{}
	router := newCartRouter(fake)

	req := httptest.NewRequest(http.MethodDelete, "/cart", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, fake.clearCalled)
}
