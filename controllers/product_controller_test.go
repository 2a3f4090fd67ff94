package controllers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/achraf-fouad/aura-scents/models"
	"github.com/achraf-fouad/aura-scents/services"
)

type fakeProductService struct {
	lastFilter  services.ProductFilter
	lastSort    services.SortKey
	listCalled  int
	listErr     *services.ServiceError
	products    []models.Product
	getErr      *services.ServiceError
	lastGetID   uuid.UUID
	deleteErr   *services.ServiceError
	lastDelID   uuid.UUID
	uploadedURL string
}

func (f *fakeProductService) ListProducts(_ context.Context, filter services.ProductFilter, sortKey services.SortKey) ([]models.Product, *services.ServiceError) {
	f.listCalled++
	f.lastFilter = filter
	f.lastSort = sortKey
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.products, nil
}

func (f *fakeProductService) GetProduct(_ context.Context, id uuid.UUID) (*models.Product, *services.ServiceError) {
	f.lastGetID = id
	if f.getErr != nil {
		return nil, f.getErr
	}
	return &models.Product{ID: id, Name: "Nuit Éternelle"}, nil
}

func (f *fakeProductService) BestSellers(_ context.Context) ([]models.Product, *services.ServiceError) {
	return f.products, nil
}

func (f *fakeProductService) NewArrivals(_ context.Context) ([]models.Product, *services.ServiceError) {
	return f.products, nil
}

func (f *fakeProductService) CreateProduct(_ context.Context, input services.ProductInput) (*models.Product, *services.ServiceError) {
	return &models.Product{ID: uuid.New(), Name: input.Name}, nil
}

func (f *fakeProductService) UpdateProduct(_ context.Context, id uuid.UUID, input services.ProductInput) (*models.Product, *services.ServiceError) {
	return &models.Product{ID: id, Name: input.Name}, nil
}

func (f *fakeProductService) DeleteProduct(_ context.Context, id uuid.UUID) *services.ServiceError {
	f.lastDelID = id
	return f.deleteErr
}

func (f *fakeProductService) UploadImage(_ context.Context, _, _ string, _ io.Reader) (string, *services.ServiceError) {
	return f.uploadedURL, nil
}

func newProductRouter(fake *fakeProductService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewProductController(fake)
	router := gin.New()
	router.GET("/products", controller.GetProducts)
	router.GET("/products/:id", controller.GetProduct)
	router.DELETE("/products/:id", controller.DeleteProduct)
	return router
}

func TestGetProducts_ParsesFilterAndSort(t *testing.T) {
	fake := &fakeProductService{}
	router := newProductRouter(fake)

	q := url.Values{}
	q.Set("category", "femme,homme")
	q.Set("intensity", models.IntensityIntense)
	q.Set("minPrice", "500")
	q.Set("maxPrice", "900")
	q.Set("sort", "price-asc")
	req := httptest.NewRequest(http.MethodGet, "/products?"+q.Encode(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, fake.listCalled)
	assert.Equal(t, []string{"femme", "homme"}, fake.lastFilter.Categories)
	assert.Equal(t, []string{models.IntensityIntense}, fake.lastFilter.Intensities)
	assert.Equal(t, 500.0, *fake.lastFilter.PriceMin)
	assert.Equal(t, 900.0, *fake.lastFilter.PriceMax)
	assert.Equal(t, services.SortPriceAsc, fake.lastSort)
}

func TestGetProducts_DefaultSortIsPopularity(t *testing.T) {
	fake := &fakeProductService{}
	router := newProductRouter(fake)

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, services.SortPopularity, fake.lastSort)
	assert.Empty(t, fake.lastFilter.Categories)
}

func TestGetProducts_RejectsUnknownSort(t *testing.T) {
	fake := &fakeProductService{}
	router := newProductRouter(fake)

	req := httptest.NewRequest(http.MethodGet, "/products?sort=alphabetical", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, fake.listCalled)
}

func TestGetProducts_RejectsUnknownCategory(t *testing.T) {
	fake := &fakeProductService{}
	router := newProductRouter(fake)

	req := httptest.NewRequest(http.MethodGet, "/products?category=enfant", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, fake.listCalled)
}

func TestGetProducts_RejectsInvertedPriceBounds(t *testing.T) {
	fake := &fakeProductService{}
	router := newProductRouter(fake)

	req := httptest.NewRequest(http.MethodGet, "/products?minPrice=900&maxPrice=500", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, fake.listCalled)
}

func TestGetProduct_InvalidID(t *testing.T) {
	fake := &fakeProductService{}
	router := newProductRouter(fake)

	req := httptest.NewRequest(http.MethodGet, "/products/not-a-uuid", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetProduct_NotFoundPassesThrough(t *testing.T) {
	fake := &fakeProductService{getErr: services.ErrNotFound("Product not found")}
	router := newProductRouter(fake)

	req := httptest.NewRequest(http.MethodGet, "/products/"+uuid.New().String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), services.CodeNotFound)
}

func TestDeleteProduct_ForwardsID(t *testing.T) {
	fake := &fakeProductService{}
	router := newProductRouter(fake)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodDelete, "/products/"+id.String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, id, fake.lastDelID)
}
