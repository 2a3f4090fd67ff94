package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/achraf-fouad/aura-scents/models"
	"github.com/achraf-fouad/aura-scents/repository"
)

// CartViewItem is a cart line joined with its product at current price.
type CartViewItem struct {
	Product   models.Product `json:"product"`
	Quantity  int            `json:"quantity"`
	LineTotal float64        `json:"line_total"`
}

// CartView is what the storefront renders: cart lines in insertion
// order plus totals computed from live product prices.
type CartView struct {
	Items      []CartViewItem `json:"items"`
	TotalItems int            `json:"total_items"`
	TotalPrice float64        `json:"total_price"`
}

// CartService mutates the per-session cart aggregate.
type CartService interface {
	GetCart(ctx context.Context, sessionID string) (*CartView, *ServiceError)
	AddToCart(ctx context.Context, sessionID string, productID uuid.UUID, quantity int) (*CartView, *ServiceError)
	UpdateQuantity(ctx context.Context, sessionID string, productID uuid.UUID, quantity int) (*CartView, *ServiceError)
	RemoveFromCart(ctx context.Context, sessionID string, productID uuid.UUID) (*CartView, *ServiceError)
	ClearCart(ctx context.Context, sessionID string) *ServiceError
}

type cartServiceImpl struct {
	store       repository.CartStore
	productRepo repository.ProductRepository
	logger      *zap.Logger
}

func NewCartService(store repository.CartStore, productRepo repository.ProductRepository, logger *zap.Logger) CartService {
	return &cartServiceImpl{store: store, productRepo: productRepo, logger: logger}
}

func (s *cartServiceImpl) loadCart(ctx context.Context, sessionID string) (*models.Cart, *ServiceError) {
	cart, err := s.store.Get(ctx, sessionID)
	if err != nil {
		s.logger.Error("Failed to load cart", zap.String("session", sessionID), zap.Error(err))
		return nil, ErrPersistence("Failed to load cart")
	}
	if cart == nil {
		cart = &models.Cart{SessionID: sessionID, Items: []models.CartItem{}}
	}
	return cart, nil
}

func (s *cartServiceImpl) saveCart(ctx context.Context, cart *models.Cart) *ServiceError {
	if err := s.store.Save(ctx, cart); err != nil {
		s.logger.Error("Failed to save cart", zap.String("session", cart.SessionID), zap.Error(err))
		return ErrPersistence("Failed to save cart")
	}
	return nil
}

// buildView joins cart lines with their products at current prices.
// Lines whose product has since been deleted are dropped from the view.
func (s *cartServiceImpl) buildView(ctx context.Context, cart *models.Cart) (*CartView, *ServiceError) {
	view := &CartView{Items: []CartViewItem{}}
	if len(cart.Items) == 0 {
		return view, nil
	}

	ids := make([]uuid.UUID, 0, len(cart.Items))
	for _, item := range cart.Items {
		ids = append(ids, item.ProductID)
	}
	products, err := s.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		s.logger.Error("Failed to fetch cart products", zap.Error(err))
		return nil, ErrPersistence("Failed to load cart")
	}
	byID := make(map[uuid.UUID]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	for _, item := range cart.Items {
		product, ok := byID[item.ProductID]
		if !ok {
			s.logger.Warn("Cart references missing product, dropping line",
				zap.String("product_id", item.ProductID.String()),
			)
			continue
		}
		lineTotal := product.Price * float64(item.Quantity)
		view.Items = append(view.Items, CartViewItem{
			Product:   product,
			Quantity:  item.Quantity,
			LineTotal: lineTotal,
		})
		view.TotalItems += item.Quantity
		view.TotalPrice += lineTotal
	}
	return view, nil
}

func (s *cartServiceImpl) GetCart(ctx context.Context, sessionID string) (*CartView, *ServiceError) {
	cart, svcErr := s.loadCart(ctx, sessionID)
	if svcErr != nil {
		return nil, svcErr
	}
	return s.buildView(ctx, cart)
}

// AddToCart increments an existing line or appends a new one. A
// quantity of zero or less is a silent no-op, matching the storefront's
// historical behavior.
func (s *cartServiceImpl) AddToCart(ctx context.Context, sessionID string, productID uuid.UUID, quantity int) (*CartView, *ServiceError) {
	cart, svcErr := s.loadCart(ctx, sessionID)
	if svcErr != nil {
		return nil, svcErr
	}
	if quantity <= 0 {
		s.logger.Debug("Ignoring add with non-positive quantity",
			zap.String("product_id", productID.String()),
			zap.Int("quantity", quantity),
		)
		return s.buildView(ctx, cart)
	}

	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound("Product not found")
		}
		s.logger.Error("Failed to fetch product", zap.Error(err))
		return nil, ErrPersistence("Failed to add to cart")
	}

	if i := cart.Find(productID); i >= 0 {
		cart.Items[i].Quantity += quantity
	} else {
		cart.Items = append(cart.Items, models.CartItem{ProductID: productID, Quantity: quantity})
	}

	if svcErr := s.saveCart(ctx, cart); svcErr != nil {
		return nil, svcErr
	}
	return s.buildView(ctx, cart)
}

// UpdateQuantity sets a line's quantity exactly; zero or less removes
// the line. Updating an absent product id is a no-op.
func (s *cartServiceImpl) UpdateQuantity(ctx context.Context, sessionID string, productID uuid.UUID, quantity int) (*CartView, *ServiceError) {
	cart, svcErr := s.loadCart(ctx, sessionID)
	if svcErr != nil {
		return nil, svcErr
	}

	i := cart.Find(productID)
	if i < 0 {
		return s.buildView(ctx, cart)
	}
	if quantity <= 0 {
		cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
	} else {
		cart.Items[i].Quantity = quantity
	}

	if svcErr := s.saveCart(ctx, cart); svcErr != nil {
		return nil, svcErr
	}
	return s.buildView(ctx, cart)
}

// RemoveFromCart is idempotent: removing an absent id leaves the cart
// unchanged.
func (s *cartServiceImpl) RemoveFromCart(ctx context.Context, sessionID string, productID uuid.UUID) (*CartView, *ServiceError) {
	cart, svcErr := s.loadCart(ctx, sessionID)
	if svcErr != nil {
		return nil, svcErr
	}

	i := cart.Find(productID)
	if i < 0 {
		return s.buildView(ctx, cart)
	}
	cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)

	if svcErr := s.saveCart(ctx, cart); svcErr != nil {
		return nil, svcErr
	}
	return s.buildView(ctx, cart)
}

func (s *cartServiceImpl) ClearCart(ctx context.Context, sessionID string) *ServiceError {
	if err := s.store.Delete(ctx, sessionID); err != nil {
		s.logger.Error("Failed to clear cart", zap.String("session", sessionID), zap.Error(err))
		return ErrPersistence("Failed to clear cart")
	}
	return nil
}
