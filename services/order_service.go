package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/achraf-fouad/aura-scents/models"
	"github.com/achraf-fouad/aura-scents/repository"
)

// CheckoutRequest carries the customer fields from the checkout form.
// Notes and city are the only optional inputs.
type CheckoutRequest struct {
	FirstName     string `json:"first_name" validate:"required"`
	LastName      string `json:"last_name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"required"`
	Address       string `json:"address" validate:"required"`
	City          string `json:"city"`
	Notes         string `json:"notes"`
	PaymentMethod string `json:"payment_method"`
}

// OrderResponse is the paginated admin listing.
type OrderResponse struct {
	Orders []models.Order `json:"orders"`
	Meta   MetaData       `json:"meta"`
}

type MetaData struct {
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	TotalOrders int64 `json:"total_orders"`
	TotalPages  int64 `json:"total_pages"`
	HasMore     bool  `json:"has_more"`
}

// ProductSummary is the slice of product data shown next to an order
// line in the back-office.
type ProductSummary struct {
	ID     uuid.UUID          `json:"id"`
	Name   string             `json:"name"`
	Images models.StringSlice `json:"images"`
}

// OrderLineView joins an order line with its product summary. Product
// is nil when the product was deleted after the order was placed; the
// line itself keeps its captured price.
type OrderLineView struct {
	models.OrderItem
	Product *ProductSummary `json:"product"`
}

// OrderDetail is a full order with joined lines.
type OrderDetail struct {
	models.Order
	Items []OrderLineView `json:"items"`
}

// Notifier receives fire-and-forget notification jobs. Failures must
// never reach the customer-facing request path.
type Notifier interface {
	EnqueueOrderConfirmed(orderID uuid.UUID)
}

// OrderService handles checkout, the admin status workflow and order
// reads.
type OrderService interface {
	SubmitOrder(ctx context.Context, sessionID string, req *CheckoutRequest) (*models.Order, *ServiceError)
	GetOrders(ctx context.Context, page, limit int) (*OrderResponse, *ServiceError)
	GetOrder(ctx context.Context, id uuid.UUID) (*OrderDetail, *ServiceError)
	SetStatus(ctx context.Context, id uuid.UUID, status string) (*models.Order, *ServiceError)
	DeleteOrder(ctx context.Context, id uuid.UUID) *ServiceError
}

type orderServiceImpl struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	cartStore   repository.CartStore
	notifier    Notifier
	validate    *validator.Validate
	logger      *zap.Logger
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	cartStore repository.CartStore,
	notifier Notifier,
	logger *zap.Logger,
) OrderService {
	return &orderServiceImpl{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		cartStore:   cartStore,
		notifier:    notifier,
		validate:    validator.New(),
		logger:      logger,
	}
}

// checkoutFieldNames maps struct fields to the wire names used in
// validation messages.
var checkoutFieldNames = map[string]string{
	"FirstName":     "first_name",
	"LastName":      "last_name",
	"Email":         "email",
	"Phone":         "phone",
	"Address":       "address",
	"City":          "city",
	"Notes":         "notes",
	"PaymentMethod": "payment_method",
}

// validateCheckout returns an error naming the first missing or invalid
// field, in form order.
func (s *orderServiceImpl) validateCheckout(req *CheckoutRequest) *ServiceError {
	if err := s.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			field := verrs[0].StructField()
			if wire, ok := checkoutFieldNames[field]; ok {
				field = wire
			}
			return ErrValidation(fmt.Sprintf("Field '%s' is missing or invalid", field))
		}
		return ErrValidation("Invalid checkout request")
	}
	return nil
}

// SubmitOrder snapshots the cart into an order. The header and its
// lines are written in one transaction; on success the cart is cleared
// and the created order returned.
func (s *orderServiceImpl) SubmitOrder(ctx context.Context, sessionID string, req *CheckoutRequest) (*models.Order, *ServiceError) {
	cart, err := s.cartStore.Get(ctx, sessionID)
	if err != nil {
		s.logger.Error("Failed to load cart at checkout", zap.Error(err))
		return nil, ErrPersistence("Failed to load cart")
	}
	if cart == nil || len(cart.Items) == 0 {
		return nil, ErrEmptyCart()
	}

	if svcErr := s.validateCheckout(req); svcErr != nil {
		return nil, svcErr
	}

	ids := make([]uuid.UUID, 0, len(cart.Items))
	for _, item := range cart.Items {
		ids = append(ids, item.ProductID)
	}
	products, err := s.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		s.logger.Error("Failed to fetch products at checkout", zap.Error(err))
		return nil, ErrPersistence("Failed to prepare order")
	}
	byID := make(map[uuid.UUID]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	// Capture unit prices at this instant; they never change afterwards.
	var total float64
	items := make([]models.OrderItem, 0, len(cart.Items))
	for _, line := range cart.Items {
		product, ok := byID[line.ProductID]
		if !ok {
			return nil, ErrNotFound("A product in your cart is no longer available")
		}
		items = append(items, models.OrderItem{
			ProductID: product.ID,
			Quantity:  line.Quantity,
			Price:     product.Price,
		})
		total += product.Price * float64(line.Quantity)
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = models.PaymentMethodCOD
	}

	order := &models.Order{
		CustomerName:  strings.TrimSpace(req.FirstName + " " + req.LastName),
		Phone:         req.Phone,
		Email:         req.Email,
		Address:       req.Address,
		City:          req.City,
		Notes:         req.Notes,
		Total:         total,
		Status:        models.StatusPending,
		PaymentMethod: paymentMethod,
		OrderItems:    items,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		s.logger.Error("Failed to persist order", zap.Error(err))
		return nil, ErrPersistence("Failed to save order, please try again")
	}

	if err := s.cartStore.Delete(ctx, sessionID); err != nil {
		// The order exists; an uncleared cart is only a cosmetic leftover.
		s.logger.Warn("Failed to clear cart after checkout",
			zap.String("session", sessionID),
			zap.Error(err),
		)
	}

	s.logger.Info("Order created",
		zap.String("order_id", order.ID.String()),
		zap.Float64("total", order.Total),
		zap.Int("lines", len(items)),
	)
	return order, nil
}

func (s *orderServiceImpl) GetOrders(ctx context.Context, page, limit int) (*OrderResponse, *ServiceError) {
	orders, total, err := s.orderRepo.FindAll(ctx, page, limit)
	if err != nil {
		s.logger.Error("Failed to fetch orders", zap.Error(err))
		return nil, ErrPersistence("Failed to fetch orders")
	}

	return &OrderResponse{
		Orders: orders,
		Meta: MetaData{
			Page:        page,
			Limit:       limit,
			TotalOrders: total,
			TotalPages:  calculateTotalPages(total, limit),
			HasMore:     total > int64(page*limit),
		},
	}, nil
}

func (s *orderServiceImpl) GetOrder(ctx context.Context, id uuid.UUID) (*OrderDetail, *ServiceError) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound("Order not found")
		}
		s.logger.Error("Failed to fetch order", zap.String("id", id.String()), zap.Error(err))
		return nil, ErrPersistence("Failed to fetch order")
	}

	ids := make([]uuid.UUID, 0, len(order.OrderItems))
	for _, item := range order.OrderItems {
		ids = append(ids, item.ProductID)
	}
	products, err := s.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		s.logger.Error("Failed to fetch order products", zap.Error(err))
		return nil, ErrPersistence("Failed to fetch order")
	}
	byID := make(map[uuid.UUID]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	detail := &OrderDetail{Order: *order, Items: make([]OrderLineView, 0, len(order.OrderItems))}
	for _, item := range order.OrderItems {
		line := OrderLineView{OrderItem: item}
		if product, ok := byID[item.ProductID]; ok {
			line.Product = &ProductSummary{ID: product.ID, Name: product.Name, Images: product.Images}
		}
		detail.Items = append(detail.Items, line)
	}
	return detail, nil
}

// SetStatus assigns a new status label. Any-to-any assignment is
// allowed, mirroring the back-office selector. Entering "confirmed"
// enqueues the confirmation notification; the enqueue never blocks nor
// fails the update.
func (s *orderServiceImpl) SetStatus(ctx context.Context, id uuid.UUID, status string) (*models.Order, *ServiceError) {
	if !models.IsValidStatus(status) {
		return nil, ErrValidation("Invalid status: " + status)
	}

	rows, err := s.orderRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		s.logger.Error("Failed to update order status",
			zap.String("id", id.String()),
			zap.String("status", status),
			zap.Error(err),
		)
		return nil, ErrPersistence("Failed to update order status")
	}
	if rows == 0 {
		return nil, ErrNotFound("Order not found")
	}

	if status == models.StatusConfirmed && s.notifier != nil {
		s.notifier.EnqueueOrderConfirmed(id)
	}

	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to re-read order after status update", zap.Error(err))
		return nil, ErrPersistence("Failed to fetch order")
	}

	s.logger.Info("Order status updated",
		zap.String("order_id", id.String()),
		zap.String("status", status),
	)
	return order, nil
}

// DeleteOrder removes an order and its lines. Deleting a missing order
// is an error surfaced to the caller.
func (s *orderServiceImpl) DeleteOrder(ctx context.Context, id uuid.UUID) *ServiceError {
	rows, err := s.orderRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("Failed to delete order", zap.String("id", id.String()), zap.Error(err))
		return ErrPersistence("Failed to delete order")
	}
	if rows == 0 {
		return ErrNotFound("Order not found")
	}
	s.logger.Info("Order deleted", zap.String("order_id", id.String()))
	return nil
}

func calculateTotalPages(total int64, limit int) int64 {
	if limit == 0 {
		return 0
	}
	return (total + int64(limit) - 1) / int64(limit)
}
