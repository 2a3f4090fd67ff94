package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/achraf-fouad/aura-scents/middleware"
	"github.com/achraf-fouad/aura-scents/services"
)

type CartController struct {
	cartService services.CartService
}

func NewCartController(cartService services.CartService) *CartController {
	return &CartController{cartService: cartService}
}

type addItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

func (cc *CartController) GetCart(ctx *gin.Context) {
	view, svcErr := cc.cartService.GetCart(ctx.Request.Context(), middleware.GetSessionID(ctx))
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message, "code": svcErr.Code})
		return
	}
	ctx.JSON(http.StatusOK, view)
}

func (cc *CartController) AddItem(ctx *gin.Context) {
	var req addItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID format"})
		return
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	view, svcErr := cc.cartService.AddToCart(ctx.Request.Context(), middleware.GetSessionID(ctx), productID, quantity)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message, "code": svcErr.Code})
		return
	}
	ctx.JSON(http.StatusOK, view)
}

func (cc *CartController) UpdateItem(ctx *gin.Context) {
	productID, err := uuid.Parse(ctx.Param("productId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID format"})
		return
	}

	var req updateItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	view, svcErr := cc.cartService.UpdateQuantity(ctx.Request.Context(), middleware.GetSessionID(ctx), productID, req.Quantity)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message, "code": svcErr.Code})
		return
	}
	ctx.JSON(http.StatusOK, view)
}

func (cc *CartController) RemoveItem(ctx *gin.Context) {
	productID, err := uuid.Parse(ctx.Param("productId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID format"})
		return
	}

	view, svcErr := cc.cartService.RemoveFromCart(ctx.Request.Context(), middleware.GetSessionID(ctx), productID)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message, "code": svcErr.Code})
		return
	}
	ctx.JSON(http.StatusOK, view)
}

func (cc *CartController) ClearCart(ctx *gin.Context) {
	if svcErr := cc.cartService.ClearCart(ctx.Request.Context(), middleware.GetSessionID(ctx)); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message, "code": svcErr.Code})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}
