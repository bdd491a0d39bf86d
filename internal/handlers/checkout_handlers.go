package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akbarovs/kross-storefront/internal/checkout"
	"github.com/akbarovs/kross-storefront/internal/pricing"
	"github.com/akbarovs/kross-storefront/internal/shop"
)

//
// --- Checkout Handlers ---
//
// A checkout session is the server-side stand-in for one open checkout
// screen: it snapshots the product price and chosen size, accepts at most
// one coupon, and dies when the order is accepted.
//

type StartCheckoutInput struct {
	ProductID int64 `json:"product_id" binding:"required"`
	Size      int   `json:"size" binding:"required"`
}

// StartCheckout is the handler for POST /v1/checkout/sessions.
func (h *Handlers) StartCheckout(c *gin.Context) {
	var input StartCheckoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// The product must exist and actually come in the requested size.
	product, err := h.Shop.Product(c.Request.Context(), input.ProductID)
	if err != nil {
		if errors.Is(err, shop.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to load product. Please try again."})
		return
	}
	if !product.HasSize(input.Size) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Size %d is not available for this product", input.Size)})
		return
	}

	session := h.Sessions.Create(product.ID, input.Size, product.Price)

	c.JSON(http.StatusCreated, gin.H{
		"session": session,
		"product": gin.H{
			"id":    product.ID,
			"name":  product.Name,
			"brand": product.Brand,
			"image": product.Image,
			"price": product.Price,
		},
	})
}

type ApplyCouponInput struct {
	Code string `json:"code" binding:"required"`
}

// ApplyCoupon is the handler for POST /v1/checkout/sessions/:id/coupon.
// An unrecognized code reports a failure without touching the session;
// a second successful code is rejected because discounts do not stack.
func (h *Handlers) ApplyCoupon(c *gin.Context) {
	var input ApplyCouponInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.Sessions.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Checkout session not found"})
		return
	}

	quote, ok := pricing.Apply(h.Coupons, session.UnitPrice, input.Code)
	if !ok {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid coupon"})
		return
	}

	session, err = h.Sessions.ApplyCoupon(session.ID, input.Code, quote.Discount, quote.Final)
	if err != nil {
		if errors.Is(err, checkout.ErrCouponApplied) {
			c.JSON(http.StatusConflict, gin.H{"error": "A coupon has already been applied"})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Checkout session not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"discount": session.Discount,
		"total":    session.Total,
	})
}

type ConfirmOrderInput struct {
	FullName      string `json:"full_name" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	PaymentMethod string `json:"payment_method" binding:"required,oneof=card cash"`
	Email         string `json:"email" binding:"omitempty,email"`
	Address       string `json:"address"`
	City          string `json:"city"`
	PostalCode    string `json:"postal_code"`
	Notes         string `json:"notes"`
}

// ConfirmOrder is the handler for POST /v1/checkout/sessions/:id/confirm.
// Input problems are rejected before any upstream call; an upstream
// failure leaves the session open so the user can resubmit.
func (h *Handlers) ConfirmOrder(c *gin.Context) {
	var input ConfirmOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.Sessions.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Checkout session not found"})
		return
	}

	// The notes line carries the payment method and coupon, the same
	// convention the storefront has always used.
	notes := "Payment method: " + input.PaymentMethod
	if session.Coupon != "" {
		notes += ", Coupon: " + session.Coupon
	}
	if input.Notes != "" {
		notes += "\n" + input.Notes
	}

	order := shop.Order{
		CustomerName:       input.FullName,
		CustomerEmail:      input.Email,
		CustomerPhone:      input.Phone,
		ShippingAddress:    input.Address,
		ShippingCity:       input.City,
		ShippingPostalCode: input.PostalCode,
		TotalAmount:        session.Total,
		Notes:              notes,
		Items: []shop.OrderItem{
			{
				ProductID: session.ProductID,
				Size:      session.Size,
				Quantity:  1,
				Price:     session.UnitPrice,
			},
		},
	}

	confirmation, err := h.Shop.CreateOrder(c.Request.Context(), order)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to create order. Please try again."})
		return
	}

	h.Sessions.Close(session.ID)

	t := translator(c)
	c.JSON(http.StatusCreated, gin.H{
		"message":      t.T("checkout.success"),
		"confirmation": confirmation,
		"summary": gin.H{
			"product_id": session.ProductID,
			"size":       session.Size,
			"discount":   session.Discount,
			"total":      session.Total,
		},
	})
}
