// internal/interfaces/http/handlers.go
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-client/internal/domain/order"
)

// newOrderRequest mirrors the order creation payload the storefront sends
type newOrderRequest struct {
	OrderID    string       `json:"orderId" binding:"required"`
	CustomerID string       `json:"customerId"`
	OrderItems []order.Item `json:"orderItems" binding:"required,min=1"`
	Delivery   struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email" binding:"required"`
		Address string `json:"address" binding:"required"`
		Phone   string `json:"phone" binding:"required"`
	} `json:"delivery" binding:"required"`
}

// checkoutRequest mirrors the payment submission payload
type checkoutRequest struct {
	CreditCard    string `json:"creditCard" binding:"required"`
	CustomerID    string `json:"customerId"`
	EmailHolder   string `json:"emailHolder" binding:"required"`
	TransactionID string `json:"transactionId" binding:"required"`
}

func (s *Server) getProducts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ok":       true,
		"Products": s.store.Products(),
	})
}

func (s *Server) createOrder(c *gin.Context) {
	var req newOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid order payload"})
		return
	}

	o, tx, err := s.store.CreateOrder(req.OrderID, req.OrderItems, req.Delivery.Name)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"orderId":    o.ID,
		"customerId": o.CustomerID,
		"transaction": gin.H{
			"id":            tx.ID,
			"orderId":       tx.OrderID,
			"totalAmount":   tx.TotalAmount,
			"payerName":     tx.PayerName,
			"paymentStatus": tx.PaymentStatus,
		},
	})
}

func (s *Server) checkout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid checkout payload"})
		return
	}

	tx, err := s.store.SubmitPayment(req.TransactionID, req.CreditCard)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":          true,
		"Transaction": tx,
	})
}

func (s *Server) getTransaction(c *gin.Context) {
	tx, err := s.store.GetTransaction(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":          true,
		"Transaction": tx,
	})
}
