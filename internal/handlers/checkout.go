package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"backend/internal/cart"
	"backend/internal/order"
)

type placeOrderRequest struct {
	Address        string             `json:"address" binding:"required"`
	PaymentMethod  string             `json:"paymentMethod" binding:"required"`
	PaymentDetails *order.CardDetails `json:"paymentDetails"`
}

// PlaceOrder snapshots the caller's cart into an immutable order and then
// clears the cart. The two writes are independent: if the process dies after
// the order insert, the cart survives and a resubmission creates a second
// order with a fresh id (at-least-once, no dedup).
func PlaceOrder(db *mongo.Database, store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /orders"
		defer handlePanic(c, route)

		if err := ensureDBConnection(c.Request.Context(), db); err != nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "database unavailable")
			return
		}

		userID, ok := userIDFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		userName, _ := c.Get("displayName")
		name, _ := userName.(string)

		var req placeOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		current := store.Load(ctx, userID)

		built, err := order.Build(current, userID, name, req.Address, req.PaymentMethod, req.PaymentDetails, time.Now())
		if err != nil {
			var emptyErr order.EmptyCartError
			if errors.As(err, &emptyErr) {
				respondWithError(c, http.StatusBadRequest, route, "cart is empty")
				return
			}
			var validationErr order.ValidationError
			if errors.As(err, &validationErr) {
				c.JSON(http.StatusBadRequest, gin.H{
					"error": "validation failed",
					"field": validationErr.Field,
				})
				return
			}
			respondWithError(c, http.StatusInternalServerError, route, "could not build order")
			return
		}

		if _, err := db.Collection("orders").InsertOne(ctx, built); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		// Best effort: a failed clear leaves the cart behind, which the
		// customer can resubmit. The order itself is already durable.
		if err := store.Clear(ctx, userID); err != nil {
			log.Println("[ORDER] [WARN] cart clear after checkout failed:", err)
		}

		log.Println("[ORDER] [INFO] order created:", built.ID)
		c.JSON(http.StatusCreated, gin.H{
			"orderId":     built.ID,
			"totalAmount": built.TotalAmount,
			"status":      built.Status,
		})
	}
}
