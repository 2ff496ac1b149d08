package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"backend/internal/cart"
	"backend/internal/models"
)

type addCartItemRequest struct {
	ItemID string `json:"itemId" binding:"required"`
}

// Quantity deliberately has no "required" binding: zero and negative values
// are meaningful and remove the line.
type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type cartResponse struct {
	Lines      []cart.Line `json:"lines"`
	TotalItems int         `json:"totalItems"`
	Totals     cart.Totals `json:"totals"`
}

func newCartResponse(c *cart.Cart) cartResponse {
	lines := c.Lines
	if lines == nil {
		lines = []cart.Line{}
	}
	return cartResponse{
		Lines:      lines,
		TotalItems: c.TotalItemCount(),
		Totals:     cart.ComputeTotals(c),
	}
}

func GetCart(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		current := store.Load(ctx, userID)
		c.JSON(http.StatusOK, newCartResponse(current))
	}
}

// AddCartItem looks the item up in the menu so the cart snapshots the
// catalog's current name, price and image. Repeat adds only bump the
// quantity; the engine keeps the first-seen values.
func AddCartItem(db *mongo.Database, store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /cart/items"
		defer handlePanic(c, route)

		userID, ok := userIDFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var req addCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		itemID, err := primitive.ObjectIDFromHex(strings.TrimSpace(req.ItemID))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid itemId")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var item models.FoodItem
		if err := db.Collection("foodItems").FindOne(ctx, bson.M{"_id": itemID}).Decode(&item); err != nil {
			if err == mongo.ErrNoDocuments {
				respondWithError(c, http.StatusNotFound, route, "menu item not found")
				return
			}
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		current := store.Load(ctx, userID)
		current.AddItem(item.ID.Hex(), item.Name, item.Price, item.Image)

		if err := store.Save(ctx, userID, current); err != nil {
			log.Println("[CART] [ERROR] save failed:", err)
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, newCartResponse(current))
	}
}

func SetCartItemQuantity(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /cart/items/:itemId"
		defer handlePanic(c, route)

		userID, ok := userIDFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		itemID := strings.TrimSpace(c.Param("itemId"))
		if itemID == "" {
			respondWithError(c, http.StatusBadRequest, route, "invalid itemId")
			return
		}

		var req setQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		current := store.Load(ctx, userID)
		current.SetQuantity(itemID, req.Quantity)

		if err := store.Save(ctx, userID, current); err != nil {
			log.Println("[CART] [ERROR] save failed:", err)
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, newCartResponse(current))
	}
}

func RemoveCartItem(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /cart/items/:itemId"
		defer handlePanic(c, route)

		userID, ok := userIDFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		itemID := strings.TrimSpace(c.Param("itemId"))

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		current := store.Load(ctx, userID)
		current.RemoveItem(itemID)

		if err := store.Save(ctx, userID, current); err != nil {
			log.Println("[CART] [ERROR] save failed:", err)
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, newCartResponse(current))
	}
}

func ClearCart(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /cart"
		defer handlePanic(c, route)

		userID, ok := userIDFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if err := store.Clear(ctx, userID); err != nil {
			log.Println("[CART] [ERROR] clear failed:", err)
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, newCartResponse(&cart.Cart{}))
	}
}
