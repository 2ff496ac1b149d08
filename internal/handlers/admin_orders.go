package handlers

import (
	"context"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"backend/internal/models"
	"backend/internal/order"
)

type updateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// buildOrderFilter narrows the admin listing by an exact status and/or a
// case-insensitive free-text match against the order id or customer name.
func buildOrderFilter(status, search string) (bson.M, bool) {
	filter := bson.M{}

	if status = strings.TrimSpace(status); status != "" {
		parsed, ok := order.ParseStatus(status)
		if !ok {
			return nil, false
		}
		filter["status"] = string(parsed)
	}

	if search = strings.TrimSpace(search); search != "" {
		quoted := regexp.QuoteMeta(search)
		filter["$or"] = []bson.M{
			{"_id": bson.M{"$regex": quoted, "$options": "i"}},
			{"userName": bson.M{"$regex": quoted, "$options": "i"}},
		}
	}

	return filter, true
}

func GetAllOrders(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/api/orders"
		defer handlePanic(c, route)

		filter, ok := buildOrderFilter(c.Query("status"), c.Query("search"))
		if !ok {
			respondWithError(c, http.StatusBadRequest, route, "invalid status filter")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
		cursor, err := db.Collection("orders").Find(ctx, filter, opts)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		defer cursor.Close(ctx)

		orders := make([]models.Order, 0)
		if err := cursor.All(ctx, &orders); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "decode error")
			return
		}

		c.JSON(http.StatusOK, gin.H{"data": orders})
	}
}

// UpdateOrderStatus applies the lifecycle transition table. Rejected
// transitions leave the stored status untouched. Concurrent updates are not
// serialized here; the store's last write wins.
func UpdateOrderStatus(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PATCH /admin/api/orders/:id/status"
		defer handlePanic(c, route)

		orderID := strings.TrimSpace(c.Param("id"))
		if orderID == "" {
			respondWithError(c, http.StatusBadRequest, route, "invalid order id")
			return
		}

		var req updateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		next, ok := order.ParseStatus(strings.TrimSpace(req.Status))
		if !ok {
			respondWithError(c, http.StatusBadRequest, route, "unknown status")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var stored models.Order
		if err := db.Collection("orders").FindOne(ctx, bson.M{"_id": orderID}).Decode(&stored); err != nil {
			if err == mongo.ErrNoDocuments {
				notFound := order.OrderNotFoundError{OrderID: orderID}
				respondWithError(c, http.StatusNotFound, route, notFound.Error())
				return
			}
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		current, ok := order.ParseStatus(stored.Status)
		if !ok {
			respondWithError(c, http.StatusInternalServerError, route, "stored order has unknown status")
			return
		}

		if !order.CanTransition(current, next) {
			invalid := order.InvalidTransitionError{From: current, To: next}
			respondWithError(c, http.StatusConflict, route, invalid.Error())
			return
		}

		if _, err := db.Collection("orders").UpdateOne(
			ctx,
			bson.M{"_id": orderID},
			bson.M{"$set": bson.M{"status": string(next)}},
		); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, gin.H{"orderId": orderID, "status": string(next)})
	}
}
