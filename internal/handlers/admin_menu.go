package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"backend/internal/models"
)

/*
GET /admin/api/menu
- whole catalog for the admin panel, newest first
*/
func GetAllFoodItems(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
		cursor, err := db.Collection("foodItems").Find(ctx, bson.M{}, opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		defer cursor.Close(ctx)

		items := make([]models.FoodItem, 0)
		if err := cursor.All(ctx, &items); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "decode error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"data": items})
	}
}

/*
POST /admin/api/menu
- multipart form: name, description, price, category, featured, image
*/
func CreateFoodItem(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		input, err := parseMultipartFoodItemRequest(c)
		if err != nil {
			respondMultipartError(c, err)
			return
		}

		if !input.NameSet || input.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
			return
		}
		if !input.PriceSet || input.Price <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price must be greater than 0"})
			return
		}
		if !input.CategorySet || input.Category == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "category is required"})
			return
		}

		item := models.FoodItem{
			Name:        input.Name,
			Description: input.Description,
			Price:       input.Price,
			Image:       input.Image,
			Category:    input.Category,
			Featured:    input.Featured,
			CreatedAt:   time.Now(),
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		result, err := db.Collection("foodItems").InsertOne(ctx, item)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		item.ID = result.InsertedID.(primitive.ObjectID)

		log.Println("[MENU] [INFO] item created:", item.Name)
		c.JSON(http.StatusCreated, item)
	}
}

/*
PUT /admin/api/menu/:id
- partial multipart update; a new image replaces and deletes the old file
*/
func UpdateFoodItem(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		input, err := parseMultipartFoodItemRequest(c)
		if err != nil {
			respondMultipartError(c, err)
			return
		}

		update := bson.M{}

		if input.NameSet {
			if input.Name == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "name cannot be empty"})
				return
			}
			update["name"] = input.Name
		}
		if input.DescriptionSet {
			update["description"] = input.Description
		}
		if input.PriceSet {
			if input.Price <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "price must be greater than 0"})
				return
			}
			update["price"] = input.Price
		}
		if input.CategorySet {
			if input.Category == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "category cannot be empty"})
				return
			}
			update["category"] = input.Category
		}
		if input.FeaturedSet {
			update["featured"] = input.Featured
		}
		if input.ImageSet {
			update["image"] = input.Image
		}

		if len(update) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no fields to update"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var previous models.FoodItem
		err = db.Collection("foodItems").
			FindOneAndUpdate(
				ctx,
				bson.M{"_id": itemID},
				bson.M{"$set": update},
				options.FindOneAndUpdate().SetReturnDocument(options.Before),
			).
			Decode(&previous)

		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		if input.ImageSet && previous.Image != "" && previous.Image != input.Image {
			if err := safeDeleteUpload(previous.Image); err != nil {
				log.Println("[MENU] [WARN] could not delete replaced image:", err)
			}
		}

		var updated models.FoodItem
		if err := db.Collection("foodItems").FindOne(ctx, bson.M{"_id": itemID}).Decode(&updated); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		c.JSON(http.StatusOK, updated)
	}
}

/*
DELETE /admin/api/menu/:id
- hard delete; the stored upload is removed as well
*/
func DeleteFoodItem(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var item models.FoodItem
		err = db.Collection("foodItems").
			FindOneAndDelete(ctx, bson.M{"_id": itemID}).
			Decode(&item)

		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		if item.Image != "" {
			if err := safeDeleteUpload(item.Image); err != nil {
				log.Println("[MENU] [WARN] could not delete image:", err)
			}
		}

		c.Status(http.StatusNoContent)
	}
}
