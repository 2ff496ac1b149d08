package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"backend/internal/cart"
	"backend/internal/config"
	"backend/internal/database"
	"backend/internal/handlers"
	"backend/internal/middleware"
)

func main() {
	config.Load()

	client, err := database.Connect(config.AppEnv.MongoURI)
	if err != nil {
		log.Fatal(err)
	}

	db := client.Database(config.AppEnv.DBName)

	log.Println("MongoDB connected to:", db.Name())

	if err := database.EnsureUserIndexes(db); err != nil {
		log.Printf("user index warning: %v", err)
	}
	if err := database.EnsureOrderIndexes(db); err != nil {
		log.Printf("order index warning: %v", err)
	}
	if err := database.EnsureFoodItemIndexes(db); err != nil {
		log.Printf("foodItem index warning: %v", err)
	}

	cartStore := cart.NewStore(db)

	r := gin.Default()
	r.Static("/public", "./public")

	r.GET("/menu", handlers.GetMenu(db))
	r.GET("/menu/featured", handlers.GetFeaturedMenu(db))
	r.GET("/menu/:id", handlers.GetFoodItem(db))
	r.GET("/categories", handlers.GetCategories(db))

	r.POST("/auth/register", handlers.Register(db))
	r.POST("/auth/login", handlers.Login(
		db,
		config.AppEnv.JWTSecret,
		config.AppEnv.AccessTokenTTL,
		config.AppEnv.RefreshTokenTTL,
	))
	r.POST("/auth/refresh", handlers.Refresh(
		db,
		config.AppEnv.JWTSecret,
		config.AppEnv.AccessTokenTTL,
		config.AppEnv.RefreshTokenTTL,
	))
	r.POST("/auth/logout", handlers.Logout(db))
	r.GET("/auth/me", middleware.UserAuth(config.AppEnv.JWTSecret), handlers.GetMe(db))

	user := r.Group("/")
	user.Use(middleware.UserAuth(config.AppEnv.JWTSecret))
	{
		user.GET("/cart", handlers.GetCart(cartStore))
		user.POST("/cart/items", handlers.AddCartItem(db, cartStore))
		user.PUT("/cart/items/:itemId", handlers.SetCartItemQuantity(cartStore))
		user.DELETE("/cart/items/:itemId", handlers.RemoveCartItem(cartStore))
		user.DELETE("/cart", handlers.ClearCart(cartStore))

		user.POST("/orders", handlers.PlaceOrder(db, cartStore))
		user.GET("/orders", handlers.GetMyOrders(db))
		user.GET("/orders/:id", handlers.GetOrder(db))

		user.GET("/user/addresses", handlers.GetUserAddresses(db))
		user.POST("/user/addresses", handlers.CreateUserAddress(db))
		user.PUT("/user/addresses/:id", handlers.UpdateUserAddress(db))
		user.DELETE("/user/addresses/:id", handlers.DeleteUserAddress(db))
	}

	admin := r.Group("/admin/api")
	admin.Use(middleware.AdminAuth(config.AppEnv.JWTSecret))
	{
		admin.GET("/me", func(c *gin.Context) {
			c.JSON(200, gin.H{"ok": true})
		})

		admin.GET("/menu", handlers.GetAllFoodItems(db))
		admin.POST("/menu", handlers.CreateFoodItem(db))
		admin.PUT("/menu/:id", handlers.UpdateFoodItem(db))
		admin.DELETE("/menu/:id", handlers.DeleteFoodItem(db))

		admin.GET("/categories", handlers.GetAllCategories(db))
		admin.POST("/categories", handlers.CreateCategory(db))
		admin.PUT("/categories/:id", handlers.UpdateCategory(db))
		admin.DELETE("/categories/:id", handlers.DeleteCategory(db))

		admin.GET("/orders", handlers.GetAllOrders(db))
		admin.PATCH("/orders/:id/status", handlers.UpdateOrderStatus(db))

		admin.GET("/users", handlers.GetAllUsers(db))
		admin.PATCH("/users/:id/role", handlers.UpdateUserRole(db))

		admin.GET("/dashboard", handlers.GetDashboard(db))
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
