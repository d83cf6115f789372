package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/klubapp/klub-backend/handlers"
	"github.com/klubapp/klub-backend/middleware"
)

// SetupRoutes configures all API routes for the application
func SetupRoutes(router *gin.Engine, jwtManager *middleware.JWTManager) {
	handlers.InitHandlers()

	router.GET("/api/health", handlers.HealthCheck)
	router.GET("/metrics", middleware.MetricsHandler())

	api := router.Group("/api")
	api.Use(middleware.OptionalAuth(jwtManager))
	{
		// Restaurant endpoints; mutations and reporting are owner-only
		restaurant := api.Group("/restaurant")
		{
			restaurant.GET("", handlers.ListRestaurants)
			restaurant.GET("/:id", handlers.GetRestaurant)
			restaurant.GET("/:id/qr-codes", handlers.ListQRCodes)

			owner := restaurant.Group("")
			owner.Use(middleware.RequireOwner(jwtManager))
			{
				owner.POST("", handlers.CreateRestaurant)
				owner.PUT("/:id", handlers.UpdateRestaurant)
				owner.DELETE("/:id", handlers.DeleteRestaurant)
				owner.POST("/:id/qr-codes", handlers.CreateQRCode)
				owner.GET("/:id/export", handlers.ExportRestaurantReport)
			}
		}

		// User profile endpoints
		user := api.Group("/user")
		{
			user.GET("", handlers.ListUsers)
			user.GET("/:id", handlers.GetUser)
			user.POST("", handlers.CreateUser)
			user.PUT("/:id", handlers.UpdateUser)
			user.DELETE("/:id", handlers.DeleteUser)
		}

		// Bill endpoints
		bill := api.Group("/bill")
		{
			bill.GET("", handlers.ListBills)
			bill.GET("/:id", handlers.GetBill)
			bill.POST("", handlers.CreateBill)
			bill.PUT("/:id", handlers.UpdateBill)
			bill.DELETE("/:id", handlers.DeleteBill)

			bill.GET("/:id/items", handlers.ListBillItems)
			bill.POST("/:id/items", handlers.AddBillItems)
			bill.PUT("/:id/items/:itemId/assignments", handlers.SetItemAssignments)

			bill.GET("/:id/participants", handlers.ListParticipants)
			bill.POST("/:id/participants", handlers.AddParticipant)
			bill.DELETE("/:id/participants/:participantId", handlers.RemoveParticipant)

			bill.POST("/:id/split", handlers.CalculateBillSplit)
		}

		// Payment endpoints
		payment := api.Group("/payment")
		{
			payment.GET("", handlers.ListPayments)
			payment.GET("/:id", handlers.GetPayment)
			payment.POST("", handlers.CreatePayment)
			payment.PUT("/:id", handlers.UpdatePayment)
			payment.DELETE("/:id", handlers.DeletePayment)

			payment.GET("/bill/:billId", handlers.ListPaymentsByBill)
			payment.GET("/bill/:billId/summary", handlers.GetBillPaymentSummary)
			payment.GET("/user/:userId", handlers.ListPaymentsByUser)
		}

		// QR scan resolution
		api.GET("/scan/resolve", handlers.ResolveScan)
	}
}
