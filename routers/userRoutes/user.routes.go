package userRoutes

import (
	courseController "elearn/controllers/course"
	userController "elearn/controllers/user"
	"elearn/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes sets up profile and dashboard routes
func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user", middleware.JWTMiddleware)

	userGroup.Get("/profile", userController.GetProfile)
	userGroup.Put("/profile", userController.UpdateProfile)

	// Dashboard: the user's enrolled courses and purchase history
	userGroup.Get("/courses", courseController.GetMyCourses)
	userGroup.Get("/orders", courseController.GetMyPurchaseOrders)

	// Page-view analytics beacon
	app.Post("/api/track-page-view", middleware.JWTMiddleware, userController.TrackPageView)
}
