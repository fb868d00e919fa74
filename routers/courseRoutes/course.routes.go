package courseRoutes

import (
	courseController "elearn/controllers/course"
	"elearn/middleware"
	validators "elearn/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all student-facing course routes
func SetupCourseRoutes(app *fiber.App) {
	// Public landing page
	app.Get("/", courseController.GetHome)

	courseGroup := app.Group("/course")

	// Course browsing
	courseGroup.Get("/list", middleware.JWTMiddleware, courseController.GetAllCourses)
	courseGroup.Get("/:id", middleware.JWTMiddleware, validators.CourseID(), courseController.GetCourseDetails)

	// Free-course enrollment; paid courses go through the purchase flow
	courseGroup.Post("/:id/enroll", middleware.JWTMiddleware, validators.CourseID(), courseController.EnrollInCourse)
	courseGroup.Post("/:id/purchase", middleware.JWTMiddleware, validators.CourseID(), courseController.SubmitPurchase)

	// Teacher catalogue
	app.Get("/teacher/:id/courses", middleware.JWTMiddleware, validators.TeacherID(), courseController.GetTeacherCourses)

	// Video watch progress
	app.Post("/video/:id/progress", middleware.JWTMiddleware, validators.VideoID(), validators.RecordProgress(), courseController.RecordProgress)

	// Exams
	examGroup := app.Group("/exam")
	examGroup.Get("/results", middleware.JWTMiddleware, courseController.GetExamResults)
	examGroup.Get("/:id", middleware.JWTMiddleware, validators.ExamID(), courseController.GetExam)
	examGroup.Post("/:id/submit", middleware.JWTMiddleware, validators.ExamID(), validators.SubmitExam(), courseController.SubmitExam)
}
