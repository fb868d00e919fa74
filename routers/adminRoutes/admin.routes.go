package adminRoutes

import (
	adminController "elearn/controllers/admin"
	"elearn/middleware"
	validators "elearn/validators/admin"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up the back-office surface. Everything here is
// admin-only: the JWT identifies the caller, the role check hits the DB.
func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.AdminOnly)

	adminGroup.Get("/dashboard", adminController.GetDashboard)

	// Account review
	adminGroup.Get("/users", adminController.GetUsers)
	adminGroup.Post("/users/:id/approve", validators.TargetUserID(), adminController.ApproveUser)
	adminGroup.Post("/users/:id/reject", validators.TargetUserID(), adminController.RejectUser)
	adminGroup.Put("/users/:id", validators.TargetUserID(), adminController.UpdateUser)

	// Purchase adjudication
	adminGroup.Get("/orders", adminController.GetPurchaseOrders)
	adminGroup.Post("/orders/:id/approve", validators.OrderID(), adminController.ApprovePurchaseOrder)
	adminGroup.Post("/orders/:id/reject", validators.OrderID(), adminController.RejectPurchaseOrder)

	// Teacher profiles
	adminGroup.Get("/teachers", adminController.GetTeachers)
	adminGroup.Post("/teachers", validators.LinkedUser(), adminController.CreateTeacher)
	adminGroup.Put("/teachers/:id", validators.TeacherID(), validators.LinkedUser(), adminController.UpdateTeacher)
	adminGroup.Delete("/teachers/:id", validators.TeacherID(), adminController.DeleteTeacher)

	// Courses and subjects
	adminGroup.Get("/subjects", adminController.GetSubjects)
	adminGroup.Post("/courses", adminController.CreateCourse)
	adminGroup.Put("/courses/:id", validators.CourseID(), adminController.UpdateCourse)
	adminGroup.Delete("/courses/:id", validators.CourseID(), adminController.DeleteCourse)

	// Lessons and attachments
	adminGroup.Post("/lessons", adminController.CreateLesson)
	adminGroup.Put("/lessons/:id", validators.LessonID(), adminController.UpdateLesson)
	adminGroup.Delete("/lessons/:id", validators.LessonID(), adminController.DeleteLesson)
	adminGroup.Post("/attachments", adminController.CreateAttachment)
	adminGroup.Delete("/attachments/:id", validators.AttachmentID(), adminController.DeleteAttachment)

	// Exams and questions
	adminGroup.Post("/exams", adminController.CreateExam)
	adminGroup.Delete("/exams/:id", validators.ExamID(), adminController.DeleteExam)
	adminGroup.Post("/questions", adminController.CreateQuestion)
	adminGroup.Delete("/questions/:id", validators.QuestionID(), adminController.DeleteQuestion)

	// Videos: async uploads and management
	adminGroup.Get("/videos", adminController.GetVideos)
	adminGroup.Post("/videos/upload", adminController.UploadVideo)
	adminGroup.Get("/videos/upload-status/:taskId", adminController.GetUploadStatus)
	adminGroup.Put("/videos/:id", validators.VideoID(), adminController.UpdateVideo)
	adminGroup.Delete("/videos/:id", validators.VideoID(), adminController.DeleteVideo)
	adminGroup.Get("/videos/:id/stats", validators.VideoID(), adminController.GetVideoStats)

	// Analytics
	adminGroup.Get("/page-views", adminController.GetPageViews)
}
