package courseRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up the progress and certification routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Enrollment
	courseGroup.Post("/:id/enroll", middleware.JWTMiddleware, validators.CourseIDParam(), controllers.EnrollInCourse)
	courseGroup.Get("/:id/progress", middleware.JWTMiddleware, validators.CourseIDParam(), controllers.GetCourseProgress)
	courseGroup.Get("/:id/students", middleware.JWTMiddleware, middleware.RequireRole("INSTRUCTOR", "ADMIN"), validators.CourseIDParam(), controllers.GetCourseStudents)

	// Certificate issuance
	courseGroup.Post("/:id/certificate", middleware.JWTMiddleware, validators.CourseIDParam(), controllers.IssueCertificate)

	// Lesson completion
	lessonGroup := app.Group("/lesson")
	lessonGroup.Post("/:id/complete", middleware.JWTMiddleware, validators.LessonIDParam(), controllers.MarkLessonComplete)

	// Quiz submission and instructor grading
	quizGroup := app.Group("/quiz")
	quizGroup.Post("/:id/submit", middleware.JWTMiddleware, validators.SubmitQuiz(), controllers.SubmitQuiz)
	quizGroup.Get("/:id/submissions", middleware.JWTMiddleware, middleware.RequireRole("INSTRUCTOR", "ADMIN"), validators.QuizIDParam(), controllers.GetQuizSubmissions)
	quizGroup.Get("/attempt/:id", middleware.JWTMiddleware, middleware.RequireRole("INSTRUCTOR", "ADMIN"), validators.AttemptIDParam(), controllers.GetQuizAttempt)
	quizGroup.Put("/attempt/:id/grade", middleware.JWTMiddleware, middleware.RequireRole("INSTRUCTOR", "ADMIN"), validators.OverrideScore(), controllers.OverrideQuizScore)

	// User-facing listings
	userGroup := app.Group("/user")
	userGroup.Get("/enrollments", middleware.JWTMiddleware, controllers.GetMyEnrollments)
	userGroup.Get("/certificates", middleware.JWTMiddleware, controllers.GetMyCertificates)
}
