package controllers

import (
	"lms/database"
	"lms/middleware"
	"lms/services"

	"github.com/gofiber/fiber/v2"
)

// EnrollInCourse enrolls the caller in a course
func EnrollInCourse(c *fiber.Ctx) error {
	// Retrieve userId from JWT middleware
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	enrollmentService := services.NewEnrollmentService(database.Database.Db)
	enrollment, err := enrollmentService.Enroll(userID, courseID)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled in course successfully!", enrollment)
}

// GetMyEnrollments lists the caller's enrollments with live progress snapshots
func GetMyEnrollments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	progressService := services.NewProgressService(database.Database.Db)
	enrollments, err := progressService.ListForUser(userID)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": enrollments,
		"total":       len(enrollments),
	})
}

// GetCourseStudents lists enrolled students of a course (instructor view)
func GetCourseStudents(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	enrollmentService := services.NewEnrollmentService(database.Database.Db)
	students, err := enrollmentService.ListStudents(courseID)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Students fetched successfully!", fiber.Map{
		"students": students,
		"total":    len(students),
	})
}
