package controllers

import (
	"lms/database"
	"lms/middleware"
	"lms/services"

	"github.com/gofiber/fiber/v2"
)

// MarkLessonComplete records the caller's completion of a lesson
func MarkLessonComplete(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	lessonID := c.Locals("lessonID").(uint)

	lessonService := services.NewLessonService(database.Database.Db)
	completion, err := lessonService.MarkComplete(userID, lessonID)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson marked as completed!", completion)
}

// GetCourseProgress returns the caller's fresh progress snapshot for a course
func GetCourseProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	progressService := services.NewProgressService(database.Database.Db)
	snapshot, err := progressService.ComputeProgress(userID, courseID)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", snapshot)
}
