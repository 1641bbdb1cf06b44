package controllers

import (
	"errors"

	"lms/middleware"
	"lms/services"

	"github.com/gofiber/fiber/v2"
)

// serviceErrorResponse maps engine errors onto the HTTP surface. NotFound maps
// to 404, conflicts to 409, failed eligibility gates to 403/400 with the
// snapshot attached so the caller can show actionable guidance.
func serviceErrorResponse(c *fiber.Ctx, err error) error {
	var elig *services.EligibilityError
	if errors.As(err, &elig) {
		var data interface{}
		if elig.Snapshot != nil {
			data = elig.Snapshot
		}
		switch {
		case errors.Is(elig.Reason, services.ErrNotEnrolled):
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", data)
		case errors.Is(elig.Reason, services.ErrLessonsIncomplete):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Not all lessons completed!", data)
		case errors.Is(elig.Reason, services.ErrQuizzesNotPassed):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Not all quizzes passed!", data)
		}
	}

	switch {
	case errors.Is(err, services.ErrUserNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	case errors.Is(err, services.ErrCourseNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	case errors.Is(err, services.ErrLessonNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	case errors.Is(err, services.ErrQuizNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	case errors.Is(err, services.ErrAttemptNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz attempt not found!", nil)

	case errors.Is(err, services.ErrAlreadyEnrolled):
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "User already enrolled in this course!", nil)
	case errors.Is(err, services.ErrAlreadyCompleted):
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Lesson already completed!", nil)
	case errors.Is(err, services.ErrAlreadyIssued):
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Certificate already issued!", nil)

	case errors.Is(err, services.ErrNotEnrolled):
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)

	case errors.Is(err, services.ErrEmptyAnswer), errors.Is(err, services.ErrUnknownQuestionType):
		return middleware.ValidationErrorResponse(c, map[string]string{"answers": err.Error()})
	}

	return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
}
