package courseValidator

import (
	"strconv"
	"strings"

	"lms/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// parseID parses the named route parameter as a positive integer id.
func parseID(c *fiber.Ctx, param string) (uint, bool) {
	raw := strings.TrimSpace(c.Params(param))
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func CourseIDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}
		c.Locals("courseID", id)
		return c.Next()
	}
}

func LessonIDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Lesson ID!", nil)
		}
		c.Locals("lessonID", id)
		return c.Next()
	}
}

func QuizIDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Quiz ID!", nil)
		}
		c.Locals("quizID", id)
		return c.Next()
	}
}

func AttemptIDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Attempt ID!", nil)
		}
		c.Locals("attemptID", id)
		return c.Next()
	}
}
