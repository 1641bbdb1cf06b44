package courseValidator

import (
	"strings"

	"lms/middleware"
	"lms/services"

	"github.com/gofiber/fiber/v2"
)

// QuizSubmission is the request body of a quiz submission.
type QuizSubmission struct {
	Answers []services.SubmittedAnswer `json:"answers" validate:"required,min=1,dive"`
}

// SubmitQuiz validates the quiz id param and the answer payload. Each answer
// must reference a question and carry either a selected option or non-empty
// free text; an empty answer is rejected here, before anything is written.
func SubmitQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		quizID, ok := parseID(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Quiz ID!", nil)
		}

		reqData := new(QuizSubmission)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"answers": "At least one answer is required!",
			})
		}

		errors := make(map[string]string)
		for _, a := range reqData.Answers {
			if a.QuestionID == 0 {
				errors["answers"] = "Every answer must reference a question!"
				break
			}
			if a.SelectedAnswerID == nil && strings.TrimSpace(a.FreeText) == "" {
				errors["answers"] = "Every answer needs a selected option or answer text!"
				break
			}
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("quizID", quizID)
		c.Locals("validatedSubmission", reqData)
		return c.Next()
	}
}

// OverrideScore validates the attempt id param and the replacement score.
func OverrideScore() fiber.Handler {
	return func(c *fiber.Ctx) error {
		attemptID, ok := parseID(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Attempt ID!", nil)
		}

		reqData := new(struct {
			Score *int `json:"score" validate:"required,min=0"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"score": "Score is required and must not be negative!",
			})
		}

		c.Locals("attemptID", attemptID)
		c.Locals("validatedScore", *reqData.Score)
		return c.Next()
	}
}
