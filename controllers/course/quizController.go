package controllers

import (
	"lms/database"
	"lms/middleware"
	"lms/services"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SubmitQuiz scores the caller's submission and records the attempt
func SubmitQuiz(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	quizID := c.Locals("quizID").(uint)
	submission := c.Locals("validatedSubmission").(*courseValidator.QuizSubmission)

	quizService := services.NewQuizService(database.Database.Db)
	result, err := quizService.Submit(quizID, userID, submission.Answers)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz submitted!", result)
}

// OverrideQuizScore replaces an attempt's score (instructor correction path)
func OverrideQuizScore(c *fiber.Ctx) error {
	attemptID := c.Locals("attemptID").(uint)
	score := c.Locals("validatedScore").(int)

	quizService := services.NewQuizService(database.Database.Db)
	if err := quizService.OverrideScore(attemptID, score); err != nil {
		return serviceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Score updated successfully!", nil)
}

// GetQuizSubmissions lists all attempts for a quiz (instructor view)
func GetQuizSubmissions(c *fiber.Ctx) error {
	quizID := c.Locals("quizID").(uint)

	quizService := services.NewQuizService(database.Database.Db)
	submissions, err := quizService.ListSubmissions(quizID)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Submissions fetched successfully!", fiber.Map{
		"submissions": submissions,
		"total":       len(submissions),
	})
}

// GetQuizAttempt returns one attempt with its stored answer payload (instructor view)
func GetQuizAttempt(c *fiber.Ctx) error {
	attemptID := c.Locals("attemptID").(uint)

	quizService := services.NewQuizService(database.Database.Db)
	attempt, err := quizService.GetAttempt(attemptID)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Attempt fetched successfully!", attempt)
}
