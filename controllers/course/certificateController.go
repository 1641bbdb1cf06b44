package controllers

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/services"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
)

// IssueCertificate validates eligibility and issues the caller's certificate
// for a course. Eligibility is checked at issuance time, so a stale request
// cannot slip through, and the unique constraint keeps issuance at-most-once.
func IssueCertificate(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	certificateService := services.NewCertificateService(database.Database.Db)
	certificate, err := certificateService.Issue(userID, courseID)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	// Notify the artifact generator and the learner. Both are best-effort:
	// the certificate row is already durable and issuance has succeeded.
	go utils.RequestCertificateArtifact(certificate)

	var user models.User
	if err := database.Database.Db.First(&user, userID).Error; err == nil {
		go utils.SendCertificateEmail(user.Email, user.FullName, certificate)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Certificate issued successfully!", certificate)
}

// GetMyCertificates lists the caller's certificates
func GetMyCertificates(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	certificateService := services.NewCertificateService(database.Database.Db)
	certificates, err := certificateService.ListForUser(userID)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully!", fiber.Map{
		"certificates": certificates,
		"total":        len(certificates),
	})
}
