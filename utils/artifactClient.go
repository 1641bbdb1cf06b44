package utils

import (
	"log"
	"time"

	"lms/config"
	courseModels "lms/models/course"

	"github.com/go-resty/resty/v2"
)

// RequestCertificateArtifact asks the external certificate generator to render
// the document behind an issued certificate's download reference. The engine
// never produces file content itself; a failed notification is logged and the
// generator is expected to pick the certificate up on its own reconciliation.
func RequestCertificateArtifact(certificate *courseModels.Certificate) {
	serviceURL := config.AppConfig.CertificateServiceURL
	if serviceURL == "" {
		log.Println("[CERTIFICATE] CERTIFICATE_SERVICE_URL not set, skipping artifact request")
		return
	}

	client := resty.New().SetTimeout(10 * time.Second)

	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"user_id":            certificate.UserID,
			"course_id":          certificate.CourseID,
			"certificate_number": certificate.CertificateNumber,
			"download_reference": certificate.DownloadURL,
		}).
		Post(serviceURL + "/render")

	if err != nil {
		log.Printf("[CERTIFICATE] Artifact request failed for %s: %v", certificate.CertificateNumber, err)
		return
	}
	if resp.IsError() {
		log.Printf("[CERTIFICATE] Artifact service returned %d for %s", resp.StatusCode(), certificate.CertificateNumber)
		return
	}

	log.Printf("[CERTIFICATE] Artifact requested for %s", certificate.CertificateNumber)
}
