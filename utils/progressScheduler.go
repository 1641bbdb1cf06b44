package utils

import (
	"log"
	"time"

	"lms/config"
	"lms/database"
	courseModels "lms/models/course"
	"lms/services"

	"github.com/robfig/cron/v3"
)

// InitializeProgressScheduler starts the daily enrollment status rollup.
// Status is presentation-level bookkeeping; eligibility checks always
// recompute from the source tables, so the rollup can lag without affecting
// issuance correctness.
func InitializeProgressScheduler() {
	log.Println("[PROGRESS-SCHEDULER] Initializing progress rollup scheduler...")

	c := cron.New()

	schedule := config.AppConfig.RollupSchedule
	if _, err := c.AddFunc(schedule, func() {
		log.Println("[PROGRESS-SCHEDULER] Running enrollment status rollup...")
		RollupEnrollmentStatuses()
	}); err != nil {
		log.Printf("[PROGRESS-SCHEDULER] Invalid schedule %q: %v", schedule, err)
		return
	}

	c.Start()
	log.Printf("[PROGRESS-SCHEDULER] Progress scheduler started (schedule %q)", schedule)
}

// RollupEnrollmentStatuses recomputes the display status of every enrollment
// that has not yet reached COMPLETED.
func RollupEnrollmentStatuses() {
	db := database.Database.Db
	progressService := services.NewProgressService(db)

	var enrollments []courseModels.Enrollment
	if err := db.Where("status <> ?", courseModels.EnrollmentCompleted).Find(&enrollments).Error; err != nil {
		log.Printf("[PROGRESS-SCHEDULER] Error fetching enrollments: %v", err)
		return
	}

	updated := 0
	for _, enrollment := range enrollments {
		snapshot, err := progressService.ComputeProgress(enrollment.UserID, enrollment.CourseID)
		if err != nil {
			log.Printf("[PROGRESS-SCHEDULER] Error computing progress for user %d course %d: %v",
				enrollment.UserID, enrollment.CourseID, err)
			continue
		}

		status := statusForSnapshot(snapshot)
		if status == enrollment.Status {
			continue
		}

		updates := map[string]interface{}{"status": status}
		if status == courseModels.EnrollmentCompleted {
			now := time.Now().UTC()
			updates["completed_at"] = &now
		}

		if err := db.Model(&enrollment).Updates(updates).Error; err != nil {
			log.Printf("[PROGRESS-SCHEDULER] Error updating enrollment %d: %v", enrollment.ID, err)
			continue
		}
		updated++
	}

	log.Printf("[PROGRESS-SCHEDULER] Rollup done, %d enrollment(s) updated", updated)
}

func statusForSnapshot(snapshot *services.ProgressSnapshot) string {
	switch {
	case snapshot.TotalLessons > 0 &&
		snapshot.CompletedLessons >= snapshot.TotalLessons &&
		snapshot.AllQuizzesPassed:
		return courseModels.EnrollmentCompleted
	case snapshot.CompletedLessons > 0:
		return courseModels.EnrollmentInProgress
	default:
		return courseModels.EnrollmentEnrolled
	}
}
