package services

import (
	"time"

	"go.uber.org/zap"

	"github.com/Inphy521/Home-Economics/internal/models"
	"github.com/Inphy521/Home-Economics/internal/repository"
	"github.com/Inphy521/Home-Economics/internal/wizard"
)

// followUpAfter is how long after completing the action plan a student
// should come back for the review.
const followUpAfter = 14 * 24 * time.Hour

// Scheduler periodically looks for sessions whose two-week review is due
// and logs a reminder. Actual delivery (class announcement, LMS message)
// stays outside this service.
type Scheduler struct {
	log      *zap.Logger
	store    *repository.Store
	interval time.Duration

	// now is swappable for tests.
	now func() time.Time
}

func NewScheduler(log *zap.Logger, store *repository.Store) *Scheduler {
	return &Scheduler{
		log:      log,
		store:    store,
		interval: time.Hour,
		now:      time.Now,
	}
}

// Start runs the scheduler in a goroutine.
func (s *Scheduler) Start() {
	s.log.Info("Starting follow-up reminder scheduler...")
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			<-ticker.C
			s.runReminderCheck()
		}
	}()
}

func (s *Scheduler) runReminderCheck() {
	now := s.now().UTC()
	s.store.Range(func(session *repository.Session) {
		// Copy what the check needs under the session lock; the gates
		// write these same fields from request goroutines.
		var completedAt, twoWeekCheckAt string
		var info models.BasicInfo
		session.WithWizard(func(w *wizard.Wizard) {
			record := w.Record()
			completedAt = record.Metadata.CompletedAt
			twoWeekCheckAt = record.Metadata.TwoWeekCheckAt
			info = record.BasicInfo
		})

		if completedAt == "" || twoWeekCheckAt != "" {
			return
		}

		completed, err := time.Parse(time.RFC3339, completedAt)
		if err != nil {
			s.log.Warn("Unparseable completedAt timestamp",
				zap.String("sessionID", session.ID),
				zap.String("completedAt", completedAt),
			)
			return
		}

		if now.Sub(completed) >= followUpAfter && session.MarkReminded() {
			s.log.Info("Two-week review due",
				zap.String("sessionID", session.ID),
				zap.String("student", info.StudentName),
				zap.String("class", info.ClassName),
			)
		}
	})
}
