package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	authrepo "mocni-backend/internal/auth/repository"
	"mocni-backend/internal/health/domain"
	"mocni-backend/internal/health/repository"
	"mocni-backend/pkg/fcm"
)

const (
	// tickInterval matches the "every 1 minutes" cadence of the original
	// reminder job. A tick that overruns simply drops the next beat; ticks
	// are independent and carry no state between runs.
	tickInterval = 1 * time.Minute

	// timezone is fixed: medication times are entered and matched in
	// Warsaw local time no matter where the server runs.
	timezone = "Europe/Warsaw"

	reminderTitle = "Czas na leki! 💊"
	reminderLink  = "/health"
)

// PushSender sends one multicast push and reports the tokens that failed
type PushSender interface {
	SendToDevices(ctx context.Context, tokens []string, notification fcm.NotificationData) ([]string, error)
}

// MedicationReminderScheduler sends FCM reminders for due medications
type MedicationReminderScheduler struct {
	medRepo  repository.MedicationRepository
	userRepo authrepo.UserRepository
	fcmRepo  authrepo.FCMTokenRepository
	sender   PushSender
	location *time.Location
	interval time.Duration
	stopChan chan struct{}
}

// NewMedicationReminderScheduler creates a new scheduler
func NewMedicationReminderScheduler(
	medRepo repository.MedicationRepository,
	userRepo authrepo.UserRepository,
	fcmRepo authrepo.FCMTokenRepository,
	sender PushSender,
) (*MedicationReminderScheduler, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %s: %w", timezone, err)
	}

	return &MedicationReminderScheduler{
		medRepo:  medRepo,
		userRepo: userRepo,
		fcmRepo:  fcmRepo,
		sender:   sender,
		location: loc,
		interval: tickInterval,
		stopChan: make(chan struct{}),
	}, nil
}

// CanonicalTime formats an instant as the zero-padded 24-hour "HH:MM" match
// key in the given timezone
func CanonicalTime(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("15:04")
}

// Start begins the scheduler loop
func (s *MedicationReminderScheduler) Start() {
	if s.sender == nil {
		log.Println("[MedScheduler] FCM client not available, scheduler disabled")
		return
	}

	log.Printf("[MedScheduler] Starting medication reminder scheduler (interval: %v, timezone: %s)", s.interval, timezone)

	go func() {
		// Run immediately on start
		s.checkAndSendReminders()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.checkAndSendReminders()
			case <-s.stopChan:
				log.Println("[MedScheduler] Scheduler stopped")
				return
			}
		}
	}()
}

// Stop gracefully stops the scheduler
func (s *MedicationReminderScheduler) Stop() {
	close(s.stopChan)
}

func (s *MedicationReminderScheduler) checkAndSendReminders() {
	s.runTick(context.Background(), time.Now())
}

// runTick executes one pipeline pass for the given instant: match due
// medications, then resolve owner, fetch tokens and dispatch for each,
// concurrently. Every per-medication failure is logged and swallowed; only a
// failure of the match query itself aborts the tick.
func (s *MedicationReminderScheduler) runTick(ctx context.Context, now time.Time) {
	timeStr := CanonicalTime(now, s.location)

	meds, err := s.medRepo.FindDueAt(timeStr)
	if err != nil {
		log.Printf("[MedScheduler] Error querying medications due at %s: %v", timeStr, err)
		return
	}

	if len(meds) == 0 {
		return
	}

	log.Printf("[MedScheduler] Found %d medications due at %s", len(meds), timeStr)

	// Each medication touches only its own owner's data, so dispatches are
	// independent. Wait for all of them before the tick completes.
	var wg sync.WaitGroup
	for _, med := range meds {
		wg.Add(1)
		go func(med *domain.Medication) {
			defer wg.Done()
			s.dispatchReminder(ctx, med)
		}(med)
	}
	wg.Wait()
}

// dispatchReminder sends one multicast push for a single due medication
func (s *MedicationReminderScheduler) dispatchReminder(ctx context.Context, med *domain.Medication) {
	owner, err := s.userRepo.FindByID(med.UserID)
	if err != nil {
		log.Printf("[MedScheduler] Error resolving owner for medication %s: %v", med.ID, err)
		return
	}
	if owner == nil {
		log.Printf("[MedScheduler] Orphaned medication %s: owner %s not found", med.ID, med.UserID)
		return
	}

	tokens, err := s.fcmRepo.GetTokensByUserID(owner.ID)
	if err != nil {
		log.Printf("[MedScheduler] Error getting FCM tokens for user %s: %v", owner.ID, err)
		return
	}

	if len(tokens) == 0 {
		log.Printf("[MedScheduler] No device tokens for user %s, skipping reminder", owner.ID)
		return
	}

	tokenStrings := make([]string, 0, len(tokens))
	for _, t := range tokens {
		tokenStrings = append(tokenStrings, t.Token)
	}

	notification := fcm.NotificationData{
		Title: reminderTitle,
		Body:  fmt.Sprintf("Przypomnienie: %s (%s)", med.Name, med.Dosage),
		Link:  reminderLink,
		Data: map[string]string{
			"type":          "medication_reminder",
			"medication_id": med.ID,
			"click_action":  reminderLink,
		},
	}

	// One send call per medication, carrying all of the owner's tokens.
	// Failed tokens are not pruned; a dead token keeps failing until the
	// client re-registers it.
	failedTokens, err := s.sender.SendToDevices(ctx, tokenStrings, notification)
	if err != nil {
		log.Printf("[MedScheduler] Error sending reminder for medication '%s' to user %s: %v", med.Name, owner.ID, err)
		return
	}

	log.Printf("[MedScheduler] Sent reminder for '%s' to %d of %d devices of user %s",
		med.Name, len(tokenStrings)-len(failedTokens), len(tokenStrings), owner.ID)
}
