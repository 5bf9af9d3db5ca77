package scheduler

import (
	"fmt"
	"html"
	"log"
	"strings"
	"time"

	authrepo "jobtrail-backend/internal/auth/repository"
	"jobtrail-backend/internal/learning/domain"
	"jobtrail-backend/internal/learning/repository"
	"jobtrail-backend/pkg/mailer"
)

// DigestScheduler periodically emails each user an HTML digest of their
// open learning tasks.
type DigestScheduler struct {
	taskRepo repository.LearningTaskRepository
	userRepo authrepo.UserRepository
	mail     mailer.Mailer
	interval time.Duration
	stopChan chan struct{}
}

// NewDigestScheduler creates a new scheduler
func NewDigestScheduler(taskRepo repository.LearningTaskRepository, userRepo authrepo.UserRepository, mail mailer.Mailer, interval time.Duration) *DigestScheduler {
	return &DigestScheduler{
		taskRepo: taskRepo,
		userRepo: userRepo,
		mail:     mail,
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

// Start begins the scheduler loop
func (s *DigestScheduler) Start() {
	log.Printf("[DigestScheduler] Starting task digest scheduler (interval: %s)", s.interval)

	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.sendDigests()
			case <-s.stopChan:
				log.Println("[DigestScheduler] Scheduler stopped")
				return
			}
		}
	}()
}

// Stop gracefully stops the scheduler
func (s *DigestScheduler) Stop() {
	close(s.stopChan)
}

func (s *DigestScheduler) sendDigests() {
	users, err := s.userRepo.FindAll()
	if err != nil {
		log.Printf("[DigestScheduler] Error listing users: %v", err)
		return
	}

	for _, user := range users {
		tasks, err := s.taskRepo.FindOpenByUserID(user.ID)
		if err != nil {
			log.Printf("[DigestScheduler] Error listing tasks for user %s: %v", user.ID, err)
			continue
		}
		if len(tasks) == 0 {
			continue
		}

		html := buildDigestHTML(user.Name, tasks)
		subject := fmt.Sprintf("Your learning digest: %d open tasks", len(tasks))
		if err := s.mail.Send(user.Email, subject, html); err != nil {
			log.Printf("[DigestScheduler] Error sending digest to %s: %v", user.Email, err)
			continue
		}
		log.Printf("[DigestScheduler] Sent digest with %d tasks to %s", len(tasks), user.Email)
	}
}

func buildDigestHTML(name string, tasks []*domain.LearningTask) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("<h2>Hi %s, here is your learning plan</h2>", html.EscapeString(name)))
	b.WriteString("<ul>")
	for _, task := range tasks {
		// Titles and descriptions carry email-derived text.
		b.WriteString(fmt.Sprintf("<li><strong>%s</strong> (%s, ~%dh)", html.EscapeString(task.Title), task.Priority, task.EstimatedHours))
		if task.Description != "" {
			b.WriteString(fmt.Sprintf("<br/>%s", html.EscapeString(task.Description)))
		}
		b.WriteString("</li>")
	}
	b.WriteString("</ul>")
	return b.String()
}
