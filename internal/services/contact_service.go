package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/parasnikum/DevSync/internal/models"
	"github.com/parasnikum/DevSync/internal/repositories"
	"github.com/parasnikum/DevSync/pkg/logger"
)

type ContactService struct {
	contactRepo  *repositories.ContactRepository
	emailService *EmailService
}

func NewContactService(contactRepo *repositories.ContactRepository, emailService *EmailService) *ContactService {
	return &ContactService{
		contactRepo:  contactRepo,
		emailService: emailService,
	}
}

// Submit validates and stores a contact form message. The notification mail
// is best-effort; a mail failure does not fail the submission.
func (s *ContactService) Submit(name, email, message string) (*models.ContactMessage, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	message = strings.TrimSpace(message)

	if name == "" {
		return nil, errors.New("name is required")
	}
	if !strings.Contains(email, "@") {
		return nil, errors.New("a valid email is required")
	}
	if len(message) < 10 {
		return nil, errors.New("message must be at least 10 characters")
	}

	contactMessage := models.NewContactMessage(name, email, message)
	if err := s.contactRepo.Create(contactMessage); err != nil {
		return nil, fmt.Errorf("failed to store message: %w", err)
	}

	if s.emailService.Enabled() {
		if err := s.emailService.SendContactNotification(contactMessage); err != nil {
			logger.WithError(err).Warnf("Failed to forward contact message %s", contactMessage.ID)
		}
	}

	return contactMessage, nil
}
