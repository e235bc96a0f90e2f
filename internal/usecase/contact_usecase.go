package usecase

import (
	"errors"
	"fmt"

	"bakra-mandi/internal/entity"
	"bakra-mandi/internal/repo/persistent"
	"bakra-mandi/pkg/logger"
	"bakra-mandi/pkg/queue"
)

var ErrContactFieldsMissing = errors.New("name, email, and message are required")

type ContactUseCase interface {
	SubmitMessage(name, email, subject, message string) (*entity.ContactMessage, error)
}

type contactUseCase struct {
	contactRepo persistent.ContactRepository
	queueClient *queue.Client
	logger      *logger.Logger
}

func NewContactUseCase(
	contactRepo persistent.ContactRepository,
	queueClient *queue.Client,
	logger *logger.Logger,
) ContactUseCase {
	return &contactUseCase{
		contactRepo: contactRepo,
		queueClient: queueClient,
		logger:      logger,
	}
}

func (uc *contactUseCase) SubmitMessage(name, email, subject, message string) (*entity.ContactMessage, error) {
	if name == "" || email == "" || message == "" {
		return nil, ErrContactFieldsMissing
	}

	saved, err := uc.contactRepo.CreateMessage(name, email, subject, message)
	if err != nil {
		uc.logger.Error("Failed to save contact message: %v", err)
		return nil, fmt.Errorf("failed to save contact message: %w", err)
	}

	if uc.queueClient != nil {
		go func() {
			task := map[string]interface{}{
				"type":       "contact_message",
				"message_id": saved.ID,
				"name":       saved.Name,
				"email":      saved.Email,
				"priority":   5,
			}
			if err := uc.queueClient.PublishAlert(task); err != nil {
				uc.logger.Error("Failed to publish contact alert: %v", err)
			}
		}()
	}

	return saved, nil
}
