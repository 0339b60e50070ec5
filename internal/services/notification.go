package service

import (
	"context"

	"github.com/sellora/marketplace/internal/errors"
	"github.com/sellora/marketplace/internal/models"
	"github.com/sellora/marketplace/pkg/sendgrid"
)

type NotificationService interface {
	SendEmail(ctx context.Context, req *models.EmailNotificationRequest) error
}

type notificationService struct {
	emailService sendgrid.EmailService
}

func NewNotificationService(emailService sendgrid.EmailService) NotificationService {
	return &notificationService{emailService: emailService}
}

// SendEmail implements NotificationService.
func (n *notificationService) SendEmail(ctx context.Context, req *models.EmailNotificationRequest) error {

	if err := n.emailService.Send(ctx, req); err != nil {
		return errors.ThirdPartyError("Failed to send email").WithError(err)
	}

	return nil
}
