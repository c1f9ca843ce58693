package dip

import (
	"fmt"
	"io"

	"github.com/mesh-intelligence/solid/pkg/types"
)

// EmailSender delivers notifications by email.
type EmailSender struct{}

func (EmailSender) SendNotification(w io.Writer, message string) error {
	return types.WriteLine(w, fmt.Sprintf(types.FormatEmailNotification, message))
}

// SMSSender delivers notifications by SMS.
type SMSSender struct{}

func (SMSSender) SendNotification(w io.Writer, message string) error {
	return types.WriteLine(w, fmt.Sprintf(types.FormatSMSNotification, message))
}

var (
	_ types.Sender = EmailSender{}
	_ types.Sender = SMSSender{}
)

// NotificationService sends messages through whatever sender it was given.
type NotificationService struct {
	sender types.Sender
}

// NewNotificationService returns a service bound to sender.
// Returns types.ErrNilCollaborator if sender is nil.
func NewNotificationService(sender types.Sender) (*NotificationService, error) {
	if sender == nil {
		return nil, types.ErrNilCollaborator
	}
	return &NotificationService{sender: sender}, nil
}

// SendNotification forwards message to the injected sender.
func (s *NotificationService) SendNotification(w io.Writer, message string) error {
	return s.sender.SendNotification(w, message)
}
