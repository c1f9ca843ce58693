package srp

import (
	"fmt"
	"io"

	"github.com/mesh-intelligence/solid/pkg/types"
)

// UserAuthenticationService authenticates users and does nothing else.
type UserAuthenticationService struct{}

// AuthenticateUser reports the authentication attempt. The password is
// accepted but never written.
func (UserAuthenticationService) AuthenticateUser(w io.Writer, username, password string) error {
	_ = password
	return types.WriteLine(w, fmt.Sprintf(types.FormatAuthenticate, username))
}

// EmailService sends email and does nothing else.
type EmailService struct{}

// SendEmail reports the email being sent.
func (EmailService) SendEmail(w io.Writer, recipient, subject, body string) error {
	return types.WriteLine(w, fmt.Sprintf(types.FormatSendEmail, recipient, subject, body))
}
