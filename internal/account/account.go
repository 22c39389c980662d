package account

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

var (
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrRequired         = errors.New("required field is empty")
)

type MessageType string

const (
	MessageNone    MessageType = ""
	MessageSuccess MessageType = "success"
	MessageError   MessageType = "error"
)

// Message is the alert shown under a form after a submission.
type Message struct {
	Type    MessageType `json:"type"`
	Content string      `json:"content"`
}

func (m Message) Empty() bool {
	return m.Content == ""
}

func (m Message) Title() string {
	if m.Type == MessageError {
		return "Error"
	}
	return "Success"
}

// LoginPage holds the login form. There is no credential check.
type LoginPage struct {
	Email    string
	Password string
	Message  Message
}

// Submit logs the attempt and reports success.
func (p *LoginPage) Submit(logger zerolog.Logger) error {
	if err := requireFields(field{"email", p.Email}, field{"password", p.Password}); err != nil {
		return err
	}
	logger.Info().Str("email", p.Email).Msg("Login attempt")
	p.Message = Message{Type: MessageSuccess, Content: "Login successful!"}
	return nil
}

type SignupPage struct {
	Email           string
	Password        string
	ConfirmPassword string
	Message         Message
}

// Submit checks the confirmation and reports the outcome. The previous message
// is always replaced.
func (p *SignupPage) Submit(logger zerolog.Logger) error {
	if err := requireFields(
		field{"email", p.Email},
		field{"password", p.Password},
		field{"confirm-password", p.ConfirmPassword},
	); err != nil {
		return err
	}
	if p.Password != p.ConfirmPassword {
		p.Message = Message{Type: MessageError, Content: "Passwords do not match."}
		return ErrPasswordMismatch
	}
	logger.Info().Str("email", p.Email).Msg("Signup attempt")
	p.Message = Message{Type: MessageSuccess, Content: "Registration successful! Please log in."}
	return nil
}

// requireFields blocks a submission before it fires, like the browser does for
// required inputs. Email inputs drop surrounding whitespace; password inputs
// keep it, so only an empty password is missing.
func requireFields(fields ...field) error {
	var missing []string
	for _, f := range fields {
		value := f.value
		if f.name == "email" {
			value = strings.TrimSpace(value)
		}
		if value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrRequired, strings.Join(missing, ", "))
	}
	return nil
}

type field struct {
	name  string
	value string
}
