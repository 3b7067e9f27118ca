package contact

import (
	"strings"
	"time"
)

const DefaultInquiryType = "general"

// Message is one archived contact form submission.
type Message struct {
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Subject    string    `json:"subject"`
	Message    string    `json:"message"`
	Type       string    `json:"type"`
	Newsletter bool      `json:"newsletter"`
	Timestamp  time.Time `json:"timestamp"`
}

// Submission is what a contact form hands over before it is stamped.
type Submission struct {
	Name       string `form:"name" json:"name"`
	Email      string `form:"email" json:"email"`
	Subject    string `form:"subject" json:"subject"`
	Message    string `form:"message" json:"message"`
	Type       string `form:"type" json:"type"`
	Newsletter bool   `form:"newsletter" json:"newsletter"`
}

type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return e.Field + " is required"
}

func (s Submission) Normalize() Submission {
	out := Submission{
		Name:       strings.TrimSpace(s.Name),
		Email:      strings.TrimSpace(s.Email),
		Subject:    strings.TrimSpace(s.Subject),
		Message:    strings.TrimSpace(s.Message),
		Type:       strings.TrimSpace(s.Type),
		Newsletter: s.Newsletter,
	}
	if out.Type == "" {
		out.Type = DefaultInquiryType
	}
	return out
}

func (s Submission) Validate() error {
	required := []struct {
		field string
		value string
	}{
		{"name", s.Name},
		{"email", s.Email},
		{"subject", s.Subject},
		{"message", s.Message},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return &ValidationError{Field: r.field}
		}
	}
	return nil
}

func (s Submission) stamp(now time.Time) Message {
	return Message{
		Name:       s.Name,
		Email:      s.Email,
		Subject:    s.Subject,
		Message:    s.Message,
		Type:       s.Type,
		Newsletter: s.Newsletter,
		Timestamp:  now.UTC(),
	}
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
