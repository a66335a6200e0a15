package models

// User lifecycle event types published to the user events topic.
const (
	EventUserRegistered     = "user.registered"
	EventUserForgotPassword = "user.forgot_password"
	EventUserResetPassword  = "user.reset_password"
	EventUserRequestVerify  = "user.request_verify"
	EventUserVerified       = "user.verified"
)

// UserEvent is a user lifecycle notification for downstream consumers such
// as a mailer: it carries the one-time token when the user must act on it.
type UserEvent struct {
	EventID   string `json:"event_id"`             // EventID is a unique identifier of the event.
	Type      string `json:"type"`                 // Type is one of the Event* constants.
	Timestamp int64  `json:"timestamp"`            // Timestamp is the Unix time (seconds) the event occurred.
	UserID    string `json:"user_id"`              // UserID identifies the subject user.
	Email     string `json:"email"`                // Email is the subject user's address.
	Token     string `json:"token,omitempty"`      // Token is the reset or verification token, if any.
	FromEmail string `json:"from_email,omitempty"` // FromEmail is the configured sender address.
	FromName  string `json:"from_name,omitempty"`  // FromName is the configured sender name.
}
