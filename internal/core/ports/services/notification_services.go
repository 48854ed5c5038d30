package services

// EmailSender dispatches transactional mail. Handlers call it from
// fire-and-forget goroutines; failures are logged, never surfaced to the
// HTTP caller.
type EmailSender interface {
	// SendConfirmationEmail mails a confirmation link built from baseURL
	// and the confirmation token.
	SendConfirmationEmail(to string, username string, baseURL string, token string) error

	// SendPasswordResetEmail mails a link to the reset-password page.
	SendPasswordResetEmail(to string, username string, baseURL string, token string) error
}
