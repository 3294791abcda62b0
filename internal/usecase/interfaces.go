package usecase

// EmailSender delivers transactional mail. Implementations retry internally
// and report success as a boolean; delivery failure never fails the calling
// operation.
type EmailSender interface {
	SendVerificationCode(email, code string) bool
	SendAccountSetupLink(email, setupLink, employeeName string) bool
}

// SMSSender delivers one-time codes over SMS with the same best-effort
// contract as EmailSender.
type SMSSender interface {
	SendVerificationCode(phoneNumber, code string) bool
}
