package models

import "time"

type VerificationKind string

const (
	VerificationLogin    VerificationKind = "login"
	VerificationRegister VerificationKind = "register"
)

// PendingVerification — единственный активный слот OTP-шага.
// Держим только bcrypt-хэш кода (CodeHash); сам код уходит оператору
// по внешнему каналу доставки и нигде не сохраняется.
type PendingVerification struct {
	Email    string
	Username string
	CodeHash string
	Kind     VerificationKind
	SentAt   time.Time
}
