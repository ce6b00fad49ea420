package service

import (
	"errors"
	"net/mail"
	"strings"
	"unicode"

	"github.com/placementkit/readiness-panel/database/model"
	"github.com/placementkit/readiness-panel/logger"
	"github.com/placementkit/readiness-panel/util/crypto"
)

// maxFailedLogins is the lockout threshold. An account whose counter has
// reached it cannot authenticate again, even with the correct password.
const maxFailedLogins = 5

// passwordSymbols is the fixed punctuation set a password must draw at least
// one character from.
const passwordSymbols = "!@#$%^&*()-_=+[]{};:'\",.<>/?\\|`~"

const minPasswordLength = 8

var (
	// ErrInvalidEmail is returned when a registration email is not well formed.
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrWeakPassword is returned when a registration password fails the
	// strength policy. A single signal covers all policy conditions.
	ErrWeakPassword = errors.New("password does not meet strength requirements")

	// ErrInvalidCredentials is returned for both unknown emails and wrong
	// passwords so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrLocked is returned when the failed login counter has reached the
	// lockout threshold. It does not reveal whether the password was correct.
	ErrLocked = errors.New("account locked")
)

// AuthService validates credentials against the account store and drives the
// lockout state machine. The machine has no separate in-memory state; it is
// entirely a function of the stored failed login counter.
type AuthService struct {
	accountService AccountService
}

// Register validates the email and password, hashes the password and creates
// the account. Validation failures leave storage untouched. An empty role
// defaults to student.
func (s *AuthService) Register(email, password, role string) (*model.Account, error) {
	email = model.NormalizeEmail(email)
	if !isValidEmail(email) {
		return nil, ErrInvalidEmail
	}
	if !isStrongPassword(password) {
		return nil, ErrWeakPassword
	}

	hash, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		return nil, err
	}

	account, err := s.accountService.CreateAccount(email, hash, role)
	if err != nil {
		return nil, err
	}
	logger.Infof("registered account %s with role %s", account.Email, account.Role)
	return account, nil
}

// Login authenticates an account. The lockout check runs before password
// verification, so a locked account is rejected even with the correct
// password. A successful login resets the failed login counter; a wrong
// password increments it.
func (s *AuthService) Login(email, password string) (*model.Account, error) {
	account, err := s.accountService.GetAccountByEmail(email)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrInvalidCredentials
	} else if err != nil {
		return nil, err
	}

	if account.FailedLogins >= maxFailedLogins {
		logger.Warningf("login rejected for locked account %s", account.Email)
		return nil, ErrLocked
	}

	if !crypto.CheckPasswordHash(account.Password, password) {
		count, err := s.accountService.IncrementFailedLogins(account.Id)
		if err != nil {
			return nil, err
		}
		logger.Warningf("failed login for %s (attempt %d)", account.Email, count)
		return nil, ErrInvalidCredentials
	}

	if err := s.accountService.ResetFailedLogins(account.Id); err != nil {
		return nil, err
	}
	account.FailedLogins = 0
	return account, nil
}

// isValidEmail reports whether email is a syntactically well-formed bare
// address. Display-name forms such as "Name <a@b>" are rejected.
func isValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	return addr.Address == email
}

// isStrongPassword enforces the registration password policy: minimum length
// plus at least one uppercase letter, one lowercase letter, one digit and one
// symbol from passwordSymbols. All conditions are required.
func isStrongPassword(password string) bool {
	if len(password) < minPasswordLength {
		return false
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(passwordSymbols, r):
			hasSymbol = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSymbol
}
