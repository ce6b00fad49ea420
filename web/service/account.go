package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/placementkit/readiness-panel/database"
	"github.com/placementkit/readiness-panel/database/model"
)

// Raw scores always lie in [0,100].
const (
	minScore = 0
	maxScore = 100
)

var (
	// ErrNotFound is returned when an account lookup or update targets an id
	// that does not exist. Callers treat this as a session-consistency bug.
	ErrNotFound = errors.New("account not found")

	// ErrDuplicateEmail is returned when registration reuses a normalized email.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidScore is returned when a score update carries a value outside
	// [0,100]. Nothing is persisted in that case.
	ErrInvalidScore = errors.New("score must be between 0 and 100")
)

// AccountService persists accounts and their raw scores, and tracks the
// consecutive failed login counter per account.
type AccountService struct{}

// CreateAccount persists a new account with default scores and a zero failed
// login counter. The email is normalized before the uniqueness check.
func (s *AccountService) CreateAccount(email, passwordHash, role string) (*model.Account, error) {
	db := database.GetDB()

	email = model.NormalizeEmail(email)
	if role == "" {
		role = model.RoleStudent
	}

	var count int64
	err := db.Model(model.Account{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateEmail
	}

	account := &model.Account{
		Email:       email,
		Password:    passwordHash,
		Role:        role,
		SkillScore:  model.DefaultSkillScore,
		ResumeScore: model.DefaultResumeScore,
	}
	if err := db.Create(account).Error; err != nil {
		// The count above can race with a concurrent create, so the unique
		// index on email is the authority.
		if isDuplicateEmailErr(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return account, nil
}

func isDuplicateEmailErr(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// GetAccount looks up an account by id.
func (s *AccountService) GetAccount(id int) (*model.Account, error) {
	db := database.GetDB()

	account := &model.Account{}
	err := db.Model(model.Account{}).
		Where("id = ?", id).
		First(account).
		Error
	if database.IsNotFound(err) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return account, nil
}

// GetAccountByEmail looks up an account by its normalized email.
func (s *AccountService) GetAccountByEmail(email string) (*model.Account, error) {
	db := database.GetDB()

	account := &model.Account{}
	err := db.Model(model.Account{}).
		Where("email = ?", model.NormalizeEmail(email)).
		First(account).
		Error
	if database.IsNotFound(err) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return account, nil
}

// UpdateSkillScore sets the student-editable skill score.
func (s *AccountService) UpdateSkillScore(id int, value int) error {
	return s.updateScore(id, "skill_score", value)
}

// UpdateResumeScore sets the system-computed resume score.
func (s *AccountService) UpdateResumeScore(id int, value int) error {
	return s.updateScore(id, "resume_score", value)
}

func (s *AccountService) updateScore(id int, column string, value int) error {
	if value < minScore || value > maxScore {
		return ErrInvalidScore
	}

	db := database.GetDB()
	result := db.Model(model.Account{}).
		Where("id = ?", id).
		Update(column, value)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// IncrementFailedLogins bumps the failed login counter by one and returns the
// new count. The increment runs inside the database so concurrent failures
// are never lost to a read-then-write race.
func (s *AccountService) IncrementFailedLogins(id int) (int, error) {
	db := database.GetDB()

	result := db.Model(model.Account{}).
		Where("id = ?", id).
		Update("failed_logins", gorm.Expr("failed_logins + 1"))
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, ErrNotFound
	}

	account, err := s.GetAccount(id)
	if err != nil {
		return 0, err
	}
	return account.FailedLogins, nil
}

// ResetFailedLogins clears the failed login counter.
func (s *AccountService) ResetFailedLogins(id int) error {
	db := database.GetDB()

	result := db.Model(model.Account{}).
		Where("id = ?", id).
		Update("failed_logins", 0)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListAccountsByRole returns all accounts with the given role in insertion
// order.
func (s *AccountService) ListAccountsByRole(role string) ([]model.Account, error) {
	db := database.GetDB()

	accounts := make([]model.Account, 0)
	err := db.Model(model.Account{}).
		Where("role = ?", role).
		Order("id ASC").
		Find(&accounts).
		Error
	if err != nil {
		return nil, err
	}
	return accounts, nil
}
