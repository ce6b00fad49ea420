package service

import (
	"errors"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/placementkit/readiness-panel/database"
	"github.com/placementkit/readiness-panel/database/model"
)

func setup() {
	dbPath := "test.db"
	os.Remove(dbPath)
	database.InitDB(dbPath)
}

func teardown() {
	db, _ := database.GetDB().DB()
	db.Close()
	os.Remove("test.db")
}

func TestCreateAccount(t *testing.T) {
	setup()
	defer teardown()

	service := AccountService{}

	account, err := service.CreateAccount("alice@example.com", "hash", "")
	assert.NoError(t, err)
	assert.Equal(t, "alice@example.com", account.Email)
	assert.Equal(t, model.RoleStudent, account.Role)
	assert.Equal(t, model.DefaultSkillScore, account.SkillScore)
	assert.Equal(t, model.DefaultResumeScore, account.ResumeScore)
	assert.Equal(t, 0, account.FailedLogins)

	// Same identity with different case and whitespace
	_, err = service.CreateAccount("  Alice@Example.COM ", "hash", "")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestCreateAccountConcurrentDuplicate(t *testing.T) {
	setup()
	defer teardown()

	service := AccountService{}

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = service.CreateAccount("race@example.com", "hash", "")
		}(i)
	}
	wg.Wait()

	// Exactly one registration wins regardless of interleaving.
	var created, duplicate int
	for _, err := range errs {
		switch {
		case err == nil:
			created++
		case assert.ErrorIs(t, err, ErrDuplicateEmail):
			duplicate++
		}
	}
	assert.Equal(t, 1, created)
	assert.Equal(t, 1, duplicate)

	accounts, err := service.ListAccountsByRole(model.RoleStudent)
	assert.NoError(t, err)
	assert.Len(t, accounts, 1)
}

func TestGetAccountByEmailNormalizes(t *testing.T) {
	setup()
	defer teardown()

	service := AccountService{}

	created, err := service.CreateAccount("bob@example.com", "hash", "")
	assert.NoError(t, err)

	found, err := service.GetAccountByEmail(" BOB@example.com ")
	assert.NoError(t, err)
	assert.Equal(t, created.Id, found.Id)

	_, err = service.GetAccountByEmail("nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateScoreRange(t *testing.T) {
	setup()
	defer teardown()

	service := AccountService{}

	account, err := service.CreateAccount("carol@example.com", "hash", "")
	assert.NoError(t, err)

	tests := []struct {
		name  string
		value int
		err   error
	}{
		{"below range", -1, ErrInvalidScore},
		{"above range", 101, ErrInvalidScore},
		{"lower bound", 0, nil},
		{"upper bound", 100, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.UpdateSkillScore(account.Id, tt.value)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateScoreRejectedLeavesStoredValue(t *testing.T) {
	setup()
	defer teardown()

	service := AccountService{}

	account, err := service.CreateAccount("dave@example.com", "hash", "")
	assert.NoError(t, err)

	err = service.UpdateSkillScore(account.Id, 101)
	assert.ErrorIs(t, err, ErrInvalidScore)
	err = service.UpdateResumeScore(account.Id, -1)
	assert.ErrorIs(t, err, ErrInvalidScore)

	stored, err := service.GetAccount(account.Id)
	assert.NoError(t, err)
	assert.Equal(t, model.DefaultSkillScore, stored.SkillScore)
	assert.Equal(t, model.DefaultResumeScore, stored.ResumeScore)
}

func TestUpdateScoreUnknownAccount(t *testing.T) {
	setup()
	defer teardown()

	service := AccountService{}

	err := service.UpdateSkillScore(9999, 50)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFailedLoginCounter(t *testing.T) {
	setup()
	defer teardown()

	service := AccountService{}

	account, err := service.CreateAccount("erin@example.com", "hash", "")
	assert.NoError(t, err)

	for i := 1; i <= 3; i++ {
		count, err := service.IncrementFailedLogins(account.Id)
		assert.NoError(t, err)
		assert.Equal(t, i, count)
	}

	err = service.ResetFailedLogins(account.Id)
	assert.NoError(t, err)

	stored, err := service.GetAccount(account.Id)
	assert.NoError(t, err)
	assert.Equal(t, 0, stored.FailedLogins)
}

func TestDuplicateEmailErrMapping(t *testing.T) {
	assert.True(t, isDuplicateEmailErr(gorm.ErrDuplicatedKey))
	assert.True(t, isDuplicateEmailErr(errors.New("UNIQUE constraint failed: accounts.email")))
	assert.False(t, isDuplicateEmailErr(errors.New("disk I/O error")))
	assert.False(t, isDuplicateEmailErr(nil))
}

func TestFailedLoginCounterConcurrent(t *testing.T) {
	setup()
	defer teardown()

	service := AccountService{}

	account, err := service.CreateAccount("grace@example.com", "hash", "")
	assert.NoError(t, err)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = service.IncrementFailedLogins(account.Id)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}

	// Both increments must land; a lost update would leave the counter at 1.
	stored, err := service.GetAccount(account.Id)
	assert.NoError(t, err)
	assert.Equal(t, 2, stored.FailedLogins)
}

func TestListAccountsByRole(t *testing.T) {
	setup()
	defer teardown()

	service := AccountService{}

	// InitDB seeds one admin; add two students.
	first, err := service.CreateAccount("s1@example.com", "hash", "")
	assert.NoError(t, err)
	second, err := service.CreateAccount("s2@example.com", "hash", "")
	assert.NoError(t, err)

	students, err := service.ListAccountsByRole(model.RoleStudent)
	assert.NoError(t, err)
	assert.Len(t, students, 2)
	assert.Equal(t, first.Id, students[0].Id)
	assert.Equal(t, second.Id, students[1].Id)

	admins, err := service.ListAccountsByRole(model.RoleAdmin)
	assert.NoError(t, err)
	assert.Len(t, admins, 1)
}
