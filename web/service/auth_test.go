package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/placementkit/readiness-panel/database/model"
)

const strongPassword = "Str0ng!pass"

func TestRegisterAndLogin(t *testing.T) {
	setup()
	defer teardown()

	service := AuthService{}

	account, err := service.Register("alice@example.com", strongPassword, "")
	assert.NoError(t, err)
	assert.Equal(t, model.RoleStudent, account.Role)

	loggedIn, err := service.Login("alice@example.com", strongPassword)
	assert.NoError(t, err)
	assert.Equal(t, account.Id, loggedIn.Id)
	assert.Equal(t, model.RoleStudent, loggedIn.Role)
}

func TestRegisterDuplicateNormalizedEmail(t *testing.T) {
	setup()
	defer teardown()

	service := AuthService{}

	_, err := service.Register("bob@example.com", strongPassword, "")
	assert.NoError(t, err)

	_, err = service.Register("  BOB@Example.com ", strongPassword, "")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestRegisterInvalidEmail(t *testing.T) {
	setup()
	defer teardown()

	service := AuthService{}

	tests := []string{
		"",
		"not-an-email",
		"missing@domain@double.com",
		"spaces in@example.com",
	}

	for _, email := range tests {
		_, err := service.Register(email, strongPassword, "")
		assert.ErrorIs(t, err, ErrInvalidEmail, "email %q", email)
	}
}

func TestRegisterWeakPassword(t *testing.T) {
	setup()
	defer teardown()

	service := AuthService{}

	tests := []struct {
		name     string
		password string
	}{
		{"too short", "Ab1!xyz"},
		{"no uppercase", "str0ng!pass"},
		{"no lowercase", "STR0NG!PASS"},
		{"no digit", "Strong!pass"},
		{"no symbol", "Str0ngpass"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Register("weak@example.com", tt.password, "")
			assert.ErrorIs(t, err, ErrWeakPassword)
		})
	}

	// None of the rejected attempts may have created an account.
	accountService := AccountService{}
	_, err := accountService.GetAccountByEmail("weak@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoginUnknownEmail(t *testing.T) {
	setup()
	defer teardown()

	service := AuthService{}

	// Unknown emails and wrong passwords look identical to the caller.
	_, err := service.Login("ghost@example.com", strongPassword)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginWrongPasswordIncrementsCounter(t *testing.T) {
	setup()
	defer teardown()

	service := AuthService{}
	accountService := AccountService{}

	account, err := service.Register("carol@example.com", strongPassword, "")
	assert.NoError(t, err)

	_, err = service.Login("carol@example.com", "Wr0ng!pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	stored, err := accountService.GetAccount(account.Id)
	assert.NoError(t, err)
	assert.Equal(t, 1, stored.FailedLogins)
}

func TestLockoutAfterFiveFailures(t *testing.T) {
	setup()
	defer teardown()

	service := AuthService{}

	_, err := service.Register("dave@example.com", strongPassword, "")
	assert.NoError(t, err)

	for i := 0; i < 5; i++ {
		_, err := service.Login("dave@example.com", "Wr0ng!pass")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	}

	// The sixth attempt uses the correct password but the account is locked.
	_, err = service.Login("dave@example.com", strongPassword)
	assert.ErrorIs(t, err, ErrLocked)

	// The lock is permanent: further correct attempts stay locked.
	_, err = service.Login("dave@example.com", strongPassword)
	assert.ErrorIs(t, err, ErrLocked)
}

func TestSuccessfulLoginResetsCounter(t *testing.T) {
	setup()
	defer teardown()

	service := AuthService{}
	accountService := AccountService{}

	account, err := service.Register("erin@example.com", strongPassword, "")
	assert.NoError(t, err)

	// Four failures stay below the threshold.
	for i := 0; i < 4; i++ {
		_, err := service.Login("erin@example.com", "Wr0ng!pass")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	}

	loggedIn, err := service.Login("erin@example.com", strongPassword)
	assert.NoError(t, err)
	assert.Equal(t, 0, loggedIn.FailedLogins)

	stored, err := accountService.GetAccount(account.Id)
	assert.NoError(t, err)
	assert.Equal(t, 0, stored.FailedLogins)
}

func TestRegisterWithAdminRole(t *testing.T) {
	setup()
	defer teardown()

	service := AuthService{}

	account, err := service.Register("root@example.com", strongPassword, model.RoleAdmin)
	assert.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, account.Role)

	loggedIn, err := service.Login("root@example.com", strongPassword)
	assert.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, loggedIn.Role)
}
