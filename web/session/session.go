// Package session stores the logged-in account in the cookie session managed
// by gin-contrib/sessions.
package session

import (
	"encoding/gob"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/placementkit/readiness-panel/database/model"
)

const loginAccount = "LOGIN_ACCOUNT"

func init() {
	gob.Register(model.Account{})
}

// SetLoginAccount stores the account in the session. The password hash is
// stripped so it never travels in the cookie.
func SetLoginAccount(c *gin.Context, account *model.Account) error {
	safe := *account
	safe.Password = ""
	s := sessions.Default(c)
	s.Set(loginAccount, safe)
	return s.Save()
}

func SetMaxAge(c *gin.Context, maxAge int) error {
	s := sessions.Default(c)
	s.Options(sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
	})
	return s.Save()
}

func GetLoginAccount(c *gin.Context) *model.Account {
	s := sessions.Default(c)
	if obj := s.Get(loginAccount); obj != nil {
		if account, ok := obj.(model.Account); ok {
			return &account
		}
	}
	return nil
}

func IsLogin(c *gin.Context) bool {
	return GetLoginAccount(c) != nil
}

func ClearSession(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	s.Options(sessions.Options{
		Path:   "/",
		MaxAge: -1,
	})
	return s.Save()
}
