package controller

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/placementkit/readiness-panel/logger"
	"github.com/placementkit/readiness-panel/web/service"
	"github.com/placementkit/readiness-panel/web/session"
)

// LoginForm represents the login request structure.
type LoginForm struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// RegisterForm represents the registration request structure.
type RegisterForm struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// IndexController handles registration, login and logout.
type IndexController struct {
	BaseController

	settingService service.SettingService
	authService    service.AuthService
}

// NewIndexController creates a new IndexController and initializes its routes.
func NewIndexController(g *gin.RouterGroup) *IndexController {
	a := &IndexController{}
	a.initRouter(g)
	return a
}

func (a *IndexController) initRouter(g *gin.RouterGroup) {
	g.POST("/register", a.register)
	g.POST("/login", a.login)
	g.GET("/logout", a.logout)
}

// register creates a new student account.
func (a *IndexController) register(c *gin.Context) {
	var form RegisterForm

	if err := c.ShouldBind(&form); err != nil {
		pureJsonMsg(c, http.StatusOK, false, "invalid form data")
		return
	}
	if form.Email == "" {
		pureJsonMsg(c, http.StatusOK, false, "email can not be empty")
		return
	}
	if form.Password == "" {
		pureJsonMsg(c, http.StatusOK, false, "password can not be empty")
		return
	}

	account, err := a.authService.Register(form.Email, form.Password, "")
	switch {
	case errors.Is(err, service.ErrInvalidEmail):
		pureJsonMsg(c, http.StatusOK, false, "email address is not valid")
		return
	case errors.Is(err, service.ErrWeakPassword):
		pureJsonMsg(c, http.StatusOK, false,
			"password must be at least 8 characters and contain an uppercase letter, a lowercase letter, a digit and a symbol")
		return
	case errors.Is(err, service.ErrDuplicateEmail):
		pureJsonMsg(c, http.StatusOK, false, "email is already registered")
		return
	case err != nil:
		jsonMsg(c, "register", err)
		return
	}

	jsonMsgObj(c, "registration successful", gin.H{"id": account.Id, "role": account.Role}, nil)
}

// login authenticates the account and creates the session.
func (a *IndexController) login(c *gin.Context) {
	var form LoginForm

	if err := c.ShouldBind(&form); err != nil {
		pureJsonMsg(c, http.StatusOK, false, "invalid form data")
		return
	}
	if form.Email == "" {
		pureJsonMsg(c, http.StatusOK, false, "email can not be empty")
		return
	}
	if form.Password == "" {
		pureJsonMsg(c, http.StatusOK, false, "password can not be empty")
		return
	}

	account, err := a.authService.Login(form.Email, form.Password)
	switch {
	case errors.Is(err, service.ErrLocked):
		logger.Warningf("locked account login attempt, IP: %s", getRemoteIp(c))
		pureJsonMsg(c, http.StatusOK, false, "account is locked due to repeated failed logins")
		return
	case errors.Is(err, service.ErrInvalidCredentials):
		logger.Warningf("wrong credentials, IP: %s", getRemoteIp(c))
		pureJsonMsg(c, http.StatusOK, false, "invalid email or password")
		return
	case err != nil:
		jsonMsg(c, "login", err)
		return
	}

	sessionMaxAge, err := a.settingService.GetSessionMaxAge()
	if err != nil {
		logger.Warning("Unable to get session's max age from DB")
	}

	session.SetMaxAge(c, sessionMaxAge*60)
	session.SetLoginAccount(c, account)
	if err := sessions.Default(c).Save(); err != nil {
		logger.Warning("Unable to save session: ", err)
		return
	}

	logger.Infof("%s logged in successfully, IP: %s", account.Email, getRemoteIp(c))
	jsonMsgObj(c, "login successful", gin.H{"id": account.Id, "role": account.Role}, nil)
}

// logout clears the session.
func (a *IndexController) logout(c *gin.Context) {
	account := session.GetLoginAccount(c)
	if account != nil {
		logger.Infof("%s logged out successfully", account.Email)
	}
	session.ClearSession(c)
	if err := sessions.Default(c).Save(); err != nil {
		logger.Warning("Unable to save session after clearing:", err)
	}
	jsonMsg(c, "logout successful", nil)
}
