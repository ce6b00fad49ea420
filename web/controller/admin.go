package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/placementkit/readiness-panel/database/model"
	"github.com/placementkit/readiness-panel/logger"
	"github.com/placementkit/readiness-panel/web/entity"
	"github.com/placementkit/readiness-panel/web/middleware"
	"github.com/placementkit/readiness-panel/web/service"
)

// AccountDTO is the admin-facing account view; it never carries the password
// hash or the failed login counter.
type AccountDTO struct {
	Id          int    `json:"id"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	SkillScore  int    `json:"skillScore"`
	ResumeScore int    `json:"resumeScore"`
}

func toDTO(a *model.Account) AccountDTO {
	return AccountDTO{
		Id:          a.Id,
		Email:       a.Email,
		Role:        a.Role,
		SkillScore:  a.SkillScore,
		ResumeScore: a.ResumeScore,
	}
}

// AdminController serves the admin listing, recent logs and panel settings.
type AdminController struct {
	BaseController

	accountService service.AccountService
	settingService service.SettingService
}

// NewAdminController creates a new AdminController and initializes its routes.
func NewAdminController(g *gin.RouterGroup) *AdminController {
	a := &AdminController{}
	a.initRouter(g)
	return a
}

func (a *AdminController) initRouter(g *gin.RouterGroup) {
	g.Use(a.checkLogin, middleware.RequireRole(model.RoleAdmin))

	g.GET("/students", a.students)
	g.GET("/logs/:count", a.getLogs)
	g.GET("/setting", a.getSetting)
	g.POST("/setting", a.updateSetting)
}

func (a *AdminController) students(c *gin.Context) {
	accounts, err := a.accountService.ListAccountsByRole(model.RoleStudent)
	if err != nil {
		jsonMsg(c, "list students", err)
		return
	}
	out := make([]AccountDTO, 0, len(accounts))
	for i := range accounts {
		out = append(out, toDTO(&accounts[i]))
	}
	jsonObj(c, out, nil)
}

func (a *AdminController) getLogs(c *gin.Context) {
	count := c.Param("count")
	level := c.DefaultQuery("level", "INFO")
	logs := logger.GetLogs(atoiOr(count, 50), level)
	jsonObj(c, logs, nil)
}

func (a *AdminController) getSetting(c *gin.Context) {
	allSetting, err := a.settingService.GetAllSetting()
	if err != nil {
		jsonMsg(c, "get settings", err)
		return
	}
	jsonObj(c, allSetting, nil)
}

func (a *AdminController) updateSetting(c *gin.Context) {
	allSetting := &entity.AllSetting{}
	if err := c.ShouldBind(allSetting); err != nil {
		jsonMsg(c, "modify settings", err)
		return
	}
	err := a.settingService.UpdateAllSetting(allSetting)
	jsonMsg(c, "modify settings", err)
}
