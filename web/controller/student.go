package controller

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/placementkit/readiness-panel/config"
	"github.com/placementkit/readiness-panel/logger"
	"github.com/placementkit/readiness-panel/scoring"
	"github.com/placementkit/readiness-panel/web/service"
	"github.com/placementkit/readiness-panel/web/session"
)

// SkillForm carries a student's manually entered skill score.
type SkillForm struct {
	SkillScore int `json:"skillScore" form:"skillScore"`
}

// StudentController serves the dashboard, the metric endpoints, the skill
// update and the resume upload for the logged-in student.
type StudentController struct {
	BaseController

	accountService service.AccountService
	resumeService  service.ResumeService
}

// NewStudentController creates a new StudentController and initializes its routes.
func NewStudentController(g *gin.RouterGroup) *StudentController {
	a := &StudentController{}
	a.initRouter(g)
	return a
}

func (a *StudentController) initRouter(g *gin.RouterGroup) {
	g.Use(a.checkLogin)

	g.GET("/dashboard", a.dashboard)
	g.GET("/metrics", a.metrics)
	g.GET("/readiness", a.readiness)
	g.GET("/skills", a.skills)
	g.GET("/resume", a.resume)
	g.GET("/interview", a.interview)

	g.POST("/skills", a.updateSkills)
	g.POST("/resume", a.uploadResume)
}

// getScores loads the raw scores of the session account and derives the
// computed ones.
func (a *StudentController) getScores(c *gin.Context) (skill, resume, interview, readiness int, err error) {
	account := session.GetLoginAccount(c)
	stored, err := a.accountService.GetAccount(account.Id)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	interview, readiness = scoring.Compute(stored.SkillScore, stored.ResumeScore)
	return stored.SkillScore, stored.ResumeScore, interview, readiness, nil
}

func (a *StudentController) dashboard(c *gin.Context) {
	skill, resume, interview, readiness, err := a.getScores(c)
	if err != nil {
		jsonMsg(c, "get scores", err)
		return
	}
	jsonObj(c, gin.H{
		"skill":     skill,
		"resume":    resume,
		"interview": interview,
		"readiness": readiness,
	}, nil)
}

// metrics returns the same four integers as the dashboard. Kept as a separate
// route so machines do not depend on the dashboard payload shape.
func (a *StudentController) metrics(c *gin.Context) {
	skill, resume, interview, readiness, err := a.getScores(c)
	if err != nil {
		jsonMsg(c, "get scores", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"skill":     skill,
		"resume":    resume,
		"interview": interview,
		"readiness": readiness,
	})
}

func (a *StudentController) readiness(c *gin.Context) {
	_, _, _, readiness, err := a.getScores(c)
	if err != nil {
		jsonMsg(c, "get scores", err)
		return
	}
	jsonObj(c, gin.H{"readiness": readiness}, nil)
}

func (a *StudentController) skills(c *gin.Context) {
	skill, _, _, _, err := a.getScores(c)
	if err != nil {
		jsonMsg(c, "get scores", err)
		return
	}
	jsonObj(c, gin.H{"skill": skill}, nil)
}

func (a *StudentController) resume(c *gin.Context) {
	_, resume, _, _, err := a.getScores(c)
	if err != nil {
		jsonMsg(c, "get scores", err)
		return
	}
	jsonObj(c, gin.H{"resume": resume}, nil)
}

func (a *StudentController) interview(c *gin.Context) {
	_, _, interview, _, err := a.getScores(c)
	if err != nil {
		jsonMsg(c, "get scores", err)
		return
	}
	jsonObj(c, gin.H{"interview": interview}, nil)
}

// updateSkills stores a caller-supplied skill score after range validation.
func (a *StudentController) updateSkills(c *gin.Context) {
	var form SkillForm
	if err := c.ShouldBind(&form); err != nil {
		pureJsonMsg(c, http.StatusOK, false, "invalid form data")
		return
	}

	account := session.GetLoginAccount(c)
	err := a.accountService.UpdateSkillScore(account.Id, form.SkillScore)
	if errors.Is(err, service.ErrInvalidScore) {
		pureJsonMsg(c, http.StatusOK, false, "skill score must be between 0 and 100")
		return
	} else if err != nil {
		jsonMsg(c, "update skill score", err)
		return
	}
	jsonMsg(c, "skill score updated", nil)
}

// uploadResume saves the uploaded PDF under the upload folder and runs the
// scoring pipeline against it.
func (a *StudentController) uploadResume(c *gin.Context) {
	file, err := c.FormFile("resume")
	if err != nil {
		pureJsonMsg(c, http.StatusOK, false, "resume file is required")
		return
	}

	uploadDir := config.GetUploadFolder()
	if err := os.MkdirAll(uploadDir, 0o750); err != nil {
		jsonMsg(c, "save resume", err)
		return
	}

	path := filepath.Join(uploadDir, uuid.NewString()+".pdf")
	if err := c.SaveUploadedFile(file, path); err != nil {
		jsonMsg(c, "save resume", err)
		return
	}

	f, err := os.Open(path)
	if err != nil {
		jsonMsg(c, "open resume", err)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		jsonMsg(c, "open resume", err)
		return
	}

	account := session.GetLoginAccount(c)
	score, err := a.resumeService.ScoreResume(account.Id, f, info.Size())
	if err != nil {
		logger.Warningf("resume scoring failed for account %d: %v", account.Id, err)
		jsonMsg(c, "score resume", err)
		return
	}
	jsonMsgObj(c, "resume scored", gin.H{"resume": score}, nil)
}
