package service

import (
	"io"

	"github.com/placementkit/readiness-panel/logger"
	"github.com/placementkit/readiness-panel/scoring"
	"github.com/placementkit/readiness-panel/util/pdftext"
)

// ResumeService runs the resume scoring pipeline: extract text from an
// uploaded PDF, count keyword matches and persist the capped score.
type ResumeService struct {
	accountService AccountService
	settingService SettingService
}

// ScoreResume extracts text from the uploaded resume and updates the
// account's resume score. On extraction failure the stored score is left
// untouched and the error is returned.
func (s *ResumeService) ScoreResume(accountId int, resume io.ReaderAt, size int64) (int, error) {
	text, err := pdftext.Extract(resume, size)
	if err != nil {
		return 0, err
	}

	keywords, err := s.settingService.GetResumeKeywords()
	if err != nil {
		return 0, err
	}
	multiplier, err := s.settingService.GetResumeMultiplier()
	if err != nil {
		return 0, err
	}

	matches := scoring.CountKeywords(text, keywords)
	score := scoring.ResumeScore(matches, multiplier)

	if err := s.accountService.UpdateResumeScore(accountId, score); err != nil {
		return 0, err
	}
	logger.Infof("scored resume for account %d: %d keyword matches, score %d", accountId, matches, score)
	return score, nil
}
