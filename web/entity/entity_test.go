package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validSetting() AllSetting {
	return AllSetting{
		WebListen:        "",
		WebPort:          8080,
		WebBasePath:      "/",
		SessionMaxAge:    60,
		TimeLocation:     "Local",
		ResumeKeywords:   "python,sql",
		ResumeMultiplier: 15,
	}
}

func TestCheckValid(t *testing.T) {
	s := validSetting()
	assert.NoError(t, s.CheckValid())
}

func TestCheckValidRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AllSetting)
	}{
		{"bad listen ip", func(s *AllSetting) { s.WebListen = "not-an-ip" }},
		{"port zero", func(s *AllSetting) { s.WebPort = 0 }},
		{"port too large", func(s *AllSetting) { s.WebPort = 70000 }},
		{"session max age zero", func(s *AllSetting) { s.SessionMaxAge = 0 }},
		{"multiplier zero", func(s *AllSetting) { s.ResumeMultiplier = 0 }},
		{"unknown time location", func(s *AllSetting) { s.TimeLocation = "Nowhere/Nothing" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSetting()
			tt.mutate(&s)
			assert.Error(t, s.CheckValid())
		})
	}
}

func TestCheckValidNormalizesBasePath(t *testing.T) {
	s := validSetting()
	s.WebBasePath = "panel"
	assert.NoError(t, s.CheckValid())
	assert.Equal(t, "/panel/", s.WebBasePath)
}
