// Package model defines the database models for the readiness panel.
package model

import "strings"

// Account roles.
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// Default raw scores assigned at registration.
const (
	DefaultSkillScore  = 60
	DefaultResumeScore = 50
)

// Account is a registered panel user. Email is the identity key and is stored
// normalized; Password holds the bcrypt hash, never plaintext.
type Account struct {
	Id           int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Email        string `json:"email" gorm:"uniqueIndex;not null"`
	Password     string `json:"-" gorm:"not null"`
	Role         string `json:"role" gorm:"not null;default:student"`
	SkillScore   int    `json:"skillScore" gorm:"not null;default:60"`
	ResumeScore  int    `json:"resumeScore" gorm:"not null;default:50"`
	FailedLogins int    `json:"-" gorm:"not null;default:0"`
}

type Setting struct {
	Id    int    `json:"id" form:"id" gorm:"primaryKey;autoIncrement"`
	Key   string `json:"key" form:"key"`
	Value string `json:"value" form:"value"`
}

// NormalizeEmail trims surrounding whitespace and lower-cases an email so that
// lookups and the unique index agree on a single identity key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
