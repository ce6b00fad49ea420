// Package entity defines data structures used by the web layer of the readiness panel.
package entity

import (
	"math"
	"net"
	"strings"
	"time"

	"github.com/placementkit/readiness-panel/util/common"
)

// Msg represents a standard API response with success status, message text,
// and optional data object.
type Msg struct {
	Success bool   `json:"success"`
	Msg     string `json:"msg"`
	Obj     any    `json:"obj"`
}

// AllSetting contains all runtime configuration settings for the panel.
type AllSetting struct {
	WebListen        string `json:"webListen" form:"webListen"`               // Web server listen IP address
	WebPort          int    `json:"webPort" form:"webPort"`                   // Web server port number
	WebBasePath      string `json:"webBasePath" form:"webBasePath"`           // Base path for panel URLs
	SessionMaxAge    int    `json:"sessionMaxAge" form:"sessionMaxAge"`       // Session maximum age in minutes
	TimeLocation     string `json:"timeLocation" form:"timeLocation"`         // Time zone location
	ResumeKeywords   string `json:"resumeKeywords" form:"resumeKeywords"`     // Comma-separated resume keywords
	ResumeMultiplier int    `json:"resumeMultiplier" form:"resumeMultiplier"` // Points per keyword match
}

// CheckValid validates the settings, checking the listen address, port, base
// path and time location.
func (s *AllSetting) CheckValid() error {
	if s.WebListen != "" {
		ip := net.ParseIP(s.WebListen)
		if ip == nil {
			return common.NewError("web listen is not valid ip:", s.WebListen)
		}
	}

	if s.WebPort <= 0 || s.WebPort > math.MaxUint16 {
		return common.NewError("web port is not a valid port:", s.WebPort)
	}

	if s.SessionMaxAge <= 0 {
		return common.NewError("session max age must be positive:", s.SessionMaxAge)
	}

	if s.ResumeMultiplier <= 0 {
		return common.NewError("resume multiplier must be positive:", s.ResumeMultiplier)
	}

	if !strings.HasPrefix(s.WebBasePath, "/") {
		s.WebBasePath = "/" + s.WebBasePath
	}
	if !strings.HasSuffix(s.WebBasePath, "/") {
		s.WebBasePath += "/"
	}

	_, err := time.LoadLocation(s.TimeLocation)
	if err != nil {
		return common.NewError("time location not exist:", s.TimeLocation)
	}

	return nil
}
