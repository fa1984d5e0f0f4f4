package mock

import (
	"regexp"
	"time"
)

// Path match modes
const (
	PathExact  = "exact"
	PathPrefix = "prefix"
	PathRegex  = "regex"
)

// Config represents the fixture backend configuration
type Config struct {
	Port    int     `json:"port" yaml:"port"`       // Server port (default: 5000)
	Host    string  `json:"host" yaml:"host"`       // Server host (default: 127.0.0.1)
	Routes  []Route `json:"routes" yaml:"routes"`   // Route definitions, first match wins
	Logging bool    `json:"logging" yaml:"logging"` // Log each request
}

// Route is one canned response
type Route struct {
	Name         string            `json:"name,omitempty" yaml:"name,omitempty"`
	Method       string            `json:"method" yaml:"method"`
	Path         string            `json:"path" yaml:"path"`
	PathType     string            `json:"pathType,omitempty" yaml:"pathType,omitempty"`         // exact, prefix, regex (default: exact)
	BodyContains string            `json:"bodyContains,omitempty" yaml:"bodyContains,omitempty"` // case-insensitive match on the raw request body
	Status       int               `json:"status" yaml:"status"`
	Headers      map[string]string `json:"headers,omitempty" yaml:"headers,omitempty"`
	Body         string            `json:"body,omitempty" yaml:"body,omitempty"`
	BodyFile     string            `json:"bodyFile,omitempty" yaml:"bodyFile,omitempty"`
	Delay        int               `json:"delay,omitempty" yaml:"delay,omitempty"` // milliseconds

	pathRe *regexp.Regexp
}

// RequestLog represents a served request
type RequestLog struct {
	Timestamp   time.Time     `json:"timestamp"`
	Method      string        `json:"method"`
	Path        string        `json:"path"`
	Body        string        `json:"body"`
	MatchedRule string        `json:"matchedRule"`
	Status      int           `json:"status"`
	Duration    time.Duration `json:"duration"`
}
