package view

import "fmt"

// Policy decides which of several in-flight responses owns the result region
type Policy string

const (
	// PolicyLatest shows only the response to the most recent submit
	PolicyLatest Policy = "latest"
	// PolicyLastSettled shows whichever response settles last, even if it
	// belongs to an older submit
	PolicyLastSettled Policy = "last-settled"
)

// ParsePolicy validates a policy name from configuration
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case PolicyLatest, PolicyLastSettled:
		return Policy(s), nil
	case "":
		return PolicyLatest, nil
	}
	return "", fmt.Errorf("unknown race policy %q (use %q or %q)", s, PolicyLatest, PolicyLastSettled)
}

type options struct {
	policy Policy
}

type Option func(*options)

// WithPolicy sets the stale response policy
func WithPolicy(p Policy) Option {
	return func(o *options) { o.policy = p }
}

// LastSettledWins lets a late response to an older submit overwrite a newer one
func LastSettledWins() Option {
	return WithPolicy(PolicyLastSettled)
}
