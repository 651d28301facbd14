// Package tittelsjekk provides a minimal public API for checking pull-request
// titles against the squash-merge title policy from other Go tooling.
//
// Most users want the CLI in cmd/tittelsjekk. This package exports only the
// validator and its policy type, for CI jobs and bots that embed the check
// programmatically.
package tittelsjekk

import (
	"github.com/navikt/tittelsjekk/internal/policy"
	"github.com/navikt/tittelsjekk/internal/validation"
)

// Core types for working with validation outcomes
type (
	Policy  = policy.Policy
	Result  = validation.Result
	Message = validation.Message
)

// Severity constants for Message
const (
	SeverityError   = validation.SeverityError
	SeverityWarning = validation.SeverityWarning
	SeveritySuccess = validation.SeveritySuccess
)

// DefaultPolicy returns the stock policy: 72-character budget, warning
// inside the last 10 characters, built-in prefix codes only.
func DefaultPolicy() Policy {
	return policy.Default()
}

// LoadPolicy reads a YAML policy file and applies it on top of the defaults.
func LoadPolicy(path string) (Policy, error) {
	return policy.Load(path)
}

// Validate checks title against pol. prNumber is the pull request number
// when known, nil otherwise. Policy violations come back as messages on the
// Result; the error is reserved for unusable input such as a negative PR
// number.
func Validate(pol Policy, title string, prNumber *int) (Result, error) {
	return validation.Validate(pol, title, prNumber)
}
