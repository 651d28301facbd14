// Package policy defines the squash-merge title rules: which prefix codes a
// pull-request title may start with and how long the effective title may be.
package policy

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/viper"
)

const (
	// DefaultMaxLength is the character budget for the effective title.
	// GitHub truncates squash commit subjects around this point and git
	// tooling conventionally wraps at 72 columns.
	DefaultMaxLength = 72

	// DefaultWarnMargin is how close to the budget a title can get before
	// a warning is issued.
	DefaultWarnMargin = 10
)

// codePattern constrains user-supplied prefix codes: uppercase tokens,
// digits allowed after the first letter (TOGGLE, G4P, DWEB).
var codePattern = regexp.MustCompile(`^[A-Z][A-Z0-9]*$`)

// Policy is the rule set a title is validated against. The zero value is
// not usable; start from Default and adjust.
type Policy struct {
	// MaxLength is the maximum number of characters (Unicode code points)
	// allowed in the effective title, suffix included.
	MaxLength int `yaml:"max-length" json:"max_length"`

	// WarnMargin is the width of the warning band below MaxLength. A title
	// longer than MaxLength-WarnMargin but still within MaxLength passes
	// with a warning.
	WarnMargin int `yaml:"warn-margin" json:"warn_margin"`

	// ExtraCodes are additional literal prefix codes accepted on top of
	// the built-in ones (issue numbers, NOJIRA, TOGGLE, G4P and the
	// D[A-Z]+ family).
	ExtraCodes []string `yaml:"extra-codes,omitempty" json:"extra_codes,omitempty"`
}

// Default returns the stock policy: 72-character budget, warning inside the
// last 10 characters, built-in prefix codes only.
func Default() Policy {
	return Policy{
		MaxLength:  DefaultMaxLength,
		WarnMargin: DefaultWarnMargin,
	}
}

// PrefixPattern compiles the prefix grammar for this policy. A title matches
// when it starts with one or more recognized tokens, each terminated by
// whitespace: an issue number (digits only), NOJIRA, TOGGLE, a Dependabot
// group code such as DWEB or DAPI, G4P, or one of ExtraCodes. Matching is
// case-sensitive.
func (p Policy) PrefixPattern() *regexp.Regexp {
	alts := []string{`\d+`, "NOJIRA", "TOGGLE", `D[A-Z]+`, "G4P"}
	for _, code := range p.ExtraCodes {
		alts = append(alts, regexp.QuoteMeta(code))
	}
	return regexp.MustCompile(`^((` + strings.Join(alts, "|") + `)\s+)+`)
}

// Validate checks that the policy values make sense together.
func (p Policy) Validate() error {
	if p.MaxLength <= 0 {
		return fmt.Errorf("max-length must be positive (got %d)", p.MaxLength)
	}
	if p.WarnMargin < 0 || p.WarnMargin >= p.MaxLength {
		return fmt.Errorf("warn-margin must be between 0 and max-length-1 (got %d)", p.WarnMargin)
	}
	for _, code := range p.ExtraCodes {
		if !codePattern.MatchString(code) {
			return fmt.Errorf("invalid prefix code %q (expected an uppercase token like TOGGLE or G4P)", code)
		}
	}
	return nil
}

// Load reads a YAML policy file and applies it on top of the defaults, so a
// file only needs to name the keys it changes. Loading happens only when the
// user asks for it; a plain invocation never touches the filesystem.
func Load(path string) (Policy, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return Policy{}, fmt.Errorf("failed to read policy file %s: %w", path, err)
	}

	p := Default()
	if v.IsSet("max-length") {
		p.MaxLength = v.GetInt("max-length")
	}
	if v.IsSet("warn-margin") {
		p.WarnMargin = v.GetInt("warn-margin")
	}
	if v.IsSet("extra-codes") {
		p.ExtraCodes = v.GetStringSlice("extra-codes")
	}

	if err := p.Validate(); err != nil {
		return Policy{}, fmt.Errorf("invalid policy in %s: %w", path, err)
	}
	return p, nil
}
