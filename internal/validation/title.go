// Package validation checks pull-request titles against the squash-merge
// title policy.
//
// A title passes when it starts with one or more recognized prefix codes
// (issue number, NOJIRA, TOGGLE, a Dependabot code such as DWEB, or G4P),
// each terminated by whitespace, and the effective title stays within the
// policy's character budget. The effective title is what GitHub uses as the
// squash commit subject: the PR title plus a " (#<number>)" suffix when the
// PR number is known. Lengths count Unicode code points, so æ, ø and å each
// count as one character.
package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/navikt/tittelsjekk/internal/policy"
)

// Severity values for a Message.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeveritySuccess = "success"
)

// Message is a single finding about a title. Text is the bare message in the
// language shown to users; markers and colors are applied by the caller.
type Message struct {
	Severity string `json:"severity"`
	Text     string `json:"text"`
}

// Result is the outcome of validating one title.
type Result struct {
	Valid          bool      `json:"valid"`
	Length         int       `json:"length"`
	MaxLength      int       `json:"max_length"`
	EffectiveTitle string    `json:"effective_title"`
	Messages       []Message `json:"messages"`
}

// Validate checks title against pol. prNumber is the pull request number
// when known, nil otherwise; GitHub appends " (#<number>)" to the squash
// commit subject, so a known number shrinks the budget left for the title
// itself.
//
// Policy violations are reported through Result.Messages, never as an error:
// errors come first (prefix before length), then warnings, and a clean title
// gets a single success message. Valid is true exactly when no error message
// was produced; warnings alone do not fail a title. The returned error is
// reserved for unusable input such as a negative PR number.
func Validate(pol policy.Policy, title string, prNumber *int) (Result, error) {
	if prNumber != nil && *prNumber < 0 {
		return Result{}, fmt.Errorf("invalid PR number %d (must be non-negative)", *prNumber)
	}

	var errs, warns []string

	if !pol.PrefixPattern().MatchString(title) {
		errs = append(errs, prefixError(pol, title))
	}

	effective := title
	suffixLen := 0
	if prNumber != nil {
		suffix := fmt.Sprintf(" (#%d)", *prNumber)
		effective = title + suffix
		suffixLen = utf8.RuneCountInString(suffix)
	}

	length := utf8.RuneCountInString(effective)
	switch {
	case length > pol.MaxLength:
		over := length - pol.MaxLength
		budget := pol.MaxLength - suffixLen
		errs = append(errs, fmt.Sprintf(
			"Tittel er %d tegn, maks er %d (over med %d).\n"+
				"  Nåværende: %s\n"+
				"  Tips: Forkort til maks %d tegn",
			length, pol.MaxLength, over, effective, budget))
	case length > pol.MaxLength-pol.WarnMargin:
		warns = append(warns, fmt.Sprintf("Tittel er %d tegn, nær grensen på %d.", length, pol.MaxLength))
	}

	result := Result{
		Valid:          len(errs) == 0,
		Length:         length,
		MaxLength:      pol.MaxLength,
		EffectiveTitle: effective,
	}
	for _, text := range errs {
		result.Messages = append(result.Messages, Message{Severity: SeverityError, Text: text})
	}
	for _, text := range warns {
		result.Messages = append(result.Messages, Message{Severity: SeverityWarning, Text: text})
	}
	if len(result.Messages) == 0 {
		result.Messages = append(result.Messages, Message{
			Severity: SeveritySuccess,
			Text:     fmt.Sprintf("Tittel OK (%d tegn)", length),
		})
	}
	return result, nil
}

// prefixError explains the prefix grammar with the policy's own codes.
func prefixError(pol policy.Policy, title string) string {
	var b strings.Builder
	b.WriteString("Tittel må starte med en eller flere koder:\n")
	b.WriteString("  - Jira-nummer (f.eks. 1234)\n")
	b.WriteString("  - NOJIRA, TOGGLE, DWEB, DAPI, G4P, etc.\n")
	if len(pol.ExtraCodes) > 0 {
		b.WriteString("  - Egne koder: " + strings.Join(pol.ExtraCodes, ", ") + "\n")
	}
	b.WriteString("  Eksempler: '1234 Beskrivelse', '1234 TOGGLE Beskrivelse'\n")
	b.WriteString("  Nåværende: " + title)
	return b.String()
}
