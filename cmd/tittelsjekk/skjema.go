package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/navikt/tittelsjekk/internal/debug"
	"github.com/navikt/tittelsjekk/internal/validation"
)

var skjemaCmd = &cobra.Command{
	Use:   "skjema",
	Short: "Sjekk en tittel via et interaktivt skjema",
	Long: `Sjekk en PR-tittel via et interaktivt terminalskjema, uten å
måtte quote tittelen på kommandolinjen.

The form uses keyboard navigation:
  - Tab/Shift+Tab: Move between fields
  - Enter: Submit the form (on the last field or submit button)
  - Ctrl+C: Cancel and exit`,
	Run: func(cmd *cobra.Command, args []string) {
		runSkjema(cmd)
	},
}

func runSkjema(cmd *cobra.Command) {
	var (
		title     string
		prNumStr  string
		confirmed bool
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("PR-tittel").
				Description("Tittelen slik den står på pull requesten").
				Placeholder("f.eks. 1234 Fix login bug").
				Value(&title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("tittel er påkrevd")
					}
					return nil
				}),

			huh.NewInput().
				Title("PR-nummer").
				Description("Nummeret GitHub legger på ved squash merge (valgfritt)").
				Placeholder("f.eks. 456").
				Value(&prNumStr).
				Validate(func(s string) error {
					s = strings.TrimSpace(s)
					if s == "" {
						return nil
					}
					if n, err := strconv.Atoi(s); err != nil || n < 0 {
						return fmt.Errorf("må være et ikke-negativt heltall")
					}
					return nil
				}),

			huh.NewConfirm().
				Title("Sjekk tittelen?").
				Affirmative("Sjekk").
				Negative("Avbryt").
				Value(&confirmed),
		),
	).WithTheme(huh.ThemeDracula())

	if err := form.Run(); err != nil {
		if err == huh.ErrUserAborted {
			fmt.Fprintln(os.Stderr, "Sjekk avbrutt.")
			os.Exit(0)
		}
		FatalError("form error: %v", err)
	}

	if !confirmed {
		fmt.Fprintln(os.Stderr, "Sjekk avbrutt.")
		os.Exit(0)
	}

	var prNumber *int
	if s := strings.TrimSpace(prNumStr); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			FatalError("invalid PR number %q", s)
		}
		prNumber = &n
	}

	result, err := validation.Validate(activePolicy(cmd), title, prNumber)
	if err != nil {
		FatalError("%v", err)
	}

	if jsonOutput {
		outputJSON(result)
	} else {
		printResult(result)
		if result.Valid && !debug.IsQuiet() {
			green := color.New(color.FgGreen).SprintFunc()
			fmt.Printf("\n%s\n", green(fmt.Sprintf("Tittelen kan brukes som squash commit-melding (%d av %d tegn).",
				result.Length, result.MaxLength)))
		}
	}

	if !result.Valid {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(skjemaCmd)
}
