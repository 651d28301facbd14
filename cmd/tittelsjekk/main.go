package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/navikt/tittelsjekk/internal/debug"
	"github.com/navikt/tittelsjekk/internal/policy"
	"github.com/navikt/tittelsjekk/internal/ui"
	"github.com/navikt/tittelsjekk/internal/validation"
)

var (
	jsonOutput  bool
	verboseFlag bool
	quietFlag   bool
	noColor     bool

	configPath    string
	maxLengthFlag int
	warnMargin    int
	extraCodes    []string
)

var rootCmd = &cobra.Command{
	Use:   "tittelsjekk <tittel> [pr-nummer]",
	Short: "Sjekk at en PR-tittel følger squash merge-reglene",
	Long: `Sjekk at en pull request-tittel følger reglene for squash merge:
tittelen må starte med en eller flere koder (Jira-nummer, NOJIRA, TOGGLE,
DWEB/DAPI, G4P) og holde seg innenfor 72 tegn etter at GitHub har lagt på
" (#<pr-nummer>)".

Oppgis pr-nummer regnes suffikset med i lengden. Advarsler (tittel nær
grensen) stopper ikke valideringen; bare feil gir exit-kode 1.

Examples:
  tittelsjekk "1234 Fix login bug"
  tittelsjekk "1234 TOGGLE Skru på ny meny" 456
  tittelsjekk "NOJIRA Rett skrivefeil i README"
  tittelsjekk --json "DWEB Bump dependency to v2" 99`,
	Args: cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			_ = cmd.Help()
			os.Exit(1)
		}

		title := args[0]
		var prNumber *int
		if len(args) == 2 {
			n, err := strconv.Atoi(strings.TrimSpace(args[1]))
			if err != nil || n < 0 {
				if jsonOutput {
					outputJSONError(fmt.Errorf("invalid PR number %q (expected a non-negative integer)", args[1]), "usage")
				}
				FatalErrorWithHint(
					fmt.Sprintf("invalid PR number %q (expected a non-negative integer)", args[1]),
					"Usage: tittelsjekk <tittel> [pr-nummer]")
			}
			prNumber = &n
		}

		pol := activePolicy(cmd)

		result, err := validation.Validate(pol, title, prNumber)
		if err != nil {
			FatalError("%v", err)
		}

		if jsonOutput {
			outputJSON(result)
		} else {
			printResult(result)
		}

		if !result.Valid {
			os.Exit(1)
		}
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		debug.SetVerbose(verboseFlag)
		debug.SetQuiet(quietFlag)
		if noColor || !ui.ShouldUseColor() {
			ui.DisableColor()
		}
	},
}

// activePolicy resolves the policy for this invocation: compiled-in defaults,
// then the --config file if one was given, then explicit flags on top. A
// plain invocation never reads a file.
func activePolicy(cmd *cobra.Command) policy.Policy {
	pol := policy.Default()

	if configPath != "" {
		loaded, err := policy.Load(configPath)
		if err != nil {
			FatalError("%v", err)
		}
		pol = loaded
		debug.Logf("loaded policy from %s\n", configPath)
	}

	if cmd.Flags().Changed("max-length") {
		pol.MaxLength = maxLengthFlag
	}
	if cmd.Flags().Changed("warn-margin") {
		pol.WarnMargin = warnMargin
	}
	pol.ExtraCodes = append(pol.ExtraCodes, extraCodes...)

	if err := pol.Validate(); err != nil {
		FatalError("%v", err)
	}
	return pol
}

// printResult renders the validator's messages in their fixed order, one
// marker-prefixed message per finding. The first line carries the marker and
// status color, follow-up detail lines are muted. Markers are always
// printed; only the coloring is optional. In quiet mode only errors are
// printed.
func printResult(result validation.Result) {
	for _, msg := range result.Messages {
		if debug.IsQuiet() && msg.Severity != validation.SeverityError {
			continue
		}

		lines := strings.Split(msg.Text, "\n")
		switch msg.Severity {
		case validation.SeverityError:
			fmt.Println(ui.RenderFail(ui.MarkerFail + " " + lines[0]))
		case validation.SeverityWarning:
			fmt.Println(ui.RenderWarn(ui.MarkerWarn + " " + lines[0]))
		case validation.SeveritySuccess:
			fmt.Println(ui.RenderPass(ui.MarkerPass + " " + lines[0]))
		}
		for _, line := range lines[1:] {
			fmt.Println(ui.RenderMuted(line))
		}
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose/debug output")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "Suppress non-essential output (errors only)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Policy file (YAML); defaults apply when omitted")
	rootCmd.PersistentFlags().IntVar(&maxLengthFlag, "max-length", policy.DefaultMaxLength, "Character budget for the effective title")
	rootCmd.PersistentFlags().IntVar(&warnMargin, "warn-margin", policy.DefaultWarnMargin, "Warn when within this many characters of the budget")
	rootCmd.PersistentFlags().StringArrayVar(&extraCodes, "code", nil, "Extra prefix code to accept (repeatable)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
