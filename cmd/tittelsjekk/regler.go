package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/navikt/tittelsjekk/internal/policy"
	"github.com/navikt/tittelsjekk/internal/ui"
)

var reglerYAML bool

var reglerCmd = &cobra.Command{
	Use:   "regler",
	Short: "Vis reglene tittelen sjekkes mot",
	Long: `Vis de aktive reglene for PR-titler: godkjente prefikskoder,
tegnbudsjett og advarselsgrense.

Examples:
  tittelsjekk regler                      # Vis reglene som formatert tekst
  tittelsjekk regler --yaml > policy.yaml # Lag en policyfil å redigere
  tittelsjekk regler --config policy.yaml # Vis reglene fra en policyfil`,
	Run: func(cmd *cobra.Command, args []string) {
		pol := activePolicy(cmd)

		if reglerYAML {
			data, err := yaml.Marshal(pol)
			if err != nil {
				FatalError("failed to encode policy: %v", err)
			}
			fmt.Print(string(data))
			return
		}

		if jsonOutput {
			outputJSON(pol)
			return
		}

		fmt.Print(ui.RenderMarkdown(policyMarkdown(pol)))
	},
}

func init() {
	reglerCmd.Flags().BoolVar(&reglerYAML, "yaml", false, "Emit the policy as a YAML template")
	rootCmd.AddCommand(reglerCmd)
}

// policyMarkdown formats pol as the rules document shown to users.
func policyMarkdown(pol policy.Policy) string {
	var b strings.Builder
	b.WriteString("# Regler for PR-titler\n\n")
	b.WriteString("Tittelen må starte med en eller flere koder, hver etterfulgt av mellomrom:\n\n")
	b.WriteString("- Jira-nummer, f.eks. `1234`\n")
	b.WriteString("- `NOJIRA` — endring uten Jira-sak\n")
	b.WriteString("- `TOGGLE` — endring bak feature toggle\n")
	b.WriteString("- Dependabot-kode som `DWEB` eller `DAPI`\n")
	b.WriteString("- `G4P`\n")
	if len(pol.ExtraCodes) > 0 {
		for _, code := range pol.ExtraCodes {
			b.WriteString(fmt.Sprintf("- `%s` (egen kode)\n", code))
		}
	}
	b.WriteString("\nKodene kan kombineres, f.eks. `1234 TOGGLE Skru på ny meny`.\n\n")
	b.WriteString("## Lengde\n\n")
	b.WriteString(fmt.Sprintf(
		"Hele tittelen, inkludert `\" (#<pr-nummer>)\"` som GitHub legger på ved\n"+
			"squash merge, må være maks **%d tegn**. Fra %d tegn og oppover gis en\n"+
			"advarsel, men valideringen passerer.\n",
		pol.MaxLength, pol.MaxLength-pol.WarnMargin+1))
	return b.String()
}
