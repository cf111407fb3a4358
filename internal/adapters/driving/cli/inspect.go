package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/sbml2biopax/internal/core/domain"
)

// Inspect output formats.
const (
	formatText = "text"
	formatYAML = "yaml"
	formatJSON = "json"
)

var inspectFormat string

var inspectCmd = &cobra.Command{
	Use:   "inspect <input>",
	Short: "Show the model extracted from a CellDesigner file",
	Long: `Parse a CellDesigner SBML file and print the extracted tables without
writing any BioPAX output.

Formats:
  text - table counts and a reaction summary
  yaml - the full model as YAML
  json - the full model as JSON`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().StringVarP(&inspectFormat, "format", "f", formatText, "Output format (text, yaml, json)")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	if conversionService == nil {
		return errors.New("conversion service not configured")
	}

	switch inspectFormat {
	case formatText, formatYAML, formatJSON:
	default:
		return fmt.Errorf("%w: unknown format %q (use text, yaml or json)", domain.ErrInvalidInput, inspectFormat)
	}

	model, err := conversionService.Inspect(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("inspect failed: %w", err)
	}

	switch inspectFormat {
	case formatYAML:
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(model); err != nil {
			return fmt.Errorf("failed to encode model: %w", err)
		}
		return enc.Close()
	case formatJSON:
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(model); err != nil {
			return fmt.Errorf("failed to encode model: %w", err)
		}
		return nil
	default:
		printModel(cmd, args[0], model)
		return nil
	}
}

func printModel(cmd *cobra.Command, path string, model *domain.Model) {
	st := newStyles(cmd.OutOrStdout())
	stats := model.Stats()

	cmd.Println(st.title.Render(path))
	cmd.Printf("  %s %s\n", st.label.Render("Compartments:"), countNoun(stats.Compartments, "compartment"))
	cmd.Printf("  %s %s, %s\n", st.label.Render("Species:"),
		countNoun(stats.Species, "species"), countNoun(stats.SpeciesAliases, "alias"))
	cmd.Printf("  %s %s, %s\n", st.label.Render("Entities:"),
		countNoun(stats.Proteins, "protein"), countNoun(stats.SimpleMolecules, "simple molecule"))
	cmd.Printf("  %s %s\n", st.label.Render("Reactions:"), countNoun(stats.Reactions, "reaction"))

	for pair := model.Reactions.Oldest(); pair != nil; pair = pair.Next() {
		r := pair.Value
		cmd.Printf("    %s %s %s: %s -> %s\n", r.ID, r.ReactionType, r.Direction(),
			participantList(r.Reactants.Len(), r.FirstReactant),
			participantList(r.Products.Len(), r.FirstProduct))
	}
}

// participantList names the first participant and how many follow it.
func participantList(n int, first func() (domain.Participant, bool)) string {
	p, ok := first()
	if !ok {
		return "(none)"
	}
	var b strings.Builder
	b.WriteString(p.SpeciesID)
	if n > 1 {
		fmt.Fprintf(&b, " (+%d)", n-1)
	}
	return b.String()
}
