package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sbml2biopax/internal/core/domain"
	"github.com/custodia-labs/sbml2biopax/internal/core/services"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure output and watch settings.

Settings are stored in config.toml in the config directory. Environment
variables (SBML2BIOPAX_INDENT, SBML2BIOPAX_LOCATION_STYLE,
SBML2BIOPAX_XML_DECLARATION, SBML2BIOPAX_WATCH_DEBOUNCE_MS) override the file.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a single setting",
	Long: `Set a single setting and save it to the config file.

Keys:
  output.indent          - spaces per nesting level (0-8)
  output.location_style  - mixed or fragment
  output.xml_declaration - true or false
  watch.debounce_ms      - milliseconds to wait after a change`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Run an interactive wizard to configure all settings step by step.`,
	RunE:  runSettingsWizard,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Output]")
	cmd.Printf("  Indent: %d\n", settings.Output.Indent)
	cmd.Printf("  Location style: %s\n", settings.Output.LocationStyle.Description())
	cmd.Printf("  XML declaration: %s\n", yesNo(settings.Output.XMLDeclaration))
	cmd.Println()

	cmd.Println("[Watch]")
	cmd.Printf("  Debounce: %dms\n", settings.Watch.DebounceMillis)
	cmd.Println()

	if configPath != "" {
		cmd.Printf("Config file: %s\n", configPath)
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to set %s: %w", args[0], err)
	}

	cmd.Printf("Set %s = %s\n", args[0], args[1])
	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	current, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("sbml2biopax Settings Wizard")
	cmd.Println("===========================")
	cmd.Println()

	reader := bufio.NewReader(cmd.InOrStdin())

	// Step 1: Indent
	cmd.Printf("Step 1: Indent width (0-8) [%d]: ", current.Output.Indent)
	indent := readLine(reader)
	if indent == "" {
		indent = strconv.Itoa(current.Output.Indent)
	}
	if err := settingsService.Set(services.KeyIndent, indent); err != nil {
		return fmt.Errorf("failed to set indent: %w", err)
	}

	// Step 2: Location style
	cmd.Println("\nStep 2: Select Location Style")
	cmd.Println("-----------------------------")
	choices := []domain.LocationStyle{domain.LocationStyleMixed, domain.LocationStyleFragment}
	defaultIdx := 1
	for i, s := range choices {
		cmd.Printf("  %d. %s\n", i+1, s.Description())
		if s == current.Output.LocationStyle {
			defaultIdx = i + 1
		}
	}
	cmd.Printf("\nEnter choice [%d]: ", defaultIdx)
	idx := parseChoice(readLine(reader), len(choices), defaultIdx)
	if err := settingsService.Set(services.KeyLocationStyle, choices[idx-1].String()); err != nil {
		return fmt.Errorf("failed to set location style: %w", err)
	}

	// Step 3: XML declaration
	cmd.Printf("\nStep 3: Write XML declaration? (y/n) [%s]: ", yesNo(current.Output.XMLDeclaration)[:1])
	declaration := parseYesNo(readLine(reader), current.Output.XMLDeclaration)
	if err := settingsService.Set(services.KeyXMLDeclaration, strconv.FormatBool(declaration)); err != nil {
		return fmt.Errorf("failed to set xml declaration: %w", err)
	}

	// Step 4: Watch debounce
	cmd.Printf("\nStep 4: Watch debounce in milliseconds [%d]: ", current.Watch.DebounceMillis)
	debounce := readLine(reader)
	if debounce == "" {
		debounce = strconv.Itoa(current.Watch.DebounceMillis)
	}
	if err := settingsService.Set(services.KeyWatchDebounce, debounce); err != nil {
		return fmt.Errorf("failed to set watch debounce: %w", err)
	}

	cmd.Println()
	cmd.Println("Configuration Complete!")
	cmd.Println("=======================")
	cmd.Println("All settings are valid and saved.")
	return nil
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

func parseYesNo(input string, defaultVal bool) bool {
	switch strings.ToLower(input) {
	case "y", "yes", "true":
		return true
	case "n", "no", "false":
		return false
	default:
		return defaultVal
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
