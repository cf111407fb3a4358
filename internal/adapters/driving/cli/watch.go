package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sbml2biopax/internal/adapters/driving/tui"
	"github.com/custodia-labs/sbml2biopax/internal/core/domain"
)

var watchTUI bool

var watchCmd = &cobra.Command{
	Use:   "watch <input> <output>",
	Short: "Convert again whenever the input changes",
	Long: `Convert the input once, then watch it and convert again after every
change until interrupted.

A failed run is reported and leaves the last good output in place.
The debounce interval is the watch.debounce_ms setting. With --tui the
runs are shown in an interactive dashboard when stdout is a terminal.`,
	Args: cobra.ExactArgs(2),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().BoolVar(&watchTUI, "tui", false, "Show an interactive dashboard")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if watchService == nil {
		return errors.New("watch service not configured")
	}

	if watchTUI && isTerminal(cmd.OutOrStdout()) {
		return tui.Run(cmd.Context(), &tui.Ports{Watch: watchService, Conversion: conversionService}, args[0], args[1])
	}

	st := newStyles(cmd.OutOrStdout())
	cmd.Printf("%s %s (Ctrl+C to stop)\n", st.title.Render("Watching"), args[0])

	return watchService.Watch(cmd.Context(), args[0], args[1], func(report *domain.ConversionReport, err error) {
		if err != nil {
			cmd.PrintErrf("%s %v\n", st.failure.Render("Failed"), err)
			return
		}
		printReport(cmd, report)
	})
}
