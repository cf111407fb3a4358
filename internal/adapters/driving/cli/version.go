package cli

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sbml2biopax/internal/biopax"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and the formats this build converts between",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		if versionShort {
			cmd.Println(version)
			return
		}
		cmd.Printf("sbml2biopax version %s\n", version)
		cmd.Println("  reads:  CellDesigner SBML")
		cmd.Printf("  writes: BioPAX Level 3 (%s)\n", biopax.NamespaceBP)
		cmd.Printf("  built:  %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "print the version number only")
	rootCmd.AddCommand(versionCmd)
}
