package cli

import (
	"github.com/spf13/cobra"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

var projectPath string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "baseliner",
	Version: Version,
	Short:   "A system of record for release documentation baselines",
	Long: `Baseliner keeps release documentation baselines honest.
It helps change control boards and release managers answer:
1. Does this change qualify for the fast track?
2. Which baseline documents are still missing?
3. Where did every uploaded document end up?`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.PersistentFlags().StringVar(&projectPath, "path", "", "Workspace directory (defaults to the current directory)")
}
