package cmd

import (
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "mpcgen",
	Short: "Generate synthetic MPC order fixtures",
	Long: `Mpcgen is a command-line tool for generating synthetic MakePlayingCards
order XML documents of arbitrary size. Fixtures are derived deterministically
from a small card catalog, so the same count always produces the same bytes.`,
}

func init() {
	RootCmd.AddCommand(generateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
