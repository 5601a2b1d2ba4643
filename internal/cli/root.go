// Package cli defines the wellspring command tree.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the top-level "wellspring" command and registers
// all subcommands.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "wellspring",
		Short: "Wellness coaching service with local LLM support",
		Long: `wellspring runs a wellness coaching service: profile assessment with
local risk scoring, task plan generation, supportive chat, and a coin
reward system. All model-backed features degrade to deterministic
fallbacks when the model endpoint is unreachable.`,
	}

	root.PersistentFlags().StringP("config", "c", "", "path to YAML config file")

	root.AddCommand(
		newServeCmd(),
		newAssessCmd(),
	)

	return root
}
