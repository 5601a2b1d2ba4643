package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmoren/wellspring/internal/domain"
)

func newAssessCmd() *cobra.Command {
	var userID string
	var profilePath string

	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Run a one-shot wellness assessment from the terminal",
		Long: `Reads a wellness profile as JSON (from --profile or stdin), stores it,
runs the assessment, and prints the result as JSON. Task generation
happens only when the risk level warrants it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")

			var raw []byte
			var err error
			if profilePath != "" {
				raw, err = os.ReadFile(profilePath)
			} else {
				raw, err = io.ReadAll(os.Stdin)
			}
			if err != nil {
				return fmt.Errorf("reading profile: %w", err)
			}

			var profile domain.Profile
			if err := json.Unmarshal(raw, &profile); err != nil {
				return fmt.Errorf("parsing profile: %w", err)
			}

			a, err := buildApp(configPath)
			if err != nil {
				return err
			}
			defer a.close()

			ctx := cmd.Context()
			if err := a.svc.UpsertProfile(ctx, userID, profile); err != nil {
				return fmt.Errorf("saving profile: %w", err)
			}

			result, err := a.svc.Assess(ctx, userID)
			if err != nil {
				return fmt.Errorf("running assessment: %w", err)
			}

			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "local", "User ID to assess")
	cmd.Flags().StringVar(&profilePath, "profile", "", "Path to profile JSON (reads stdin when omitted)")

	return cmd
}
