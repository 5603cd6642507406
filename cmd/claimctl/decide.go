package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"pixclaim/internal/claim/models"
	"pixclaim/internal/claim/reconcile"
)

func decideCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decide",
		Short: "Evaluate one notification against the decision table",
		Example: `  claimctl decide --state PORTABILITY_STARTED --type PORTABILITY --status CONFIRMED
  claimctl decide --state READY --donation --type OWNERSHIP --status OPEN -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state, _ := cmd.Flags().GetString("state")
			donation, _ := cmd.Flags().GetBool("donation")
			claimType, _ := cmd.Flags().GetString("type")
			status, _ := cmd.Flags().GetString("status")
			output, _ := cmd.Flags().GetString("output")

			ct, st, err := parseTuple(claimType, status)
			if err != nil {
				return err
			}
			in := reconcile.Input{
				State:     models.KeyState(strings.ToUpper(state)),
				Donation:  donation,
				ClaimType: ct,
				Status:    st,
			}
			outcome, err := reconcile.Decide(in)
			if err != nil {
				return err
			}

			if output == "json" {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(toCellView(reconcile.Cell{
					State:     in.State,
					Donation:  in.Donation,
					ClaimType: in.ClaimType,
					Status:    in.Status,
					Outcome:   outcome,
				}))
			}
			fmt.Fprintln(cmd.OutOrStdout(), outcome.String())
			return nil
		},
	}

	cmd.Flags().String("state", "", "Key state reported by the Pix-key service (required)")
	cmd.Flags().Bool("donation", false, "Notification is a donation")
	cmd.Flags().String("type", "", "Claim type: OWNERSHIP or PORTABILITY (required)")
	cmd.Flags().String("status", "", "Claim status (required)")
	cmd.Flags().StringP("output", "o", "text", "Output format (text, json)")
	_ = cmd.MarkFlagRequired("state")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("status")

	return cmd
}
