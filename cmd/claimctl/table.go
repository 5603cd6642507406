package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"pixclaim/internal/claim/models"
	"pixclaim/internal/claim/reconcile"
)

type cellView struct {
	State     string `json:"state" yaml:"state"`
	Donation  bool   `json:"donation" yaml:"donation"`
	ClaimType string `json:"claimType" yaml:"claimType"`
	Status    string `json:"status" yaml:"status"`
	Outcome   string `json:"outcome" yaml:"outcome"`
	Operation string `json:"operation,omitempty" yaml:"operation,omitempty"`
}

func tableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the claim decision table",
		Long: `Print every cell of the decision table for the supported key states.
Any other key state is rejected as unsupported for every tuple.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			state, _ := cmd.Flags().GetString("state")
			actingOnly, _ := cmd.Flags().GetBool("acting")

			if state != "" && !reconcile.Supports(models.KeyState(strings.ToUpper(state))) {
				return fmt.Errorf("unsupported key state %q", state)
			}

			var views []cellView
			for _, c := range reconcile.Cells() {
				if state != "" && !strings.EqualFold(string(c.State), state) {
					continue
				}
				if actingOnly && c.Outcome.Kind == reconcile.KindInvalidFlow {
					continue
				}
				views = append(views, toCellView(c))
			}
			return writeCells(cmd.OutOrStdout(), format, views)
		},
	}

	cmd.Flags().StringP("format", "f", "text", "Output format (text, json, yaml)")
	cmd.Flags().StringP("state", "s", "", "Only print cells for this key state")
	cmd.Flags().Bool("acting", false, "Hide invalid-flow cells")

	return cmd
}

func toCellView(c reconcile.Cell) cellView {
	return cellView{
		State:     c.State.String(),
		Donation:  c.Donation,
		ClaimType: c.ClaimType.String(),
		Status:    c.Status.String(),
		Outcome:   c.Outcome.Kind.String(),
		Operation: string(c.Outcome.Operation),
	}
}

func writeCells(w io.Writer, format string, views []cellView) error {
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(views)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(views); err != nil {
			return err
		}
		return enc.Close()
	case "text":
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "STATE\tDONATION\tTYPE\tSTATUS\tOUTCOME\tOPERATION")
		for _, v := range views {
			fmt.Fprintf(tw, "%s\t%t\t%s\t%s\t%s\t%s\n", v.State, v.Donation, v.ClaimType, v.Status, v.Outcome, v.Operation)
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
	}
}

// parseTuple validates the enum flags shared by decide.
func parseTuple(claimType, status string) (models.ClaimType, models.ClaimStatus, error) {
	ct := models.ClaimType(strings.ToUpper(claimType))
	if !ct.IsValid() {
		return "", "", fmt.Errorf("invalid claim type %q", claimType)
	}
	st := models.ClaimStatus(strings.ToUpper(status))
	if !st.IsValid() {
		return "", "", fmt.Errorf("invalid claim status %q", status)
	}
	return ct, st, nil
}
