package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/psychograph/psychograph/internal/cli"
	"github.com/psychograph/psychograph/internal/criteria"
)

func criteriaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "criteria",
		Short: "Inspect the diagnostic criteria database",
	}
	cmd.AddCommand(criteriaListCmd())
	return cmd
}

func criteriaListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the conditions the screening assessment covers",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Println(cli.FormatTitle("Diagnostic Criteria"))

			header := fmt.Sprintf("%-32s %-24s %-10s %-10s %s",
				"Condition", "Section", "Criteria", "DSM page", "Duration")
			fmt.Println(cli.TableHeaderStyle.Render(header))

			for _, cond := range criteria.Conditions() {
				duration := cond.Duration
				if duration == "" {
					duration = "-"
				}
				row := fmt.Sprintf("%-32s %-24s %-10s %-10s %s",
					cond.Name,
					cond.Section,
					fmt.Sprintf("%d of %d", cond.Required, len(cond.Criteria)),
					fmt.Sprintf("p%d", cond.DSMPage),
					duration,
				)
				if criteria.PriorityConditions[cond.Name] {
					fmt.Println(cli.InfoStyle.Render(row))
				} else {
					fmt.Println(cli.TableCellStyle.Render(row))
				}
			}

			fmt.Println()
			fmt.Println(cli.SubtleStyle.Render("Highlighted conditions are always assessed by the AI scorer."))
		},
	}
}
