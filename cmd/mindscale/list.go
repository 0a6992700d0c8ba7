package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mindscale/internal/catalog"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the assessment catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, e := range catalog.All() {
				header := titleStyle.Inherit(colorStyle(e.Color)).Render(e.Title)
				fmt.Printf("%-20s %s\n", e.ID, header)
				fmt.Printf("%-20s %s\n", "", faintStyle.Render(e.Description))
				fmt.Printf("%-20s %s\n", "",
					faintStyle.Render(fmt.Sprintf("%s · %d题 · %s", e.Category, e.QuestionCount, e.EstimatedTime)))
			}
			return nil
		},
	}
}
