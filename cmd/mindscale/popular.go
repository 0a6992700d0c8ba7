package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mindscale/internal/catalog"
	"mindscale/internal/client"
	"mindscale/internal/config"
)

func newPopularCmd() *cobra.Command {
	var baseURL string

	cmd := &cobra.Command{
		Use:   "popular",
		Short: "Show tests ranked by completed sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			if baseURL == "" {
				baseURL = config.Load().APIBaseURL
			}
			api := client.New(baseURL)

			rows, err := api.Popular(cmd.Context())
			if err != nil {
				return err
			}
			merged := catalog.MergePopular(rows)
			if len(merged) == 0 {
				fmt.Println(faintStyle.Render("no completed sessions yet"))
				return nil
			}
			for i, e := range merged {
				title := titleStyle.Inherit(colorStyle(e.Color)).Render(e.Title)
				fmt.Printf("%2d. %s  %s\n", i+1, title,
					faintStyle.Render(fmt.Sprintf("%d次测评", e.SessionCount)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&baseURL, "base-url", "", "API base URL (default: API_BASE_URL env)")
	return cmd
}
