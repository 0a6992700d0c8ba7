package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"mindscale/internal/catalog"
	"mindscale/internal/client"
	"mindscale/internal/config"
	"mindscale/internal/session"
)

func newTakeCmd() *cobra.Command {
	var (
		baseURL string
		userID  string
	)

	cmd := &cobra.Command{
		Use:   "take <test>",
		Short: "Run an assessment interactively",
		Long: `Take fetches the named instrument from the API, asks every question in
order, scores the answers locally and reports the session to the server.
The test may be a catalog id (e.g. "mood-thermometer") or an instrument
key (e.g. "bsrs5").`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if baseURL == "" {
				baseURL = config.Load().APIBaseURL
			}
			if userID == "" {
				userID = uuid.NewString()
			}

			testType := args[0]
			title := testType
			if e, ok := catalog.ByID(args[0]); ok && e.TestType != "" {
				testType = e.TestType
				title = e.Title
			} else if e, ok := catalog.ByTestType(args[0]); ok {
				title = e.Title
			}

			runner := session.NewRunner(client.New(baseURL), userID)
			if err := runner.Start(cmd.Context(), testType); err != nil {
				return err
			}

			in := bufio.NewScanner(os.Stdin)
			for runner.State() == session.StateInProgress {
				q, err := runner.Current()
				if err != nil {
					return err
				}
				answered, total := runner.Progress()

				fmt.Println()
				fmt.Println(faintStyle.Render(fmt.Sprintf("[%d/%d]", answered+1, total)))
				fmt.Println(titleStyle.Render(q.Text))
				for i, opt := range q.Options {
					fmt.Printf("  %d. %s\n", i+1, opt.Text)
				}

				idx, err := readChoice(in, len(q.Options))
				if err != nil {
					return err
				}
				if err := runner.Answer(cmd.Context(), q.Options[idx].ID); err != nil {
					return err
				}
			}

			result, err := runner.Result()
			if err != nil {
				return err
			}
			renderResult(title, result)

			if s := runner.Session(); s != nil {
				fmt.Println(faintStyle.Render("session " + s.ID + " · user " + userID))
			} else if runner.SubmitErr() != nil {
				fmt.Println(anomalyStyle.Render("结果未能上传，仅在本地显示"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&baseURL, "base-url", "", "API base URL (default: API_BASE_URL env)")
	cmd.Flags().StringVar(&userID, "user", "", "user id to record the session under (default: random)")
	return cmd
}

// readChoice reads a 1-based option number from stdin, reprompting until the
// input is a valid choice. Returns the 0-based index.
func readChoice(in *bufio.Scanner, optionCount int) (int, error) {
	for {
		fmt.Printf("> ")
		if !in.Scan() {
			if err := in.Err(); err != nil {
				return 0, err
			}
			return 0, fmt.Errorf("input closed before the assessment finished")
		}
		n, err := strconv.Atoi(strings.TrimSpace(in.Text()))
		if err != nil || n < 1 || n > optionCount {
			fmt.Println(faintStyle.Render(fmt.Sprintf("enter a number between 1 and %d", optionCount)))
			continue
		}
		return n - 1, nil
	}
}
