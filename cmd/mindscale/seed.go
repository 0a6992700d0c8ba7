package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"mindscale/internal/client"
	"mindscale/internal/config"
	"mindscale/internal/model"
)

// fixture mirrors model.Test in YAML form. Question ids and order indexes
// default from position; option ids default from the question id.
type fixture struct {
	TestType    string `yaml:"test_type"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Questions   []struct {
		ID      string `yaml:"id"`
		Text    string `yaml:"text"`
		Options []struct {
			ID    string `yaml:"id"`
			Text  string `yaml:"text"`
			Score int    `yaml:"score"`
		} `yaml:"options"`
	} `yaml:"questions"`
	Results []struct {
		MinScore      int    `yaml:"min_score"`
		MaxScore      *int   `yaml:"max_score"`
		ResultRange   string `yaml:"result_range"`
		Description   string `yaml:"description"`
		DimensionCode string `yaml:"dimension_code"`
	} `yaml:"results"`
}

func (f *fixture) toTest() *model.Test {
	test := &model.Test{
		TestType:    f.TestType,
		Title:       f.Title,
		Description: f.Description,
	}
	for i, q := range f.Questions {
		question := model.Question{
			ID:         q.ID,
			Text:       q.Text,
			OrderIndex: i + 1,
		}
		if question.ID == "" {
			question.ID = fmt.Sprintf("%s-q%d", f.TestType, i+1)
		}
		for j, opt := range q.Options {
			option := model.Option{ID: opt.ID, Text: opt.Text, Score: opt.Score}
			if option.ID == "" {
				option.ID = fmt.Sprintf("%s-o%d", question.ID, j+1)
			}
			question.Options = append(question.Options, option)
		}
		test.Questions = append(test.Questions, question)
	}
	for _, r := range f.Results {
		test.Results = append(test.Results, model.ResultRange{
			MinScore:      r.MinScore,
			MaxScore:      r.MaxScore,
			ResultRange:   r.ResultRange,
			Description:   r.Description,
			DimensionCode: r.DimensionCode,
		})
	}
	return test
}

func newSeedCmd() *cobra.Command {
	var baseURL string

	cmd := &cobra.Command{
		Use:   "seed <fixture.yaml>...",
		Short: "Register instrument definitions from YAML fixtures",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if baseURL == "" {
				baseURL = config.Load().APIBaseURL
			}
			api := client.New(baseURL)

			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				var f fixture
				if err := yaml.Unmarshal(data, &f); err != nil {
					return fmt.Errorf("parse %s: %w", path, err)
				}
				created, err := api.CreateTest(cmd.Context(), f.toTest())
				if err != nil {
					return fmt.Errorf("seed %s: %w", path, err)
				}
				fmt.Printf("seeded %s (%s) as %s, %d questions\n",
					created.TestType, path, created.ID, len(created.Questions))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&baseURL, "base-url", "", "API base URL (default: API_BASE_URL env)")
	return cmd
}
