package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"mindscale/internal/scoring"
)

// ansiByName maps catalog and band color names to ANSI 256 codes. Unknown
// names fall back to the default foreground.
var ansiByName = map[string]string{
	"red":     "9",
	"rose":    "205",
	"orange":  "208",
	"amber":   "214",
	"yellow":  "11",
	"green":   "10",
	"emerald": "42",
	"teal":    "14",
	"blue":    "12",
	"indigo":  "63",
	"purple":  "13",
	"pink":    "212",
	"slate":   "7",
	"gray":    "7",
}

func colorStyle(name string) lipgloss.Style {
	code, ok := ansiByName[name]
	if !ok {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	faintStyle   = lipgloss.NewStyle().Faint(true)
	labelStyle   = lipgloss.NewStyle().Bold(true)
	ruleStyle    = lipgloss.NewStyle().Faint(true)
	anomalyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

func rule() string {
	return ruleStyle.Render(strings.Repeat("─", 48))
}

// renderResult prints a scored outcome: headline label, narrative, then one
// line per dimension with its band label.
func renderResult(title string, result *scoring.Result) {
	fmt.Println()
	fmt.Println(titleStyle.Render(title))
	fmt.Println(rule())

	headline := result.Label
	if result.TypeCode != "" {
		headline = result.TypeCode + "  " + result.Label
	}
	headlineColor := ""
	for _, d := range result.Dimensions {
		if d.Primary {
			headlineColor = d.Color
			break
		}
	}
	fmt.Println(labelStyle.Inherit(colorStyle(headlineColor)).Render(headline))
	if result.TypeCode == "" {
		fmt.Println(faintStyle.Render(fmt.Sprintf("总分 %d", result.TotalScore)))
	}
	if result.Narrative != "" {
		fmt.Println()
		fmt.Println(result.Narrative)
	}

	if len(result.Dimensions) > 1 {
		fmt.Println()
		fmt.Println(titleStyle.Render("维度"))
		for _, d := range result.Dimensions {
			line := fmt.Sprintf("  %-24s %6.1f  %s", d.Name, d.Score, colorStyle(d.Color).Render(d.Label))
			fmt.Println(line)
		}
	}

	if len(result.Details) > 0 {
		fmt.Println()
		fmt.Println(titleStyle.Render("逐题解读"))
		for i, det := range result.Details {
			fmt.Printf("  %2d. %s\n", i+1, det.Question)
			fmt.Printf("      %s\n", faintStyle.Render(det.Answer))
			fmt.Printf("      %s\n", det.Explanation)
		}
	}

	for _, a := range result.Anomalies {
		fmt.Println(anomalyStyle.Render(fmt.Sprintf("注意: 维度 %s 的得分 %.1f 超出常模区间", a.Dimension, a.Score)))
	}
	fmt.Println(rule())
}
