package db

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"
)

func RunsAction(c *cli.Context) error {
	database, err := openHistory(c)
	if err != nil {
		return err
	}
	defer database.Close()

	limit := c.Int("limit")
	runs, err := database.ListRuns(limit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs found")
		return nil
	}

	fmt.Printf("%-6s %-20s %-6s %-6s %-6s %-6s %-30s\n",
		"ID", "Created", "Docs", "Tools", "Exps", "People", "Output")
	fmt.Println(strings.Repeat("-", 90))

	for _, r := range runs {
		fmt.Printf("%-6d %-20s %-6d %-6d %-6d %-6d %-30s\n",
			r.RunID,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.DocumentCount,
			r.TotalTools,
			r.TotalExperiences,
			r.TotalPeople,
			r.OutputPath,
		)
	}

	fmt.Printf("\nTotal: %d runs\n", len(runs))
	fmt.Printf("\nTip: Use 'ai-digest run <id>' to see details\n")

	return nil
}

// RunAction shows details for a specific run
func RunAction(c *cli.Context) error {
	database, err := openHistory(c)
	if err != nil {
		return err
	}
	defer database.Close()

	runID, err := GetRunIDOrLatest(c, database)
	if err != nil {
		return err
	}

	run, err := database.GetRunByID(runID)
	if err != nil {
		return fmt.Errorf("failed to get run: %w", err)
	}

	docs, err := database.GetRunDocuments(runID)
	if err != nil {
		return fmt.Errorf("failed to get run documents: %w", err)
	}

	previous, err := database.PreviousHashes(runID)
	if err != nil {
		return err
	}

	fmt.Printf("Run %d (%s)\n", run.RunID, run.RunUUID)
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Created:     %s\n", run.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Input:       %s\n", run.InputDir)
	fmt.Printf("Output:      %s\n", run.OutputPath)
	fmt.Printf("Totals:      %d tools, %d experiences, %d people\n",
		run.TotalTools, run.TotalExperiences, run.TotalPeople)

	fmt.Printf("\nDocuments (%d):\n", len(docs))
	fmt.Println(strings.Repeat("-", 60))
	for i, d := range docs {
		date := d.DateLabel
		if date == "" {
			date = "(no date)"
		}
		fmt.Printf("%2d. [%s] %s\n", i+1, DocumentStatus(previous, d), d.Identifier)
		fmt.Printf("    Date: %s | Tools: %d | Experiences: %d\n", date, d.ToolCount, d.ExperienceCount)
	}

	return nil
}
