package main

import (
	"fmt"

	"github.com/fwojciec/botica"
	"github.com/fwojciec/botica/crawl"
)

// Run executes a harvest, or lists the categories in preview mode.
func (c *CLI) Run(deps *Dependencies) error {
	if c.Preview {
		return c.preview(deps)
	}

	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressDiscovered:
			fmt.Fprintf(deps.Stdout, "Found %d categories\n", event.Total)
		case crawl.ProgressCategory:
			fmt.Fprintf(deps.Stdout, "[%d/%d] %s\n", event.Index, event.Total, event.Category)
		case crawl.ProgressPage:
			fmt.Fprintf(deps.Stdout, "  %s\n", crawl.FormatPageLine(event.Page, event.Cards, event.Saved))
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", crawl.TruncateURL(event.URL, 80), botica.ErrorMessage(event.Error))
		case crawl.ProgressFinished:
			// Summary printed after the report is written
		}
	}

	result, err := deps.Harvester.Harvest(deps.Ctx, c.Home, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", botica.ErrorMessage(err))
		return err
	}

	if result.Categories == 0 {
		fmt.Fprintln(deps.Stdout, "No categories found; nothing written.")
		return nil
	}
	if len(result.Records) == 0 {
		fmt.Fprintln(deps.Stdout, "No matching products found; nothing written.")
		return nil
	}

	report, closeReport, err := deps.OpenReport()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", botica.ErrorMessage(err))
		return err
	}
	defer closeReport()

	if err := report.WriteReport(deps.Ctx, result.Records); err != nil {
		fmt.Fprintf(deps.Stderr, "error writing report: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %d products to %s (%d pages, %d duplicates, %d failed)\n",
		len(result.Records), c.Output, result.Pages, result.Duplicates, result.Failed)
	return nil
}

func (c *CLI) preview(deps *Dependencies) error {
	categories, err := deps.Discoverer.Discover(deps.Ctx, c.Home)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", c.Home, botica.ErrorMessage(err))
	}
	if len(categories) == 0 {
		fmt.Fprintln(deps.Stdout, "No categories found.")
		return nil
	}
	for _, cat := range categories {
		fmt.Fprintf(deps.Stdout, "%s\t%s\n", cat.Label, cat.URL)
	}
	return nil
}
