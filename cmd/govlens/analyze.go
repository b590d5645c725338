package main

import (
	"fmt"

	"github.com/fwojciec/govlens"
	"github.com/fwojciec/govlens/fs"
)

// Run executes the analyze command.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	review, err := deps.Reviews.Review(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", govlens.ErrorMessage(err))
		return err
	}

	fmt.Fprint(deps.Stdout, govlens.FormatReport(review))

	if c.Out != "" {
		writer := fs.NewWriter(c.Out)
		for _, format := range []govlens.ReportFormat{govlens.ReportMarkdown, govlens.ReportJSON} {
			path, err := writer.WriteReport(review, format)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", govlens.ErrorMessage(err))
				return err
			}
			fmt.Fprintf(deps.Stderr, "saved %s\n", path)
		}
	}

	return nil
}
