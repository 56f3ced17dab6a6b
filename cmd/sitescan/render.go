package main

import (
	"fmt"

	"github.com/fwojciec/sitescan"
	"github.com/fwojciec/sitescan/fs"
)

// Run executes the render command.
func (c *RenderCmd) Run(deps *Dependencies) error {
	summary, err := fs.ReadSummary(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitescan.ErrorMessage(err))
		return err
	}
	if c.Trim {
		summary = sitescan.Trim(summary, sitescan.DefaultTrimLimits())
	}
	return writeSummary(deps.Stdout, summary, c.Format)
}
