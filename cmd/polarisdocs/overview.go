package main

import (
	"fmt"

	"github.com/fwojciec/polarisdocs"
)

// Run executes the overview command.
func (c *OverviewCmd) Run(deps *Dependencies) error {
	loc, ok, err := resolveComponent(deps, c.Component, c.Category)
	if err != nil || !ok {
		return err
	}

	doc, err := deps.Content.FetchDoc(deps.Ctx, loc, polarisdocs.KindOverview)
	if err != nil {
		if polarisdocs.ErrorCode(err) == polarisdocs.ENOTFOUND {
			fmt.Fprintf(deps.Stdout, "No overview documentation found for %q.\n", c.Component)
			return nil
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", polarisdocs.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, deps.Cleaner.Clean(doc))

	// The default example is best effort: a component without one still has
	// a complete overview.
	example, err := deps.Content.FetchExample(deps.Ctx, loc, polarisdocs.DefaultExample)
	if err != nil || example == "" {
		return nil
	}
	fmt.Fprintf(deps.Stdout, "\n## Example\n\n```\n%s\n```\n", example)

	return nil
}
