package main

import (
	"fmt"

	"github.com/fwojciec/polarisdocs"
)

// Run executes the guidelines command.
func (c *GuidelinesCmd) Run(deps *Dependencies) error {
	loc, ok, err := resolveComponent(deps, c.Component, c.Category)
	if err != nil || !ok {
		return err
	}

	doc, err := deps.Content.FetchDoc(deps.Ctx, loc, polarisdocs.KindGuidelines)
	if err != nil {
		if polarisdocs.ErrorCode(err) == polarisdocs.ENOTFOUND {
			fmt.Fprintf(deps.Stdout, "No guidelines documentation found for %q.\n", c.Component)
			return nil
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", polarisdocs.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, deps.Cleaner.Clean(doc))
	return nil
}
