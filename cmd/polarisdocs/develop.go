package main

import (
	"fmt"

	"github.com/fwojciec/polarisdocs"
)

// Run executes the develop command.
func (c *DevelopCmd) Run(deps *Dependencies) error {
	loc, ok, err := resolveComponent(deps, c.Component, c.Category)
	if err != nil || !ok {
		return err
	}

	// Prose part of the develop view, when the component has one.
	prose, err := deps.Content.FetchDoc(deps.Ctx, loc, polarisdocs.KindDevelop)
	if err != nil && polarisdocs.ErrorCode(err) != polarisdocs.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: %s\n", polarisdocs.ErrorMessage(err))
		return err
	}
	if prose != "" {
		fmt.Fprintln(deps.Stdout, deps.Cleaner.Clean(prose))
		fmt.Fprintln(deps.Stdout)
	}

	data, err := deps.Develop.Develop(deps.Ctx, loc)
	if err != nil {
		switch polarisdocs.ErrorCode(err) {
		case polarisdocs.EBROWSER:
			fmt.Fprintln(deps.Stderr, "Hint: Chrome or Chromium must be installed")
		case polarisdocs.ETIMEOUT:
			fmt.Fprintln(deps.Stderr, "Hint: the component page did not render in time; try again")
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", polarisdocs.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, polarisdocs.FormatDevelop(data))
	return nil
}
