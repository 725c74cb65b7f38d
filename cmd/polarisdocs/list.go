package main

import (
	"fmt"
	"sort"

	"github.com/fwojciec/polarisdocs"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	reg, err := deps.Registries.Registry(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: component registry unavailable: %s\n", polarisdocs.ErrorMessage(err))
		return err
	}

	// Copy before sorting so the registry's own order is untouched.
	components := append([]polarisdocs.ComponentInfo(nil), reg.Components()...)
	if c.Category != "" {
		var filtered []polarisdocs.ComponentInfo
		for _, comp := range components {
			if comp.Category == c.Category {
				filtered = append(filtered, comp)
			}
		}
		components = filtered
	}

	if len(components) == 0 {
		if c.Category != "" {
			fmt.Fprintf(deps.Stdout, "No components found in category %q.\n", c.Category)
		} else {
			fmt.Fprintln(deps.Stdout, "No components found.")
		}
		return nil
	}

	sort.SliceStable(components, func(i, j int) bool {
		if components[i].Category != components[j].Category {
			return components[i].Category < components[j].Category
		}
		return components[i].Slug < components[j].Slug
	})

	category := ""
	for _, comp := range components {
		if comp.Category != category {
			if category != "" {
				fmt.Fprintln(deps.Stdout)
			}
			category = comp.Category
			fmt.Fprintf(deps.Stdout, "%s:\n", category)
		}
		if comp.Description != "" {
			fmt.Fprintf(deps.Stdout, "  %s  %s: %s\n", comp.Slug, comp.Name, comp.Description)
		} else {
			fmt.Fprintf(deps.Stdout, "  %s  %s\n", comp.Slug, comp.Name)
		}
	}

	return nil
}
