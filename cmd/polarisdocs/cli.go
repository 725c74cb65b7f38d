package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/polarisdocs"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Registries polarisdocs.RegistryService
	Content    polarisdocs.ContentService
	Develop    polarisdocs.DevelopService
	Cleaner    polarisdocs.Cleaner
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging to stderr"`

	Repo        string `default:"Shopify/polaris" env:"POLARISDOCS_REPO" help:"Documentation repository as owner/name"`
	Branch      string `default:"main" env:"POLARISDOCS_BRANCH" help:"Repository branch"`
	ContentRoot string `default:"polaris.shopify.com/content/components" env:"POLARISDOCS_CONTENT_ROOT" help:"Component content root inside the repository"`
	Site        string `default:"https://polaris.shopify.com/components" env:"POLARISDOCS_SITE" help:"Base URL of the rendered component pages"`
	Token       string `env:"GITHUB_TOKEN" help:"GitHub API token (optional, raises rate limits)"`

	List       ListCmd       `cmd:"" help:"List documented components"`
	Overview   OverviewCmd   `cmd:"" help:"Show a component's overview with its default example"`
	Guidelines GuidelinesCmd `cmd:"" help:"Show a component's usage guidelines"`
	Develop    DevelopCmd    `cmd:"" help:"Show a component's property, event, and accessibility tables"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Category string `short:"c" help:"Only list components in this category"`
}

// OverviewCmd is the "overview" subcommand.
type OverviewCmd struct {
	Component string `arg:"" help:"Component slug, e.g. button"`
	Category  string `short:"c" help:"Component category (skips registry lookup)"`
}

// GuidelinesCmd is the "guidelines" subcommand.
type GuidelinesCmd struct {
	Component string `arg:"" help:"Component slug, e.g. button"`
	Category  string `short:"c" help:"Component category (skips registry lookup)"`
}

// DevelopCmd is the "develop" subcommand.
type DevelopCmd struct {
	Component string `arg:"" help:"Component slug, e.g. button"`
	Category  string `short:"c" help:"Component category (skips registry lookup)"`
}

// resolveComponent determines the definitive location for a component
// identifier. An explicit category is trusted without a registry round
// trip. A lookup miss is not an error: a user-facing message with
// suggestions is written to stdout and ok=false is returned.
func resolveComponent(deps *Dependencies, component, category string) (loc polarisdocs.Location, ok bool, err error) {
	if category != "" {
		return polarisdocs.Location{Category: category, Slug: component}, true, nil
	}

	reg, err := deps.Registries.Registry(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: component registry unavailable: %s\n", polarisdocs.ErrorMessage(err))
		return polarisdocs.Location{}, false, err
	}

	loc, found := polarisdocs.ResolveLocation(reg, component, "")
	if !found {
		fmt.Fprintf(deps.Stdout, "Component %q not found.\n", component)
		if suggestions := reg.Suggest(component); len(suggestions) > 0 {
			fmt.Fprintf(deps.Stdout, "Did you mean one of: %s?\n", strings.Join(suggestions, ", "))
		}
		return polarisdocs.Location{}, false, nil
	}
	return loc, true, nil
}
