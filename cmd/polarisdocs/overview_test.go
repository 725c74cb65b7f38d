package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/polarisdocs"
	main "github.com/fwojciec/polarisdocs/cmd/polarisdocs"
	"github.com/fwojciec/polarisdocs/mdx"
	"github.com/fwojciec/polarisdocs/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func overviewDeps(content *mock.ContentService) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
		Registries: &mock.RegistryService{
			RegistryFn: func(_ context.Context) (*polarisdocs.Registry, error) {
				return polarisdocs.NewRegistry([]polarisdocs.ComponentInfo{
					{Slug: "button", Name: "Button", Category: "actions"},
					{Slug: "button-group", Name: "Button group", Category: "actions"},
				}), nil
			},
		},
		Content: content,
		Cleaner: mdx.NewCleaner(),
	}, stdout, stderr
}

func TestOverviewCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints cleaned overview with default example", func(t *testing.T) {
		t.Parallel()

		var gotLoc polarisdocs.Location
		content := &mock.ContentService{
			FetchDocFn: func(_ context.Context, loc polarisdocs.Location, kind polarisdocs.DocKind) (string, error) {
				gotLoc = loc
				require.Equal(t, polarisdocs.KindOverview, kind)
				return "---\ntitle: Button\n---\n\n# Button\n\nProse.\n", nil
			},
			FetchExampleFn: func(_ context.Context, _ polarisdocs.Location, name string) (string, error) {
				require.Equal(t, "default", name)
				return "<Button>Save</Button>", nil
			},
		}
		deps, stdout, _ := overviewDeps(content)

		cmd := &main.OverviewCmd{Component: "button"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, polarisdocs.Location{Category: "actions", Slug: "button"}, gotLoc)
		output := stdout.String()
		assert.Contains(t, output, "# Button")
		assert.NotContains(t, output, "title: Button")
		assert.Contains(t, output, "## Example")
		assert.Contains(t, output, "<Button>Save</Button>")
	})

	t.Run("missing example is tolerated", func(t *testing.T) {
		t.Parallel()

		content := &mock.ContentService{
			FetchDocFn: func(_ context.Context, _ polarisdocs.Location, _ polarisdocs.DocKind) (string, error) {
				return "# Button\n", nil
			},
			FetchExampleFn: func(_ context.Context, _ polarisdocs.Location, _ string) (string, error) {
				return "", polarisdocs.Errorf(polarisdocs.ENOTFOUND, "no example")
			},
		}
		deps, stdout, _ := overviewDeps(content)

		cmd := &main.OverviewCmd{Component: "button"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "# Button")
		assert.NotContains(t, stdout.String(), "## Example")
	})

	t.Run("missing overview is a message, not an error", func(t *testing.T) {
		t.Parallel()

		content := &mock.ContentService{
			FetchDocFn: func(_ context.Context, _ polarisdocs.Location, _ polarisdocs.DocKind) (string, error) {
				return "", polarisdocs.Errorf(polarisdocs.ENOTFOUND, "no such document")
			},
		}
		deps, stdout, _ := overviewDeps(content)

		cmd := &main.OverviewCmd{Component: "button"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), `No overview documentation found for "button".`)
	})

	t.Run("unknown component prints suggestions", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := overviewDeps(&mock.ContentService{})

		cmd := &main.OverviewCmd{Component: "butt"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, `Component "butt" not found.`)
		assert.Contains(t, output, "Did you mean one of: button, button-group?")
	})

	t.Run("explicit category skips the registry", func(t *testing.T) {
		t.Parallel()

		var gotLoc polarisdocs.Location
		content := &mock.ContentService{
			FetchDocFn: func(_ context.Context, loc polarisdocs.Location, _ polarisdocs.DocKind) (string, error) {
				gotLoc = loc
				return "# Custom\n", nil
			},
			FetchExampleFn: func(_ context.Context, _ polarisdocs.Location, _ string) (string, error) {
				return "", polarisdocs.Errorf(polarisdocs.ENOTFOUND, "no example")
			},
		}
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Content: content,
			Cleaner: mdx.NewCleaner(),
			// No registry service wired: the lookup must be skipped.
		}

		cmd := &main.OverviewCmd{Component: "custom", Category: "layout"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, polarisdocs.Location{Category: "layout", Slug: "custom"}, gotLoc)
	})

	t.Run("upstream failure is an error", func(t *testing.T) {
		t.Parallel()

		content := &mock.ContentService{
			FetchDocFn: func(_ context.Context, _ polarisdocs.Location, _ polarisdocs.DocKind) (string, error) {
				return "", polarisdocs.Errorf(polarisdocs.EUNAVAILABLE, "HTTP 502")
			},
		}
		deps, _, stderr := overviewDeps(content)

		cmd := &main.OverviewCmd{Component: "button"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "HTTP 502")
	})
}
