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

func developDeps(develop *mock.DevelopService, content *mock.ContentService) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	if content == nil {
		content = &mock.ContentService{
			FetchDocFn: func(_ context.Context, _ polarisdocs.Location, _ polarisdocs.DocKind) (string, error) {
				return "", polarisdocs.Errorf(polarisdocs.ENOTFOUND, "no prose")
			},
		}
	}
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
		Registries: &mock.RegistryService{
			RegistryFn: func(_ context.Context) (*polarisdocs.Registry, error) {
				return polarisdocs.NewRegistry([]polarisdocs.ComponentInfo{
					{Slug: "button", Name: "Button", Category: "actions"},
				}), nil
			},
		},
		Content: content,
		Develop: develop,
		Cleaner: mdx.NewCleaner(),
	}, stdout, stderr
}

func TestDevelopCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("renders property tables", func(t *testing.T) {
		t.Parallel()

		develop := &mock.DevelopService{
			DevelopFn: func(_ context.Context, loc polarisdocs.Location) (*polarisdocs.DevelopData, error) {
				require.Equal(t, polarisdocs.Location{Category: "actions", Slug: "button"}, loc)
				return &polarisdocs.DevelopData{
					Sections: []polarisdocs.PropertiesSection{
						{
							Title: "Properties",
							Properties: []polarisdocs.PropertyInfo{
								{Name: "variant", Type: "string | number"},
							},
						},
					},
				}, nil
			},
		}
		deps, stdout, _ := developDeps(develop, nil)

		cmd := &main.DevelopCmd{Component: "button"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "## Properties")
		assert.Contains(t, output, `string \| number`)
	})

	t.Run("prepends develop prose when present", func(t *testing.T) {
		t.Parallel()

		content := &mock.ContentService{
			FetchDocFn: func(_ context.Context, _ polarisdocs.Location, kind polarisdocs.DocKind) (string, error) {
				require.Equal(t, polarisdocs.KindDevelop, kind)
				return "Install via npm.\n", nil
			},
		}
		develop := &mock.DevelopService{
			DevelopFn: func(_ context.Context, _ polarisdocs.Location) (*polarisdocs.DevelopData, error) {
				return &polarisdocs.DevelopData{}, nil
			},
		}
		deps, stdout, _ := developDeps(develop, content)

		cmd := &main.DevelopCmd{Component: "button"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "Install via npm.")
		assert.Contains(t, output, polarisdocs.NoDevelopData)
	})

	t.Run("empty data renders the fixed no-data message", func(t *testing.T) {
		t.Parallel()

		develop := &mock.DevelopService{
			DevelopFn: func(_ context.Context, _ polarisdocs.Location) (*polarisdocs.DevelopData, error) {
				return &polarisdocs.DevelopData{}, nil
			},
		}
		deps, stdout, _ := developDeps(develop, nil)

		cmd := &main.DevelopCmd{Component: "button"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), polarisdocs.NoDevelopData)
	})

	t.Run("browser failure gets an install hint", func(t *testing.T) {
		t.Parallel()

		develop := &mock.DevelopService{
			DevelopFn: func(_ context.Context, _ polarisdocs.Location) (*polarisdocs.DevelopData, error) {
				return nil, polarisdocs.Errorf(polarisdocs.EBROWSER, "starting browser: no chrome")
			},
		}
		deps, _, stderr := developDeps(develop, nil)

		cmd := &main.DevelopCmd{Component: "button"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "Chrome or Chromium must be installed")
	})

	t.Run("render timeout gets a retry hint", func(t *testing.T) {
		t.Parallel()

		develop := &mock.DevelopService{
			DevelopFn: func(_ context.Context, _ polarisdocs.Location) (*polarisdocs.DevelopData, error) {
				return nil, polarisdocs.Errorf(polarisdocs.ETIMEOUT, "page did not render in time")
			},
		}
		deps, _, stderr := developDeps(develop, nil)

		cmd := &main.DevelopCmd{Component: "button"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "did not render in time")
		assert.Contains(t, stderr.String(), "try again")
	})
}
