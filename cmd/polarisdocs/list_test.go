package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/polarisdocs"
	main "github.com/fwojciec/polarisdocs/cmd/polarisdocs"
	"github.com/fwojciec/polarisdocs/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registryDeps(reg *polarisdocs.Registry) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
		Registries: &mock.RegistryService{
			RegistryFn: func(_ context.Context) (*polarisdocs.Registry, error) {
				return reg, nil
			},
		},
	}, stdout, stderr
}

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("groups and sorts by category then slug", func(t *testing.T) {
		t.Parallel()

		reg := polarisdocs.NewRegistry([]polarisdocs.ComponentInfo{
			{Slug: "text-field", Name: "Text field", Category: "forms"},
			{Slug: "button", Name: "Button", Category: "actions", Description: "Makes actions visible."},
		})
		deps, stdout, _ := registryDeps(reg)

		cmd := &main.ListCmd{}
		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "actions:\n  button  Button: Makes actions visible.")
		assert.Contains(t, output, "forms:\n  text-field  Text field")
		assert.Less(t, bytes.Index(stdout.Bytes(), []byte("actions:")), bytes.Index(stdout.Bytes(), []byte("forms:")))
	})

	t.Run("filters by category", func(t *testing.T) {
		t.Parallel()

		reg := polarisdocs.NewRegistry([]polarisdocs.ComponentInfo{
			{Slug: "button", Name: "Button", Category: "actions"},
			{Slug: "text-field", Name: "Text field", Category: "forms"},
		})
		deps, stdout, _ := registryDeps(reg)

		cmd := &main.ListCmd{Category: "forms"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "text-field")
		assert.NotContains(t, stdout.String(), "button")
	})

	t.Run("empty category filter result gets a helpful message", func(t *testing.T) {
		t.Parallel()

		reg := polarisdocs.NewRegistry([]polarisdocs.ComponentInfo{
			{Slug: "button", Name: "Button", Category: "actions"},
		})
		deps, stdout, _ := registryDeps(reg)

		cmd := &main.ListCmd{Category: "nope"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), `No components found in category "nope".`)
	})

	t.Run("registry failure is reported", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Registries: &mock.RegistryService{
				RegistryFn: func(_ context.Context) (*polarisdocs.Registry, error) {
					return nil, polarisdocs.Errorf(polarisdocs.EUNAVAILABLE, "HTTP 503")
				},
			},
		}

		cmd := &main.ListCmd{}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "component registry unavailable")
	})
}
