package commands_test

import (
	"bytes"
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaufmann-jan/octopost/cmd/octopost/commands"
	"github.com/kaufmann-jan/octopost/internal/app"
	"github.com/kaufmann-jan/octopost/internal/build"
)

type mockApp struct {
	queryFunc  func(ctx context.Context, kindNames []string, opts app.RunOptions) error
	fieldsFunc func(ctx context.Context, kindName string, opts app.RunOptions) error
	watchFunc  func(ctx context.Context, kindName string, opts app.RunOptions) error
}

func (m *mockApp) Query(ctx context.Context, kindNames []string, opts app.RunOptions) error {
	if m.queryFunc != nil {
		return m.queryFunc(ctx, kindNames, opts)
	}
	return nil
}

func (m *mockApp) Fields(ctx context.Context, kindName string, opts app.RunOptions) error {
	if m.fieldsFunc != nil {
		return m.fieldsFunc(ctx, kindName, opts)
	}
	return nil
}

func (m *mockApp) Watch(ctx context.Context, kindName string, opts app.RunOptions) error {
	if m.watchFunc != nil {
		return m.watchFunc(ctx, kindName, opts)
	}
	return nil
}

func TestCommands_Data(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.RunOptions
		var capturedKinds []string
		called := false

		mock := &mockApp{
			queryFunc: func(_ context.Context, kindNames []string, opts app.RunOptions) error {
				capturedOpts = opts
				capturedKinds = kindNames
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{
			"data", "forces", "residuals",
			"--case", "/data/run42",
			"--tmin", "5", "--tmax", "50",
			"--csv",
		})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, []string{"forces", "residuals"}, capturedKinds)
		assert.Equal(t, "/data/run42", capturedOpts.CaseDir)
		assert.Equal(t, 5.0, capturedOpts.TMin)
		assert.Equal(t, 50.0, capturedOpts.TMax)
		assert.True(t, capturedOpts.CSV)
	})

	t.Run("time bounds default to open ends", func(t *testing.T) {
		var capturedOpts app.RunOptions

		mock := &mockApp{
			queryFunc: func(_ context.Context, _ []string, opts app.RunOptions) error {
				capturedOpts = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"data", "forces"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.True(t, math.IsInf(capturedOpts.TMin, -1))
		assert.True(t, math.IsInf(capturedOpts.TMax, 1))
	})

	t.Run("returns error on query failure", func(t *testing.T) {
		mock := &mockApp{
			queryFunc: func(_ context.Context, _ []string, _ app.RunOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"data", "forces"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("shows usage when no kinds provided", func(t *testing.T) {
		mock := &mockApp{
			queryFunc: func(_ context.Context, _ []string, _ app.RunOptions) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"data"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Usage:")
	})
}

func TestCommands_Fields(t *testing.T) {
	var capturedKind string

	mock := &mockApp{
		fieldsFunc: func(_ context.Context, kindName string, _ app.RunOptions) error {
			capturedKind = kindName
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"fields", "residuals"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "residuals", capturedKind)
}

func TestCommands_Watch(t *testing.T) {
	var capturedKind string
	var capturedOpts app.RunOptions

	mock := &mockApp{
		watchFunc: func(_ context.Context, kindName string, opts app.RunOptions) error {
			capturedKind = kindName
			capturedOpts = opts
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"watch", "rigidBodyState", "--object", "hull"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "rigidBodyState", capturedKind)
	assert.Equal(t, "hull", capturedOpts.Object)
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), build.Version)
}
