package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/kaufmann-jan/octopost/internal/adapters/config"
	"github.com/kaufmann-jan/octopost/internal/app"
	"github.com/kaufmann-jan/octopost/internal/core/ports/mocks"
)

// TestRun_Success verifies that run returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	application := app.New(config.NewLoader(mockLogger), mockLogger, nil)

	provider := func(_ context.Context) (*app.Components, error) {
		return &app.Components{
			App:    application,
			Logger: mockLogger,
		}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, error) {
		return nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 when execution fails.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Error(gomock.Any())

	application := app.New(config.NewLoader(mockLogger), mockLogger, nil)

	provider := func(_ context.Context) (*app.Components, error) {
		return &app.Components{
			App:    application,
			Logger: mockLogger,
		}, nil
	}

	stderr := new(bytes.Buffer)
	// Unknown output kind makes the data command fail.
	exitCode := run(context.Background(), []string{"data", "turbulenceBudget"}, stderr, provider)
	assert.Equal(t, 1, exitCode)
}
