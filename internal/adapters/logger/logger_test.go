package logger_test

import (
	"os"
	"strings"
	"testing"

	"github.com/kaufmann-jan/octopost/internal/adapters/logger"
	"github.com/kaufmann-jan/octopost/internal/core/ports"
)

func capture(fn func(lg ports.Logger)) string {
	var sb strings.Builder
	lg := logger.New()
	lg.SetOutput(&sb)
	fn(lg)
	return sb.String()
}

func TestLogger_Info(t *testing.T) {
	output := capture(func(lg ports.Logger) {
		lg.Info("some message")
	})

	if !strings.Contains(output, "some message") {
		t.Errorf("Expected output to contain 'some message', got: %s", output)
	}
	if !strings.Contains(output, "INFO") {
		t.Errorf("Expected output to contain 'INFO', got: %s", output)
	}
}

func TestLogger_Warn(t *testing.T) {
	output := capture(func(lg ports.Logger) {
		lg.Warn("some warning")
	})

	if !strings.Contains(output, "some warning") {
		t.Errorf("Expected output to contain 'some warning', got: %s", output)
	}
	if !strings.Contains(output, "WARN") {
		t.Errorf("Expected output to contain 'WARN', got: %s", output)
	}
}

func TestLogger_Error(t *testing.T) {
	output := capture(func(lg ports.Logger) {
		lg.Error(os.ErrPermission)
	})

	if !strings.Contains(output, "permission denied") {
		t.Errorf("Expected output to contain 'permission denied', got: %s", output)
	}
	if !strings.Contains(output, "ERROR") {
		t.Errorf("Expected output to contain 'ERROR', got: %s", output)
	}
}

func TestNew(t *testing.T) {
	if logger.New() == nil {
		t.Fatal("Expected New() to return a non-nil logger")
	}
}
