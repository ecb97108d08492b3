package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kaufmann-jan/octopost/internal/core/domain"
	"github.com/kaufmann-jan/octopost/internal/core/ports/mocks"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, Filename), []byte(content), 0o644))
	return dir
}

func TestLoad(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		log := mocks.NewMockLogger(ctrl)
		log.EXPECT().Info(gomock.Any())

		cfg, err := NewLoader(log).Load(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, &domain.Config{}, cfg)
	})

	t.Run("full configuration", func(t *testing.T) {
		dir := writeConfig(t, `
case: /data/run42
window:
  tmin: 10
  tmax: 90
contentFingerprint: true
series:
  forces:
    dir: forces_hull
  rigidBodyState:
    object: hull
`)

		cfg, err := NewLoader(nil).Load(dir)
		require.NoError(t, err)

		assert.Equal(t, "/data/run42", cfg.CaseDir)
		require.NotNil(t, cfg.TMin)
		require.NotNil(t, cfg.TMax)
		assert.Equal(t, 10.0, *cfg.TMin)
		assert.Equal(t, 90.0, *cfg.TMax)
		assert.True(t, cfg.ContentSum)
		assert.Equal(t, "forces_hull", cfg.Overrides[domain.KindForces].Dir)
		assert.Equal(t, "hull", cfg.Overrides[domain.KindRigidBodyState].Object)
	})

	t.Run("open-ended window", func(t *testing.T) {
		dir := writeConfig(t, "window:\n  tmin: 5\n")

		cfg, err := NewLoader(nil).Load(dir)
		require.NoError(t, err)
		require.NotNil(t, cfg.TMin)
		assert.Nil(t, cfg.TMax)
	})

	t.Run("inverted window", func(t *testing.T) {
		dir := writeConfig(t, "window:\n  tmin: 90\n  tmax: 10\n")

		_, err := NewLoader(nil).Load(dir)
		require.ErrorIs(t, err, domain.ErrInvalidTimeWindow)
	})

	t.Run("unknown series kind", func(t *testing.T) {
		dir := writeConfig(t, "series:\n  turbulenceBudget:\n    dir: x\n")

		_, err := NewLoader(nil).Load(dir)
		require.ErrorIs(t, err, domain.ErrUnknownKind)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		dir := writeConfig(t, "case: [unclosed\n")

		_, err := NewLoader(nil).Load(dir)
		require.ErrorContains(t, err, domain.ErrConfigParseFailed.Error())
	})
}
