package game

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTuningIsValid(t *testing.T) {
	require.NoError(t, DefaultTuning().Validate())
}

func TestParseTuningOverlaysDefaults(t *testing.T) {
	tu, err := ParseTuning([]byte(`
player:
  speed: 300
wave:
  banner_time: 1.5
`))
	require.NoError(t, err)

	want := DefaultTuning()
	want.Player.Speed = 300
	want.Wave.BannerTime = 1.5
	assert.Equal(t, want, tu)
}

func TestParseTuningEmpty(t *testing.T) {
	tu, err := ParseTuning(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultTuning(), tu)
}

func TestParseTuningRejectsUnknownKeys(t *testing.T) {
	_, err := ParseTuning([]byte("player:\n  sped: 300\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode tuning")
}

func TestParseTuningReportsEveryProblem(t *testing.T) {
	_, err := ParseTuning([]byte(`
player:
  speed: 0
enemy:
  radius_min: 20
  radius_max: 10
effects:
  shake_decay: 1.5
`))
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "invalid tuning")
	assert.Contains(t, msg, "player.speed")
	assert.Contains(t, msg, "enemy.radius_max")
	assert.Contains(t, msg, "effects.shake_decay")
}

func TestLoadTuning(t *testing.T) {
	tu, err := LoadTuning("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTuning(), tu)

	_, err = LoadTuning(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, fs.ErrNotExist)

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("combat:\n  kill_score: 25\n"), 0o644))
	tu, err = LoadTuning(path)
	require.NoError(t, err)
	assert.Equal(t, 25, tu.Combat.KillScore)

	require.NoError(t, os.WriteFile(path, []byte("combat:\n  combo_reset_time: -1\n"), 0o644))
	_, err = LoadTuning(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}
