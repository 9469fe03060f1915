package pools

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"lapswim-service/internal/app/config"
)

const poolsJSON = `[
  {
    "id": "balboa",
    "name": "Balboa Pool",
    "city": "San Francisco",
    "address": "San Jose & Havelock, San Francisco, CA 94112",
    "scheduleUrl": "https://example.org/balboa.pdf",
    "detailsUrl": "https://example.org/balboa"
  },
  {
    "id": "north-beach",
    "name": "North Beach Pool",
    "city": "San Francisco",
    "address": "Lombard & Mason, San Francisco, CA 94133",
    "scheduleUrl": "",
    "detailsUrl": "https://example.org/north-beach"
  }
]`

func writePoolsFile(t *testing.T, content string) *config.InternalConfig {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pools.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return &config.InternalConfig{
		Schedule: config.Schedule{PoolsConfigFile: path},
	}
}

func TestPoolFileRepository(t *testing.T) {
	logger := zap.NewNop()

	t.Run("Loads Registry In File Order", func(t *testing.T) {
		repo, err := NewPoolFileRepository(writePoolsFile(t, poolsJSON), logger)
		require.NoError(t, err)

		pools, err := repo.FindAll(context.Background())
		require.NoError(t, err)
		require.Len(t, pools, 2)
		assert.Equal(t, "balboa", pools[0].ID)
		assert.Equal(t, "north-beach", pools[1].ID)
		assert.Equal(t, "https://example.org/balboa.pdf", pools[0].ScheduleURL)
		assert.Empty(t, pools[1].ScheduleURL)
	})

	t.Run("FindByID", func(t *testing.T) {
		repo, err := NewPoolFileRepository(writePoolsFile(t, poolsJSON), logger)
		require.NoError(t, err)

		pool, err := repo.FindByID(context.Background(), "balboa")
		require.NoError(t, err)
		assert.Equal(t, "Balboa Pool", pool.Name)

		_, err = repo.FindByID(context.Background(), "unknown")
		assert.Error(t, err)
	})

	t.Run("Missing File", func(t *testing.T) {
		cfg := &config.InternalConfig{
			Schedule: config.Schedule{PoolsConfigFile: "does/not/exist.json"},
		}
		_, err := NewPoolFileRepository(cfg, logger)
		assert.Error(t, err)
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		_, err := NewPoolFileRepository(writePoolsFile(t, "{not json"), logger)
		assert.Error(t, err)
	})
}

func TestManualScheduleFileRepository(t *testing.T) {
	logger := zap.NewNop()

	t.Run("Loads Overrides", func(t *testing.T) {
		manualJSON := `{
  "brisbane": {
    "lapSwimSessions": [
      {"days": ["MONDAY"], "times": ["6:00-9:00"], "notes": "weekdays"}
    ]
  }
}`
		path := filepath.Join(t.TempDir(), "manual_schedules.json")
		require.NoError(t, os.WriteFile(path, []byte(manualJSON), 0o644))
		cfg := &config.InternalConfig{
			Schedule: config.Schedule{ManualSchedulesFile: path},
		}

		repo, err := NewManualScheduleFileRepository(cfg, logger)
		require.NoError(t, err)

		manual, ok := repo.FindByPoolID("brisbane")
		require.True(t, ok)
		require.Len(t, manual.LapSwimSessions, 1)
		assert.Equal(t, []string{"6:00-9:00"}, manual.LapSwimSessions[0].Times)

		_, ok = repo.FindByPoolID("balboa")
		assert.False(t, ok)
	})

	t.Run("Missing File Means No Overrides", func(t *testing.T) {
		cfg := &config.InternalConfig{
			Schedule: config.Schedule{ManualSchedulesFile: filepath.Join(t.TempDir(), "absent.json")},
		}

		repo, err := NewManualScheduleFileRepository(cfg, logger)
		require.NoError(t, err)

		_, ok := repo.FindByPoolID("brisbane")
		assert.False(t, ok)
	})
}
