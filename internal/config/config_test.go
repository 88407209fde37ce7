package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads the config file", func(t *testing.T) {
		// Given: a config file overriding the game settings
		path := writeConfig(t, `
log-level: debug
game:
  board-size: 4
  max-depth: 3
  max-board-size: 5
  parallel: true
cache:
  driver: redis
redis:
  host: cache
  port: "6380"
  ttl: 1h
`)

		// When: loading it
		conf, err := Load(path)

		// Then: the values should be applied
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, Game{BoardSize: 4, MaxDepth: 3, MaxBoardSize: 5, Parallel: true}, conf.Game)
		assert.Equal(t, CacheRedis, conf.Cache.Driver)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, time.Hour, conf.Redis.TTL)
	})

	t.Run("Uses defaults without a file", func(t *testing.T) {
		// When: loading a path that does not exist
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: defaults should be used
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, 0, conf.Game.BoardSize)
		assert.Equal(t, 6, conf.Game.MaxDepth)
		assert.Equal(t, 7, conf.Game.MaxBoardSize)
		assert.Equal(t, CacheMemory, conf.Cache.Driver)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, 24*time.Hour, conf.Redis.TTL)
	})

	t.Run("Environment overrides defaults", func(t *testing.T) {
		t.Setenv("GAME_MAX_DEPTH", "4")

		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		require.NoError(t, err)
		assert.Equal(t, 4, conf.Game.MaxDepth)
	})

	t.Run("Rejects invalid values", func(t *testing.T) {
		path := writeConfig(t, `
game:
  board-size: 9
  max-board-size: 5
`)

		_, err := Load(path)

		require.ErrorIs(t, err, ErrInvalidConfig)
		assert.Panics(t, func() { MustLoad(path) })
	})
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Game:  Game{BoardSize: 3, MaxDepth: 6, MaxBoardSize: 7},
			Cache: Cache{Driver: CacheMemory},
		}
	}

	require.NoError(t, valid().Validate())

	conf := valid()
	conf.Game.MaxDepth = 0
	require.ErrorIs(t, conf.Validate(), ErrInvalidConfig)

	conf = valid()
	conf.Game.MaxBoardSize = 0
	require.ErrorIs(t, conf.Validate(), ErrInvalidConfig)

	conf = valid()
	conf.Game.BoardSize = -1
	require.ErrorIs(t, conf.Validate(), ErrInvalidConfig)

	conf = valid()
	conf.Cache.Driver = "memcached"
	require.ErrorIs(t, conf.Validate(), ErrInvalidConfig)
}
