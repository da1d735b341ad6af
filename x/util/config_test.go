package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigLoad(t *testing.T) {

	yaml := `
server:
  dsn: "host=localhost user=postgres password=secret dbname=taverna"
  redisAddr: "localhost:6379"
  memcachedAddr: "localhost:11211"
  listenAddr: ":10000"
assistant:
  endpoint: "https://api.example.com/v1/chat/completions"
  apikey: "sk-test"
  model: "gpt-4o-mini"
`

	path := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(path, []byte(yaml), 0644)
	assert.NoError(t, err)

	var config Config
	err = config.Load(path)
	if assert.NoError(t, err) {
		assert.Equal(t, "localhost:6379", config.Server.RedisAddr)
		assert.Equal(t, ":10000", config.Server.ListenAddr)
		assert.Equal(t, "gpt-4o-mini", config.Assistant.Model)
		assert.Equal(t, "sk-test", config.Assistant.APIKey)
		assert.False(t, config.Server.EnableTrace)
	}
}
