package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMerge_FillsOnlyEmptyFields(t *testing.T) {
	c := Config{
		ServerPort: ":9090",
		DBUsername: "env_user",
	}

	c.merge(Config{
		ServerPort:    ":8080",
		DBUsername:    "file_user",
		DBPassword:    "file_pass",
		DBHost:        "db.internal",
		DBName:        "hrm",
		RedisAddr:     "redis.internal:6379",
		MediaBasePath: "/srv/media",
	})

	// Values already set by the environment win.
	assert.Equal(t, ":9090", c.ServerPort)
	assert.Equal(t, "env_user", c.DBUsername)

	// Empty fields are filled from the file.
	assert.Equal(t, "file_pass", c.DBPassword)
	assert.Equal(t, "db.internal", c.DBHost)
	assert.Equal(t, "hrm", c.DBName)
	assert.Equal(t, "redis.internal:6379", c.RedisAddr)
	assert.Equal(t, "/srv/media", c.MediaBasePath)
}

func TestMerge_DisableTLS(t *testing.T) {
	var c Config
	c.merge(Config{DisableTLS: true})
	assert.True(t, c.DisableTLS)

	c = Config{DisableTLS: true}
	c.merge(Config{DisableTLS: false})
	assert.True(t, c.DisableTLS)
}
