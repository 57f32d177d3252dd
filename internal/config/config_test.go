package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGlobalDefaults(t *testing.T) {
	conf := Global()

	assert.Equal(t, DriverPostgres, conf.Database.Driver)
	assert.Equal(t, 5432, conf.Database.Port)
	assert.Equal(t, 8080, conf.Server.Port)
	assert.Equal(t, "info", conf.Log.LogLevel)
	assert.Equal(t, 24*time.Hour, conf.Auth.TokenTTL)
	assert.Equal(t, int64(1), conf.Seed.AdminUID)
	assert.False(t, conf.Redis.Enabled)
}
