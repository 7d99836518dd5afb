package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "MONGO_URI", "MONGO_DB", "JWT_EXPIRY", "MQTT_BROKER", "MQTT_TOPIC"} {
		os.Unsetenv(key)
	}

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "fieldops", cfg.MongoDB)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiry)
	assert.Empty(t, cfg.MQTTBroker)
	assert.Equal(t, "fieldops/toasts", cfg.MQTTTopic)
}

func TestLoad_Overrides(t *testing.T) {
	os.Setenv("PORT", "9090")
	os.Setenv("JWT_EXPIRY", "1h")
	defer os.Unsetenv("PORT")
	defer os.Unsetenv("JWT_EXPIRY")

	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, time.Hour, cfg.JWTExpiry)
}

func TestLoad_InvalidDurationFallsBack(t *testing.T) {
	os.Setenv("JWT_EXPIRY", "not-a-duration")
	defer os.Unsetenv("JWT_EXPIRY")

	cfg := Load()
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiry)
}
