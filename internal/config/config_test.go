package config

import (
	"os"
	"testing"
	"time"
	_ "time/tzdata"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "LOG_LEVEL", "BOSSDLE_TIMEZONE", "BOSSDLE_EPOCH", "BOSSDLE_DAY_OFFSET", "BOSSDLE_STORE", "BOSSDLE_ROLLOVER_INTERVAL"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	c, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv() error = %v", err)
	}
	if c.Port != "5175" || c.StoreEngine != "sqlite" || c.RolloverInterval != time.Second {
		t.Errorf("unexpected defaults: %+v", c)
	}
	if c.Location().String() != "America/New_York" {
		t.Errorf("Location = %v", c.Location())
	}
	if y, m, d := c.Epoch().Date(); y != 2025 || m != time.October || d != 17 {
		t.Errorf("Epoch = %v", c.Epoch())
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("BOSSDLE_TIMEZONE", "Europe/London")
	t.Setenv("BOSSDLE_EPOCH", "2024-02-29")
	t.Setenv("BOSSDLE_DAY_OFFSET", "-2")
	t.Setenv("BOSSDLE_ROLLOVER_INTERVAL", "30s")
	c, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv() error = %v", err)
	}
	if c.DayOffset != -2 || c.RolloverInterval != 30*time.Second || c.Location().String() != "Europe/London" {
		t.Errorf("overrides not applied: %+v", c)
	}
}

func TestFromEnvInvalid(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{name: "bad zone", key: "BOSSDLE_TIMEZONE", value: "Mars/Olympus"},
		{name: "bad epoch", key: "BOSSDLE_EPOCH", value: "17/10/2025"},
		{name: "interval too long", key: "BOSSDLE_ROLLOVER_INTERVAL", value: "5m"},
		{name: "bad offset", key: "BOSSDLE_DAY_OFFSET", value: "one"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := FromEnv(); err == nil {
				t.Errorf("FromEnv() with %s=%q: expected error", tt.key, tt.value)
			}
		})
	}
}
