package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadClean(t *testing.T, env map[string]string) *Config {
	t.Helper()
	for k, v := range env {
		os.Setenv(k, v)
		t.Cleanup(func() { os.Unsetenv(k) })
	}
	cfg, err := LoadWithOptions(LoadOptions{})
	require.NoError(t, err)
	return cfg
}

func TestLoadDefaults(t *testing.T) {
	cfg := loadClean(t, nil)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "touchpoint", cfg.Database.DBName)
	assert.Equal(t, "v24.0", cfg.Meta.APIVersion)
	assert.Equal(t, "live", cfg.OutboundMode)
	assert.False(t, cfg.IsMockOutbound())
	assert.Equal(t, ".virtu.academy", cfg.Cookies.Domain)
	assert.True(t, cfg.Cookies.Secure, "production default enables secure cookies")
}

func TestLoadOverrides(t *testing.T) {
	cfg := loadClean(t, map[string]string{
		"SERVER_PORT":                       "9999",
		"OUTBOUND_MODE":                     "mock",
		"ENVIRONMENT":                       "development",
		"ALLOWED_ORIGINS":                   "https://virtu.academy, https://www.virtu.academy",
		"ACUITY_TRIAL_APPOINTMENT_TYPE_IDS": "111, 222",
		"ACUITY_FIELD_VA_ATTRIB_ID":         "401",
		"META_CAPI_EVENT_NAMES":             "TRIAL_BOOKED=SubmitApplication,TRIAL_CANCELED=Cancel",
		"GOOGLE_ADS_CONVERSION_ACTIONS":     "TRIAL_BOOKED=987654",
		"GOOGLE_ADS_CONVERSION_TIMEZONE":    "America/New_York",
	})

	assert.Equal(t, 9999, cfg.Server.Port)
	assert.True(t, cfg.IsMockOutbound())
	assert.False(t, cfg.Cookies.Secure)
	assert.Equal(t, []string{"https://virtu.academy", "https://www.virtu.academy"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, int64(401), cfg.Acuity.FieldAttributionID)
	assert.Equal(t, "SubmitApplication", cfg.Meta.EventNames["TRIAL_BOOKED"])
	assert.Equal(t, "987654", cfg.GoogleAds.ConversionActions["TRIAL_BOOKED"])
	assert.Equal(t, "America/New_York", cfg.GoogleAds.TimeZone)
}

func TestIsTrialType(t *testing.T) {
	acuity := &AcuityConfig{TrialAppointmentTypeIDs: []string{"111", "222"}}

	assert.True(t, acuity.IsTrialType("111"))
	assert.True(t, acuity.IsTrialType("222"))
	assert.False(t, acuity.IsTrialType("333"))
	assert.False(t, acuity.IsTrialType(""))

	empty := &AcuityConfig{}
	assert.False(t, empty.IsTrialType("111"))
}

func TestParsePairs(t *testing.T) {
	assert.Empty(t, parsePairs(""))
	assert.Equal(t, map[string]string{"A": "1", "B": "2"}, parsePairs(" A=1 , B=2 "))
	// Malformed entries are dropped, valid ones kept
	assert.Equal(t, map[string]string{"A": "1"}, parsePairs("A=1,broken,=x,C="))
}
