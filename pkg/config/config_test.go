package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/attendance/pkg/config"
)

func TestNew(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("ANNUAL_LEAVE_DAYS", "22.5")

	cfg, err := config.New("testdata/missing.env")
	require.NoError(t, err)

	require.Equal(t, 8080, cfg.HTTP.Port)
	require.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	require.Equal(t, "22.5", cfg.Attendance.AnnualLeaveDays.String())
	require.Equal(t, 15, cfg.Attendance.DefaultGraceMinutes)
	require.Equal(t, 12*time.Hour, cfg.JWT.AccessTokenTTL)
	require.Equal(t, 9*time.Hour, cfg.Attendance.WorkdayStartOffset())

	proxies, err := cfg.HTTP.TrustedPrefixes()
	require.NoError(t, err)
	require.Empty(t, proxies)
}

func TestHTTPConfig_TrustedPrefixes(t *testing.T) {
	h := config.HTTPConfig{TrustedProxies: []string{"10.0.0.0/8", " 192.168.1.7 ", "", "::1"}}

	prefixes, err := h.TrustedPrefixes()
	require.NoError(t, err)
	require.Len(t, prefixes, 3)
	require.Equal(t, "10.0.0.0/8", prefixes[0].String())
	require.Equal(t, "192.168.1.7/32", prefixes[1].String())
	require.Equal(t, "::1/128", prefixes[2].String())

	_, err = config.HTTPConfig{TrustedProxies: []string{"proxy.internal"}}.TrustedPrefixes()
	require.Error(t, err)
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing secret", map[string]string{"JWT_SECRET": ""}},
		{"bad workday start", map[string]string{"JWT_SECRET": "s", "WORKDAY_START": "9am"}},
		{"bad time zone", map[string]string{"JWT_SECRET": "s", "TIME_ZONE": "Mars/Olympus"}},
		{"grace too long", map[string]string{"JWT_SECRET": "s", "DEFAULT_GRACE_MINUTES": "121"}},
		{"bad trusted proxy", map[string]string{"JWT_SECRET": "s", "HTTP_TRUSTED_PROXIES": "10.0.0.0/33"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := config.New("testdata/missing.env")
			require.Error(t, err)
		})
	}
}

func TestNewNotifier(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("MAILER_HOST", "smtp.company.com")
	t.Setenv("MAILER_FROM", "noreply@company.com")

	cfg, err := config.NewNotifier("testdata/missing.env")
	require.NoError(t, err)
	require.Equal(t, 587, cfg.Mailer.Port)
	require.Equal(t, "send-notifications", cfg.Kafka.NotificationTopic)

	t.Setenv("MAILER_HOST", "")

	_, err = config.NewNotifier("testdata/missing.env")
	require.Error(t, err)
}
