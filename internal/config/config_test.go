package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tdex-network/tdex-timelock/internal/config"
)

func TestInitConfig(t *testing.T) {
	datadir := t.TempDir()
	t.Setenv("TIMELOCK_DATADIR", datadir)
	t.Setenv("TIMELOCK_ENABLE_PROFILER", "true")

	require.NoError(t, config.InitConfig())

	require.Equal(t, 9000, config.GetInt(config.ListeningPortKey))
	require.Equal(t, 9001, config.GetInt(config.OperatorListeningPortKey))
	require.Equal(t, "127.0.0.1", config.GetString(config.OperatorListeningHostKey))
	require.Equal(t, "badger", config.GetString(config.DBTypeKey))
	require.Equal(t, 4, config.GetInt(config.LogLevelKey))
	require.Equal(t, 50, config.GetInt(config.WebhookRateLimitKey))
	require.Equal(t, "timelock-escrow", config.GetString(config.EscrowAccountKey))
	require.False(t, config.GetBool(config.SimulatedClockKey))

	for _, dir := range []string{
		config.DbLocation, config.ProfilerLocation, config.TLSLocation,
	} {
		info, err := os.Stat(filepath.Join(datadir, dir))
		require.NoError(t, err)
		require.True(t, info.IsDir())
	}
}

func TestInitConfigFailing(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "unknown_db_type",
			env:  map[string]string{"TIMELOCK_DB_TYPE": "postgres"},
		},
		{
			name: "shared_listening_port",
			env:  map[string]string{"TIMELOCK_OPERATOR_LISTENING_PORT": "9000"},
		},
		{
			name: "non_positive_rate_limit",
			env:  map[string]string{"TIMELOCK_WEBHOOK_RATE_LIMIT": "0"},
		},
		{
			name: "initial_supply_without_account",
			env:  map[string]string{"TIMELOCK_TOKEN_INITIAL_SUPPLY": "100"},
		},
		{
			name: "initial_supply_to_escrow",
			env: map[string]string{
				"TIMELOCK_TOKEN_INITIAL_SUPPLY":         "100",
				"TIMELOCK_TOKEN_INITIAL_SUPPLY_ACCOUNT": "timelock-escrow",
			},
		},
		{
			name: "invalid_extra_ip",
			env:  map[string]string{"TIMELOCK_TLS_EXTRA_IP": "localhost"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TIMELOCK_DATADIR", t.TempDir())
			for key, value := range tt.env {
				t.Setenv(key, value)
			}
			require.Error(t, config.InitConfig())
		})
	}
}
