package cmd

import (
	"bytes"
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestMissingAPIKey(t *testing.T) {
	os.Unsetenv(EnvAPIKey)

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetArgs([]string{"--city", "London", "--country", "United Kingdom"})

	err := RootCmd.Execute()
	require.Error(t, err)
	require.Contains(t, err.Error(), "API key is required")
	require.NotContains(t, out.String(), "Fetching price data")
}

func TestAPIKeyPrecedence(t *testing.T) {
	os.Setenv(EnvAPIKey, "env-key")
	defer os.Unsetenv(EnvAPIKey)

	require.Equal(t, "env-key", viper.GetString("api-key"))

	require.NoError(t, RootCmd.Flags().Set("api-key", "flag-key"))
	require.Equal(t, "flag-key", viper.GetString("api-key"))
}
