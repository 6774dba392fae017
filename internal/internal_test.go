package internal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateEnvDefaults(t *testing.T) {
	require.NoError(t, ValidateEnv())
	require.Equal(t, "development", Env)
	require.Equal(t, "info", LogLevel)
	require.Equal(t, uint16(50051), Port)
	require.NotEmpty(t, Understanding)
}

func TestValidateEnvRejectsBadValues(t *testing.T) {
	t.Setenv("ADSTREAM_LOG_LEVEL", "verbose")
	require.Error(t, ValidateEnv())

	t.Setenv("ADSTREAM_LOG_LEVEL", "debug")
	t.Setenv("ADSTREAM_PORT", "notaport")
	require.Error(t, ValidateEnv())

	t.Setenv("ADSTREAM_PORT", "0")
	require.Error(t, ValidateEnv())

	t.Setenv("ADSTREAM_PORT", "50052")
	require.NoError(t, ValidateEnv())
	require.Equal(t, uint16(50052), Port)
	require.Equal(t, "debug", LogLevel)
}
