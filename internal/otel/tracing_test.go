package otel

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/logging"
)

func TestInit_Disabled(t *testing.T) {
	t.Setenv("OTEL_SDK_DISABLED", "true")
	var buf bytes.Buffer

	shutdown, err := Init(context.Background(), logging.New(&buf, "info", time.UTC))

	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
	assert.Contains(t, buf.String(), `"tracing_enabled":false`)
}

func TestInit_UnsupportedProtocolDegrades(t *testing.T) {
	t.Setenv("OTEL_SDK_DISABLED", "false")
	t.Setenv("OTEL_EXPORTER_OTLP_PROTOCOL", "carrier-pigeon")
	var buf bytes.Buffer

	shutdown, err := Init(context.Background(), logging.New(&buf, "info", time.UTC))

	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
	assert.Contains(t, buf.String(), "tracing_init_failed")
}

func TestSamplerFromEnv(t *testing.T) {
	t.Setenv("OTEL_TRACES_SAMPLER", "")
	t.Setenv("OTEL_TRACES_SAMPLER_ARG", "")

	name, arg, s := samplerFromEnv()
	assert.Equal(t, "parentbased_traceidratio", name)
	assert.Equal(t, "1.0", arg)
	assert.Contains(t, s.Description(), "ParentBased")

	t.Setenv("OTEL_TRACES_SAMPLER", "traceidratio")
	t.Setenv("OTEL_TRACES_SAMPLER_ARG", "0.25")
	_, _, s = samplerFromEnv()
	assert.Equal(t, "TraceIDRatioBased{0.25}", s.Description())

	// an unusable ratio falls back to 1, which the SDK samples as always-on
	t.Setenv("OTEL_TRACES_SAMPLER_ARG", "nonsense")
	_, _, s = samplerFromEnv()
	assert.Equal(t, "AlwaysOnSampler", s.Description())

	t.Setenv("OTEL_TRACES_SAMPLER", "always_off")
	_, _, s = samplerFromEnv()
	assert.Equal(t, "AlwaysOffSampler", s.Description())
}
