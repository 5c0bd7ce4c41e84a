package otel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func Test_InitializeTracerDisabled(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	tp, err := InitializeTracer(context.Background(), "test")
	require.NoError(t, err)
	assert.Nil(t, tp)
	assert.Equal(t, otel.GetTracerProvider(), Provider(tp))
}
