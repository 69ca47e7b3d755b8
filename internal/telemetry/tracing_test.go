package telemetry_test

import (
	"context"
	"testing"

	"github.com/clothingmenvy-dot/menvy-client/internal/config"
	"github.com/clothingmenvy-dot/menvy-client/internal/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestSetup(t *testing.T) {
	ctx := context.Background()

	t.Run("Disabled without endpoint", func(t *testing.T) {
		shutdown, err := telemetry.Setup(ctx, config.Otel{ServiceName: "menvy-console"})

		require.NoError(t, err)
		assert.NoError(t, shutdown(ctx))
	})

	t.Run("Success - Provider installed with endpoint", func(t *testing.T) {
		shutdown, err := telemetry.Setup(ctx, config.Otel{
			ServiceName:      "menvy-console",
			ExporterEndpoint: "http://127.0.0.1:4318",
			SamplerRatio:     1,
		})

		require.NoError(t, err)
		assert.IsType(t, &sdktrace.TracerProvider{}, otel.GetTracerProvider())
		assert.NoError(t, shutdown(ctx))
	})
}
