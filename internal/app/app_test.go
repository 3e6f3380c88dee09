package app

import (
	"testing"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func TestProviderHTTPClientIsInstrumented(t *testing.T) {
	t.Parallel()

	client := providerHTTPClient(5 * time.Second)
	if client.Timeout != 5*time.Second {
		t.Errorf("timeout = %s", client.Timeout)
	}
	if _, ok := client.Transport.(*otelhttp.Transport); !ok {
		t.Errorf("transport = %T, want otelhttp.Transport", client.Transport)
	}
}
