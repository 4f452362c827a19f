package telemetry

import (
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"message-board/internal/config"

	"go.elastic.co/apm/module/apmchiv5/v2"
	"go.elastic.co/apm/v2"
	"go.elastic.co/apm/v2/transport"
)

// Tracer instruments inbound requests. It is selected once at startup: a
// no-op when no APM server is configured, Elastic APM otherwise.
type Tracer interface {
	Middleware(next http.Handler) http.Handler

	Close()
}

type noopTracer struct{}

func (noopTracer) Middleware(next http.Handler) http.Handler {
	return next
}

func (noopTracer) Close() {}

type apmTracer struct {
	tracer     *apm.Tracer
	middleware func(http.Handler) http.Handler
}

func (t *apmTracer) Middleware(next http.Handler) http.Handler {
	return t.middleware(next)
}

func (t *apmTracer) Close() {
	t.tracer.Flush(nil)
	t.tracer.Close()
}

func New(cfg config.APMConfig) (Tracer, error) {
	if !cfg.Enabled() {
		slog.Info("apm server url not set, telemetry disabled")
		return noopTracer{}, nil
	}

	serverURL, err := url.Parse(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid apm server url '%s': %w", cfg.ServerURL, err)
	}

	httpTransport, err := transport.NewHTTPTransport(transport.HTTPTransportOptions{
		ServerURLs:      []*url.URL{serverURL},
		SecretToken:     cfg.SecretToken,
		TLSClientConfig: &tls.Config{InsecureSkipVerify: !bool(cfg.VerifyServerCert)}, //nolint:gosec
	})
	if err != nil {
		return nil, fmt.Errorf("error creating apm transport: %w", err)
	}

	tracer, err := apm.NewTracerOptions(apm.TracerOptions{
		ServiceName:        cfg.ServiceName,
		ServiceEnvironment: cfg.Environment,
		Transport:          httpTransport,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating apm tracer: %w", err)
	}

	slog.Info("apm telemetry enabled", "server_url", serverURL.Redacted(), "service", cfg.ServiceName, "environment", cfg.Environment)

	return &apmTracer{
		tracer:     tracer,
		middleware: apmchiv5.Middleware(apmchiv5.WithTracer(tracer)),
	}, nil
}
