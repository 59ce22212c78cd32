// Package telemetry exports application metrics over OTLP/HTTP.
package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

type Metrics struct {
	HTTPRequests    metric.Int64Counter
	RequestDuration metric.Float64Histogram
	OrdersCreated   metric.Int64Counter
	RevenueTotal    metric.Float64Counter
	ProductsViewed  metric.Int64Counter

	provider *sdkmetric.MeterProvider
}

// Init builds a meter provider with a periodic OTLP reader and registers the
// application instruments. An empty endpoint leaves metrics disabled.
func Init(ctx context.Context, endpoint, serviceName string) (*Metrics, error) {
	if endpoint == "" {
		return nil, nil
	}

	exporter, err := otlpmetrichttp.New(ctx,
		otlpmetrichttp.WithEndpoint(endpoint),
		otlpmetrichttp.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("otlp exporter: %w", err)
	}

	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(serviceName)))
	if err != nil {
		return nil, fmt.Errorf("otel resource: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(10*time.Second))),
	)
	otel.SetMeterProvider(provider)
	meter := provider.Meter(serviceName)

	m := &Metrics{provider: provider}

	if m.HTTPRequests, err = meter.Int64Counter("http.server.request.count",
		metric.WithDescription("Total number of HTTP requests"), metric.WithUnit("1")); err != nil {
		return nil, err
	}
	if m.RequestDuration, err = meter.Float64Histogram("http.server.request.duration",
		metric.WithDescription("HTTP request duration in milliseconds"), metric.WithUnit("ms")); err != nil {
		return nil, err
	}
	if m.OrdersCreated, err = meter.Int64Counter("orders_created_total",
		metric.WithDescription("Total number of orders created"), metric.WithUnit("1")); err != nil {
		return nil, err
	}
	if m.RevenueTotal, err = meter.Float64Counter("revenue_total",
		metric.WithDescription("Total revenue captured at checkout"), metric.WithUnit("USD")); err != nil {
		return nil, err
	}
	if m.ProductsViewed, err = meter.Int64Counter("products_viewed_total",
		metric.WithDescription("Total number of product detail views"), metric.WithUnit("1")); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *Metrics) Shutdown(ctx context.Context) error {
	if m == nil {
		return nil
	}
	return m.provider.Shutdown(ctx)
}
