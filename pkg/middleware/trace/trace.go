package trace

import (
	"context"
	"time"

	"github.com/tripal/tripal-blast/pkg/middleware/logger"
	"go.opentelemetry.io/contrib/instrumentation/host"
	"go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

type InitConfig struct {
	ServiceName    string
	Version        string
	TraceEndpoint  string
	MetricEndpoint string
}

var (
	tracerProvider *sdktrace.TracerProvider
	meterProvider  *sdkmetric.MeterProvider
)

// InitTrace installs the global tracer and meter providers. Empty endpoints leave
// the corresponding provider as the otel no-op default.
func InitTrace(ctx context.Context, conf *InitConfig) {
	res := resource.NewSchemaless(
		attribute.String("service.name", conf.ServiceName),
		attribute.String("service.version", conf.Version),
	)

	if conf.TraceEndpoint != "" {
		exp, err := otlptracegrpc.New(ctx,
			otlptracegrpc.WithEndpoint(conf.TraceEndpoint),
			otlptracegrpc.WithInsecure())
		if err != nil {
			logger.Errorf(ctx, "init trace exporter err: %+v", err)
		} else {
			tracerProvider = sdktrace.NewTracerProvider(
				sdktrace.WithBatcher(exp),
				sdktrace.WithResource(res))
			otel.SetTracerProvider(tracerProvider)
			otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
				propagation.TraceContext{}, propagation.Baggage{}))
		}
	}

	if conf.MetricEndpoint != "" {
		exp, err := otlpmetricgrpc.New(ctx,
			otlpmetricgrpc.WithEndpoint(conf.MetricEndpoint),
			otlpmetricgrpc.WithInsecure())
		if err != nil {
			logger.Errorf(ctx, "init metric exporter err: %+v", err)
			return
		}
		meterProvider = sdkmetric.NewMeterProvider(
			sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp, sdkmetric.WithInterval(30*time.Second))),
			sdkmetric.WithResource(res))
		otel.SetMeterProvider(meterProvider)
		if err := host.Start(); err != nil {
			logger.Errorf(ctx, "start host metrics err: %+v", err)
		}
		if err := runtime.Start(); err != nil {
			logger.Errorf(ctx, "start runtime metrics err: %+v", err)
		}
	}
}

func CloseTrace() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if tracerProvider != nil {
		if err := tracerProvider.Shutdown(ctx); err != nil {
			logger.Errorf(ctx, "shutdown tracer provider err: %+v", err)
		}
	}
	if meterProvider != nil {
		if err := meterProvider.Shutdown(ctx); err != nil {
			logger.Errorf(ctx, "shutdown meter provider err: %+v", err)
		}
	}
}
