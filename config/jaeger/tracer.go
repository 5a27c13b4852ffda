package jaeger

import (
	"io"
	"time"

	"Nestling.com/config"
	"github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"
	jaegercfg "github.com/uber/jaeger-client-go/config"
)

// Init 初始化全局tracer，gorm的opentracing插件会自动使用
func Init(service string) io.Closer {
	if service == "" {
		service = config.ConfigInfo.Jaeger.Service
	}
	cfg := jaegercfg.Configuration{
		ServiceName: service,
		Sampler: &jaegercfg.SamplerConfig{
			Type:  "const",
			Param: 1,
		},
		Reporter: &jaegercfg.ReporterConfig{
			LogSpans:            false,
			BufferFlushInterval: 1 * time.Second,
			LocalAgentHostPort:  config.ConfigInfo.Jaeger.Addr,
		},
	}

	tracer, closer, err := cfg.NewTracer()
	if err != nil {
		logrus.Errorf("failed to init jaeger tracer: %v", err)
		return io.NopCloser(nil)
	}
	opentracing.SetGlobalTracer(tracer)
	return closer
}
