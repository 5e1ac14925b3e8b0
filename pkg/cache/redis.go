// Package cache holds the Redis connection and the running event read model.
package cache

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// RedisClient is the shared connection pool for the cache and session store.
type RedisClient struct {
	client *redis.Client
}

// NewRedisClient connects to url and fails fast when Redis does not answer a
// ping within two seconds.
func NewRedisClient(ctx context.Context, url string) (*RedisClient, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}
	applyPoolDefaults(opts)

	rdb := redis.NewClient(opts)
	rdb.AddHook(newTracingHook(otel.Tracer("runningevents/redis"), opts.Addr))

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return &RedisClient{client: rdb}, nil
}

func applyPoolDefaults(opts *redis.Options) {
	opts.PoolSize = 10
	opts.MinIdleConns = 2
	opts.MaxRetries = 3
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second
	// must exceed ReadTimeout
	opts.PoolTimeout = 4 * time.Second
}

// Ping is used by the health endpoint.
func (r *RedisClient) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

// Close releases the pool. It is safe on a zero RedisClient.
func (r *RedisClient) Close() error {
	if r.client == nil {
		return nil
	}
	if err := r.client.Close(); err != nil {
		return fmt.Errorf("redis close: %w", err)
	}
	return nil
}

// Client exposes the pool to the session store.
func (r *RedisClient) Client() *redis.Client {
	return r.client
}

// tracingHook wraps every command and pipeline in a client span.
// redis.Nil is a cache miss, not a failure.
type tracingHook struct {
	tracer trace.Tracer
	attrs  []attribute.KeyValue
}

func newTracingHook(tracer trace.Tracer, addr string) *tracingHook {
	return &tracingHook{
		tracer: tracer,
		attrs: []attribute.KeyValue{
			attribute.String("db.system", "redis"),
			attribute.String("server.address", addr),
		},
	}
}

func (h *tracingHook) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		ctx, span := h.start(ctx, "redis.dial")
		defer span.End()
		conn, err := next(ctx, network, addr)
		recordRedisErr(span, err)
		return conn, err
	}
}

func (h *tracingHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		ctx, span := h.start(ctx, "redis."+cmd.Name())
		defer span.End()
		err := next(ctx, cmd)
		recordRedisErr(span, err)
		return err
	}
}

func (h *tracingHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		ctx, span := h.start(ctx, "redis.pipeline", attribute.Int("db.redis.pipeline_length", len(cmds)))
		defer span.End()
		err := next(ctx, cmds)
		recordRedisErr(span, err)
		return err
	}
}

func (h *tracingHook) start(ctx context.Context, name string, extra ...attribute.KeyValue) (context.Context, trace.Span) {
	return h.tracer.Start(ctx, name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(h.attrs...),
		trace.WithAttributes(extra...),
	)
}

func recordRedisErr(span trace.Span, err error) {
	if err == nil || errors.Is(err, redis.Nil) {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
