package grpc

import (
	"context"
	"net"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"github.com/NiharGandhi/pent/internal/app"
	"github.com/NiharGandhi/pent/internal/logger"
	"github.com/NiharGandhi/pent/internal/rpc"
)

// traceIDKey is the metadata key carrying the trace id, the gRPC
// counterpart of the X-Trace-ID header.
const traceIDKey = "x-trace-id"

const maxTraceIDLength = 128

// Interceptors returns the unary interceptor chain in execution order.
func (h *Handler) Interceptors() []grpc.UnaryServerInterceptor {
	return []grpc.UnaryServerInterceptor{
		h.recoverInterceptor,
		h.traceIDInterceptor,
		h.loggingInterceptor,
		h.rateLimitInterceptor,
	}
}

func (h *Handler) recoverInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error().Str("method", info.FullMethod).Interface("panic", r).Msg("panic in gRPC handler")
			err = status.Error(codes.Internal, app.MsgInternalServerError)
		}
	}()

	return handler(ctx, req)
}

func (h *Handler) traceIDInterceptor(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	var traceID string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(traceIDKey); len(values) > 0 {
			traceID = values[0]
		}
	}
	if traceID == "" || len(traceID) > maxTraceIDLength {
		traceID = uuid.NewString()
	}

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})
	ctx = l.WithContext(ctx)

	_ = grpc.SetHeader(ctx, metadata.Pairs(traceIDKey, traceID))

	return handler(ctx, req)
}

func (h *Handler) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()

	resp, err := handler(ctx, req)

	logger.FromContext(ctx).Info().
		Str("method", info.FullMethod).
		Str("peer", peerAddress(ctx)).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}

// rateLimitInterceptor applies the per-IP limiter to every method except
// Version, mirroring the /api/user scope of the REST API.
func (h *Handler) rateLimitInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if h.limiter == nil || info.FullMethod == rpc.FullMethod(rpc.MethodVersion) {
		return handler(ctx, req)
	}

	ip := peerHost(ctx)
	allowed, retryAfter := h.limiter.Allow(ip)
	if !allowed {
		logger.FromContext(ctx).Warn().Str("client_ip", ip).Str("method", info.FullMethod).Msg("rate limit exceeded")
		h.metrics.RecordRateLimited(info.FullMethod)

		_ = grpc.SetTrailer(ctx, metadata.Pairs("retry-after", strconv.Itoa(int(retryAfter.Seconds()))))
		return nil, status.Error(codes.ResourceExhausted, app.MsgTooManyRequests)
	}

	return handler(ctx, req)
}

func peerAddress(ctx context.Context) string {
	p, ok := peer.FromContext(ctx)
	if !ok || p.Addr == nil {
		return ""
	}
	return p.Addr.String()
}

func peerHost(ctx context.Context) string {
	addr := peerAddress(ctx)
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return host
}
