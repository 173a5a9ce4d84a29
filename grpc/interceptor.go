package grpc

import (
	context "context"
	"log"
	"time"

	"github.com/google/uuid"
	grpc_base "google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const requestIdHeader = "x-request-id"

type requestIdKey struct{}

// requestLogger tags every call with a request id, returned to the client
// as a header, and logs the outcome.
func requestLogger(ctx context.Context, req interface{}, info *grpc_base.UnaryServerInfo, handler grpc_base.UnaryHandler) (interface{}, error) {
	id := uuid.NewString()
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if ids := md.Get(requestIdHeader); len(ids) > 0 && ids[0] != "" {
			id = ids[0]
		}
	}
	grpc_base.SetHeader(ctx, metadata.Pairs(requestIdHeader, id))
	start := time.Now()
	resp, err := handler(context.WithValue(ctx, requestIdKey{}, id), req)
	log.Printf("[%s] %s %s %v", id, info.FullMethod, status.Code(err), time.Since(start))
	return resp, err
}

func requestId(ctx context.Context) string {
	id, _ := ctx.Value(requestIdKey{}).(string)
	return id
}
