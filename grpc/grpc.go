package grpc

import (
	context "context"
	"log"
	"net"

	"github.com/JustDean/sessionstore/pkg/session"
	grpc_base "google.golang.org/grpc"
)

func SetServer(c Config, store *session.Store) (*Server, error) {
	lis, err := net.Listen("tcp", c.url())
	if err != nil {
		return nil, err
	}
	return newServer(lis, store), nil
}

func newServer(lis net.Listener, store *session.Store) *Server {
	s := grpc_base.NewServer(grpc_base.UnaryInterceptor(requestLogger))
	server := &Server{
		l:     lis,
		s:     s,
		store: store,
	}
	RegisterSessionsServer(s, server)
	return server
}

type Server struct {
	UnimplementedSessionsServer
	l     net.Listener
	s     *grpc_base.Server
	store *session.Store
}

func (s *Server) Run(ctx context.Context) {
	log.Printf("Starting gRPC Server on %s", s.l.Addr())
	go func() {
		if err := s.s.Serve(s.l); err != nil {
			log.Printf("gRPC Server stopped serving: %v", err)
		}
	}()
	<-ctx.Done()
	log.Println("Stopping gRPC Server")
	s.s.GracefulStop()
	log.Println("gRPC Server is stopped")
}
