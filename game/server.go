package game

import (
	"context"
	"net"
	"net/http"
	"sync"

	"skirmish/game/domain"
)

type Server struct {
	HTTP *http.Server

	mu       sync.Mutex
	listener net.Listener
}

func NewServer(addr string, handler http.Handler) domain.Server {
	httpServer := &http.Server{
		Addr:    addr,
		Handler: handler,
	}
	return &Server{
		HTTP: httpServer,
	}
}

func (s *Server) Listen() error {
	ln, err := net.Listen("tcp", s.HTTP.Addr)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.listener = ln
	s.mu.Unlock()
	return nil
}

// Serve は Listen 済みならそのリスナーで、そうでなければ Addr をバインドして受け付けます。
func (s *Server) Serve() error {
	s.mu.Lock()
	ln := s.listener
	s.mu.Unlock()
	if ln == nil {
		return s.HTTP.ListenAndServe()
	}
	return s.HTTP.Serve(ln)
}

func (s *Server) Shutdown(ctx context.Context) error { return s.HTTP.Shutdown(ctx) }
func (s *Server) Close() error                       { return s.HTTP.Close() }

// Addr はバインド済みならその実アドレスを返します。
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.HTTP.Addr
}
