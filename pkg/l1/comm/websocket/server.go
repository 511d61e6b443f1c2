package websocket

import (
	"context"
	"net"
	"net/http"

	"github.com/golang/glog"
	"golang.org/x/net/websocket"

	fx "github.com/robotalks/pixy.go/pkg/framework"
	"github.com/robotalks/pixy.go/pkg/l1/comm"
)

// DefaultPath is the HTTP path serving L1 messages.
const DefaultPath = "/l1"

// Server serves L1 messages to websocket clients.
type Server struct {
	Addr string
	Path string
	Hub  *comm.Hub

	listener net.Listener
}

// NewServer creates a Server listening on addr.
func NewServer(addr string) *Server {
	return &Server{Addr: addr, Path: DefaultPath, Hub: comm.NewHub()}
}

// Handler returns the http.Handler for websocket upgrades.
// Connections live until ctx is canceled or the client leaves.
func (s *Server) Handler(ctx context.Context) http.Handler {
	return websocket.Server{Handler: func(conn *websocket.Conn) {
		conn.PayloadType = websocket.BinaryFrame
		err := s.Hub.Serve(ctx, New(conn))
		glog.V(1).Infof("websocket client %s disconnected: %v", conn.Request().RemoteAddr, err)
	}}
}

// Listen starts listening. It's called by Run if not called before.
func (s *Server) Listen() error {
	if s.listener != nil {
		return nil
	}
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	s.listener = ln
	return nil
}

// ListenAddr returns the actual address listening on.
func (s *Server) ListenAddr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// SendEvent implements Registrar.
func (s *Server) SendEvent(ctx context.Context, msg fx.Message) error {
	return s.Hub.SendEvent(ctx, msg)
}

// AddToLoop implements LoopAdder.
func (s *Server) AddToLoop(loop *fx.Loop) {
	loop.Add(s.Hub)
	loop.AddRunnable(s)
}

// Run implements Runnable.
func (s *Server) Run(ctx context.Context) error {
	if err := s.Listen(); err != nil {
		return err
	}
	path := s.Path
	if path == "" {
		path = DefaultPath
	}
	mux := http.NewServeMux()
	mux.Handle(path, s.Handler(ctx))
	server := &http.Server{Handler: mux}
	glog.Infof("websocket listening on %s%s", s.listener.Addr(), path)
	return fx.RunWithContextCancel(ctx, func() { server.Close() }, func() error {
		return server.Serve(s.listener)
	})
}
