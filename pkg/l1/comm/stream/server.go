package stream

import (
	"context"
	"net"

	"github.com/golang/glog"

	fx "github.com/robotalks/pixy.go/pkg/framework"
	"github.com/robotalks/pixy.go/pkg/l1/comm"
)

// Server accepts TCP connections and serves L1 messages
// over length-prefixed packets.
type Server struct {
	Addr string
	Hub  *comm.Hub

	listener net.Listener
}

// NewServer creates a Server listening on addr.
func NewServer(addr string) *Server {
	return &Server{Addr: addr, Hub: comm.NewHub()}
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
	glog.Infof("tcp listening on %s", s.listener.Addr())
	return fx.RunWithContextCloser(ctx, s.listener, func() error {
		for {
			conn, err := s.listener.Accept()
			if err != nil {
				return err
			}
			glog.V(1).Infof("tcp client %s connected", conn.RemoteAddr())
			go func(conn net.Conn) {
				err := s.Hub.Serve(ctx, New(conn))
				glog.V(1).Infof("tcp client %s disconnected: %v", conn.RemoteAddr(), err)
			}(conn)
		}
	})
}
