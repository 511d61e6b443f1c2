package stream

import (
	"context"
	"net"
	"net/url"

	"github.com/robotalks/pixy.go/pkg/l1"
	"github.com/robotalks/pixy.go/pkg/l1/comm"
)

// Connector implements l1.Connector by dialing a Server directly.
// A TCP server hosts exactly one controller, so Discover reports the
// controller named in the URL (tcp://host:port?type=T&id=I).
type Connector struct {
	Addr string
	Ref  l1.ControllerRef

	dialer net.Dialer
}

// NewConnector creates a Connector from a tcp:// URL.
func NewConnector(rawURL string) (*Connector, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}
	c := &Connector{Addr: u.Host}
	c.Ref.Type = u.Query().Get("type")
	c.Ref.ID = u.Query().Get("id")
	if c.Ref.ID == "" {
		c.Ref.ID = u.Host
	}
	return c, nil
}

// Discover implements l1.Connector.
func (c *Connector) Discover(ctx context.Context) ([]l1.ControllerInfo, error) {
	conn, err := c.dialer.DialContext(ctx, "tcp", c.Addr)
	if err != nil {
		return nil, err
	}
	conn.Close()
	return []l1.ControllerInfo{{Ref: c.Ref}}, nil
}

// Connect implements l1.Connector.
func (c *Connector) Connect(ctx context.Context, ref l1.ControllerRef) (l1.ControllerConn, error) {
	conn, err := c.dialer.DialContext(ctx, "tcp", c.Addr)
	if err != nil {
		return nil, err
	}
	cc := &ControllerConn{Conn: conn}
	cc.Init(New(conn))
	return cc, nil
}

// ControllerConn is a connection to a controller over TCP.
// It must be added to a loop to receive replies and events.
type ControllerConn struct {
	comm.ControllerConn
	Conn net.Conn
}
