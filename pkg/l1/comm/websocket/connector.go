package websocket

import (
	"context"
	"net/url"

	"golang.org/x/net/websocket"

	fx "github.com/robotalks/pixy.go/pkg/framework"
	"github.com/robotalks/pixy.go/pkg/l1"
	"github.com/robotalks/pixy.go/pkg/l1/comm"
)

// Connector implements l1.Connector by dialing a websocket Server.
// The controller is named in the URL (ws://host:port/l1?type=T&id=I).
type Connector struct {
	URL    string
	Origin string
	Ref    l1.ControllerRef
}

// NewConnector creates a Connector from a ws:// or wss:// URL.
func NewConnector(rawURL string) (*Connector, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}
	c := &Connector{Origin: "http://" + u.Host + "/"}
	c.Ref.Type = u.Query().Get("type")
	c.Ref.ID = u.Query().Get("id")
	if c.Ref.ID == "" {
		c.Ref.ID = u.Host
	}
	if u.Path == "" {
		u.Path = DefaultPath
	}
	u.RawQuery = ""
	c.URL = u.String()
	return c, nil
}

// Discover implements l1.Connector.
func (c *Connector) Discover(ctx context.Context) ([]l1.ControllerInfo, error) {
	conn, err := c.dial(ctx)
	if err != nil {
		return nil, err
	}
	conn.Close()
	return []l1.ControllerInfo{{Ref: c.Ref}}, nil
}

// Connect implements l1.Connector.
func (c *Connector) Connect(ctx context.Context, ref l1.ControllerRef) (l1.ControllerConn, error) {
	conn, err := c.dial(ctx)
	if err != nil {
		return nil, err
	}
	cc := &ControllerConn{Conn: conn}
	cc.Init(New(conn))
	return cc, nil
}

func (c *Connector) dial(ctx context.Context) (conn *websocket.Conn, err error) {
	err = fx.RunWithContext(ctx, func() (e error) {
		conn, e = websocket.Dial(c.URL, "", c.Origin)
		return
	})
	if err != nil {
		return nil, err
	}
	conn.PayloadType = websocket.BinaryFrame
	return conn, nil
}

// ControllerConn is a connection to a controller over websocket.
// It must be added to a loop to receive replies and events.
type ControllerConn struct {
	comm.ControllerConn
	Conn *websocket.Conn
}
