// Package client implements the thin stub used by CLI commands to issue
// single request/response RPCs to the daemon over loopback TCP, one
// connection per request.
package client

import (
	"fmt"
	"net"
	"time"

	"github.com/pkg/errors"

	"github.com/boardmirror/boardmirror/pkg/protocol"
)

// readTimeout bounds how long a client waits for a response before
// concluding the daemon is unreachable or dead.
const readTimeout = time.Second

// Client issues one RPC at a time against a daemon listening on a known
// port. It holds no persistent connection; Send dials, writes, reads, and
// closes for each call.
type Client struct {
	port uint16
}

// New returns a client targeting the daemon bound to the given port.
func New(port uint16) *Client {
	return &Client{port: port}
}

// Send dials the daemon, writes request, reads back exactly one response,
// and closes the connection.
func (c *Client) Send(request protocol.Request) (protocol.Response, error) {
	conn, err := net.DialTimeout("tcp", fmt.Sprintf("127.0.0.1:%d", c.port), readTimeout)
	if err != nil {
		return protocol.Response{}, errors.Wrap(err, "unable to connect to daemon")
	}
	defer conn.Close()

	if err := conn.SetDeadline(time.Now().Add(readTimeout)); err != nil {
		return protocol.Response{}, errors.Wrap(err, "unable to set connection deadline")
	}

	if err := protocol.WriteRequest(conn, request); err != nil {
		return protocol.Response{}, errors.Wrap(err, "unable to send request")
	}

	response, err := protocol.ReadResponse(conn)
	if err != nil {
		return protocol.Response{}, errors.Wrap(err, "unable to read response")
	}
	return response, nil
}

// Ping reports whether a daemon is listening and responsive on this
// client's port.
func (c *Client) Ping() bool {
	_, err := c.Send(protocol.Request{Type: protocol.RequestPing})
	return err == nil
}

// Echo sends msg to the daemon and returns what it echoes back, a basic
// diagnostic that the daemon is alive and speaking the wire protocol
// correctly beyond the bare liveness check Ping provides.
func (c *Client) Echo(msg string) (string, error) {
	response, err := c.Send(protocol.Request{Type: protocol.RequestEcho, Echo: msg})
	if err != nil {
		return "", err
	}
	if response.Type != protocol.ResponseMessage {
		return "", errors.New("unexpected response to echo request")
	}
	return response.Message, nil
}
