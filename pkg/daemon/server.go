// Package daemon implements the single-threaded reconciliation daemon: its
// accept-or-reconcile main loop, request dispatch for the RPC surface, and
// the supporting lock/log/port-registry bookkeeping around it.
package daemon

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/google/uuid"

	"github.com/boardmirror/boardmirror/pkg/logging"
	"github.com/boardmirror/boardmirror/pkg/mirror"
	"github.com/boardmirror/boardmirror/pkg/protocol"
)

// Daemon holds all state owned by the daemon's single thread: the monitor
// table, the current workspace name, and the accept loop's listener.
//
// The daemon has no knowledge of the workspace store: workspace Save/Load
// is composed client-side out of ViewLink/StartLink/StopLink/
// SetWorkspaceName requests, so persistence lives entirely in the CLI
// layer.
type Daemon struct {
	listener      net.Listener
	monitors      *mirror.Table
	workspaceName string
	pollInterval  time.Duration
	logger        *logging.Logger
}

// New constructs a daemon bound to the given port on 127.0.0.1 (port 0
// requests an OS-assigned port).
func New(port uint16, pollInterval time.Duration, logger *logging.Logger) (*Daemon, error) {
	listener, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
	if err != nil {
		return nil, fmt.Errorf("unable to bind daemon listener: %w", err)
	}

	tcpListener, ok := listener.(*net.TCPListener)
	if !ok {
		listener.Close()
		return nil, fmt.Errorf("unexpected listener type")
	}
	if err := tcpListener.SetDeadline(time.Time{}); err != nil {
		listener.Close()
		return nil, fmt.Errorf("unable to configure listener deadline: %w", err)
	}

	boundPort := uint16(listener.Addr().(*net.TCPAddr).Port)
	if err := RegisterPort(boundPort); err != nil {
		listener.Close()
		return nil, fmt.Errorf("unable to register daemon port: %w", err)
	}

	return &Daemon{
		listener:     listener,
		monitors:     mirror.NewTable(),
		pollInterval: pollInterval,
		logger:       logger,
	}, nil
}

// Port returns the TCP port the daemon bound to.
func (d *Daemon) Port() uint16 {
	return uint16(d.listener.Addr().(*net.TCPAddr).Port)
}

// Run executes the daemon's single-threaded accept-or-reconcile loop until
// a Shutdown request is handled or ctx is cancelled.
func (d *Daemon) Run(ctx context.Context) error {
	defer func() {
		if err := UnregisterPort(d.Port()); err != nil {
			d.logger.Warnf("unable to remove port registry entry: %v", err)
		}
	}()
	defer d.listener.Close()

	tcpListener := d.listener.(*net.TCPListener)

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		// Briefly poll for a pending connection. A short accept deadline
		// lets us alternate between accept and reconcile without a second
		// thread: accept-first wins per connection, but we never block
		// indefinitely waiting for one.
		if err := tcpListener.SetDeadline(time.Now().Add(d.pollInterval)); err != nil {
			return fmt.Errorf("unable to set listener deadline: %w", err)
		}

		conn, err := d.listener.Accept()
		if err == nil {
			shouldStop := d.handleConnection(conn)
			if shouldStop {
				return nil
			}
			continue
		}
		if !isTimeout(err) {
			return fmt.Errorf("listener accept failed: %w", err)
		}

		d.reconcileAll()
	}
}

// isTimeout reports whether err is a network timeout, which is the expected
// signal that no connection was pending within the poll interval.
func isTimeout(err error) bool {
	type timeouter interface{ Timeout() bool }
	if t, ok := err.(timeouter); ok {
		return t.Timeout()
	}
	return false
}

// reconcileAll runs one reconciliation pass over every monitor, dropping
// any monitor whose reconcile fails with a filesystem error or whose write
// directory has disappeared. Dropped silently: no client is waiting on
// that outcome.
func (d *Daemon) reconcileAll() {
	d.monitors.RemoveWhere(func(m *mirror.Monitor) bool {
		if !m.WriteDirectoryExists() {
			d.logger.Infof("write directory for monitor %q vanished, dropping monitor", m.Pattern)
			return true
		}
		if err := m.Reconcile(d.logger); err != nil {
			d.logger.Warnf("dropping monitor %q after reconcile failure: %v", m.Pattern, err)
			return true
		}
		return false
	})
}

// handleConnection services exactly one request/response exchange on conn
// and reports whether the daemon should terminate its loop afterward.
func (d *Daemon) handleConnection(conn net.Conn) (shouldStop bool) {
	requestID := uuid.NewString()
	logger := d.logger.Sublogger(requestID[:8])
	defer conn.Close()

	if err := conn.SetDeadline(time.Time{}); err != nil {
		logger.Warnf("unable to clear connection deadline: %v", err)
	}

	request, err := protocol.ReadRequest(conn)
	if err != nil {
		logger.Warnf("unable to decode request: %v", err)
		return false
	}
	logger.Debugf("handling %s request", request.Type)

	response, stop := d.dispatch(request, logger)
	if err := protocol.WriteResponse(conn, response); err != nil {
		logger.Warnf("unable to encode response: %v", err)
	}
	return stop
}

// dispatch executes a single decoded request against daemon state and
// produces the response to send back, along with whether the daemon
// should stop its main loop.
func (d *Daemon) dispatch(request protocol.Request, logger *logging.Logger) (protocol.Response, bool) {
	switch request.Type {
	case protocol.RequestPing:
		return protocol.NoData(), false

	case protocol.RequestEcho:
		return protocol.MessageResponse(request.Echo), false

	case protocol.RequestShutdown:
		return protocol.MessageResponse(protocol.StoppingMessage), true

	case protocol.RequestStartLink:
		return d.handleStartLink(request), false

	case protocol.RequestStopLink:
		return d.handleStopLink(request), false

	case protocol.RequestViewLink:
		return d.handleViewLink(request), false

	case protocol.RequestViewWorkspaceName:
		return protocol.MessageResponse(d.workspaceName), false

	case protocol.RequestSetWorkspaceName:
		d.workspaceName = request.Name
		return protocol.NoData(), false

	default:
		return protocol.ErrorResponse(fmt.Sprintf("unrecognized request type %q", request.Type)), false
	}
}

func (d *Daemon) handleStartLink(request protocol.Request) protocol.Response {
	monitor := mirror.NewMonitor(request.ReadPattern, request.BaseDirectory, request.WriteDirectory)
	d.monitors.Add(monitor)
	d.workspaceName = ""
	return protocol.NoData()
}

func (d *Daemon) handleStopLink(request protocol.Request) protocol.Response {
	if request.Number == 0 {
		d.monitors.RemoveAll()
		d.workspaceName = ""
		return protocol.NoData()
	}
	if err := d.monitors.RemoveAt(request.Number); err != nil {
		return protocol.ErrorResponse(fmt.Sprintf("Link %d does not exist!", request.Number))
	}
	d.workspaceName = ""
	return protocol.NoData()
}

func (d *Daemon) handleViewLink(request protocol.Request) protocol.Response {
	var records []mirror.Record
	if request.Number == 0 {
		for _, m := range d.monitors.All() {
			records = append(records, m.ToRecord(request.Absolute))
		}
	} else {
		monitor, err := d.monitors.At(request.Number)
		if err != nil {
			return protocol.ErrorResponse(fmt.Sprintf("Link %d does not exist!", request.Number))
		}
		records = append(records, monitor.ToRecord(request.Absolute))
	}

	response, err := protocol.LinksResponse(records)
	if err != nil {
		return protocol.ErrorResponse(fmt.Sprintf("unable to encode link records: %v", err))
	}
	return response
}

