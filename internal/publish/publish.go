// Package publish delivers puzzle reports to external listeners.
package publish

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/vk/patrolgrid/internal/ctxlog"
	"github.com/vk/patrolgrid/internal/patrol"
	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"
)

// Event is the socket.io event name reports are emitted under.
const Event = "patrol_report"

// DefaultConnectTimeout bounds how long Dial waits for the connection.
const DefaultConnectTimeout = 15 * time.Second

// ErrInvalidURL is returned when the endpoint URL cannot be used.
var ErrInvalidURL = errors.New("invalid publish URL")

// Publisher sends reports somewhere.
type Publisher interface {
	Publish(ctx context.Context, report *patrol.Report) error
	Close() error
}

// Nop discards every report.
type Nop struct{}

func (Nop) Publish(context.Context, *patrol.Report) error { return nil }
func (Nop) Close() error                                  { return nil }

// Options configures a socket.io publisher.
type Options struct {
	Namespace          string
	InsecureSkipVerify bool
	ConnectTimeout     time.Duration
}

// SocketIO emits reports to a socket.io server over a websocket transport.
type SocketIO struct {
	io *socket.Socket
}

// Dial connects to the socket.io endpoint at rawURL and waits until the
// connection is established.
func Dial(ctx context.Context, rawURL string, opts Options) (*SocketIO, error) {
	logger := ctxlog.FromContext(ctx).With("publisher", "socketio", "url", rawURL)

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("%w: %q needs a scheme and host", ErrInvalidURL, rawURL)
	}
	timeout := opts.ConnectTimeout
	if timeout <= 0 {
		timeout = DefaultConnectTimeout
	}

	sockOpts := socket.DefaultOptions()
	sockOpts.SetPath(parsedURL.Path)
	if opts.InsecureSkipVerify {
		logger.Warn("Skipping TLS certificate verification")
		sockOpts.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	sockOpts.SetTransports(types.NewSet(transports.WebSocket))

	connectChan := make(chan error, 1)

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	manager := socket.NewManager(baseURL, sockOpts)
	io := manager.Socket(opts.Namespace, sockOpts)

	io.Once(types.EventName("connect"), func(...any) {
		logger.Info("Publisher connected", "sid", io.Id())
		select {
		case connectChan <- nil:
		default:
		}
	})
	io.Once(types.EventName("connect_error"), func(errs ...any) {
		err := errors.New("connect_error")
		if len(errs) > 0 {
			if e, ok := errs[0].(error); ok {
				err = e
			}
		}
		logger.Debug("Publisher connection failed", "error", err)
		select {
		case connectChan <- err:
		default:
		}
	})

	logger.Debug("Initiating connection...")
	io.Connect()

	select {
	case err := <-connectChan:
		if err != nil {
			io.Disconnect()
			return nil, fmt.Errorf("socket.io connection failed: %w", err)
		}
		return &SocketIO{io: io}, nil
	case <-ctx.Done():
		io.Disconnect()
		return nil, fmt.Errorf("context cancelled while waiting for socket.io connection: %w", ctx.Err())
	case <-time.After(timeout):
		io.Disconnect()
		return nil, fmt.Errorf("timed out after %s waiting for socket.io connection", timeout)
	}
}

// Publish emits the report as a single event.
func (p *SocketIO) Publish(ctx context.Context, report *patrol.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	ctxlog.FromContext(ctx).Debug("Emitting report", "event", Event, "puzzle", report.Name)
	p.io.Emit(Event, Payload(report))
	return nil
}

// Close disconnects from the server.
func (p *SocketIO) Close() error {
	p.io.Disconnect()
	return nil
}

// Payload converts a report into the event body.
func Payload(r *patrol.Report) map[string]any {
	positions := make([][]int, 0, len(r.LoopPositions))
	for _, p := range r.LoopPositions {
		positions = append(positions, []int{p.Row, p.Col})
	}
	return map[string]any{
		"name":           r.Name,
		"rows":           r.Rows,
		"cols":           r.Cols,
		"visited":        r.Visited,
		"candidates":     r.Candidates,
		"loops":          r.Loops,
		"loop_positions": positions,
		"duration_ms":    r.Duration.Milliseconds(),
	}
}
