package shim

import (
	"bufio"
	"context"
	"net"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fctx"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"
	"github.com/puzpuzpuz/xsync/v3"
	"github.com/rs/zerolog"
	"go.uber.org/atomic"

	"github.com/darkhz/celldata/api/errorkinds"
	"github.com/darkhz/celldata/internal/serde"
	"github.com/darkhz/celldata/native/shim/internal/commands"
)

// Options describes how to reach the telephony daemon.
type Options struct {
	// SocketPath is the path to the daemon's unix socket.
	// If empty, DefaultSocketPath is used.
	SocketPath string

	// Timeout is the time to wait for a reply to each command.
	// If zero, a 30 second timeout is used.
	Timeout time.Duration
}

// Session describes a connected session with a running telephony daemon.
//
//revive:disable
type Session struct {
	conn    net.Conn
	timeout time.Duration

	sessionClosed *atomic.Bool

	cancel context.CancelFunc

	id         *xsync.Counter
	requestMap *xsync.MapOf[int64, chan commands.CommandResponse]

	logger zerolog.Logger

	sync.Mutex
}

//revive:enable

const socketName = "telephony.sock"

// maxLineSize is the largest reply line the listener accepts.
const maxLineSize = 1 << 20

// DefaultSocketPath returns the socket path that is used when none is configured.
func DefaultSocketPath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fault.Wrap(err,
			fctx.With(context.Background(), "error_at", "socket-dir"),
			ftag.With(ftag.Internal),
			fmsg.With("Cannot find socket directory"),
		)
	}

	return filepath.Join(dir, "celldata", socketName), nil
}

// NewSession returns a stopped session.
func NewSession(logger zerolog.Logger) *Session {
	return &Session{
		sessionClosed: atomic.NewBool(true),
		logger:        logger,
	}
}

// Start connects to the telephony daemon and starts listening for replies.
func (s *Session) Start(opts Options) error {
	if !s.sessionClosed.Load() {
		return fault.Wrap(errorkinds.ErrSessionStart,
			fctx.With(context.Background(), "error_at", "session-start"),
			ftag.With(ftag.AlreadyExists),
			fmsg.With("Session is already started"),
		)
	}

	if opts.SocketPath == "" {
		socketPath, err := DefaultSocketPath()
		if err != nil {
			return err
		}

		opts.SocketPath = socketPath
	}

	s.timeout = opts.Timeout
	if s.timeout <= 0 {
		s.timeout = commands.CommandReplyTimeout
	}

	socket, err := net.Dial("unix", opts.SocketPath)
	if err != nil {
		return fault.Wrap(err,
			fctx.With(context.Background(), "error_at", "listener-shim", "socket", opts.SocketPath),
			ftag.With(ftag.Internal),
			fmsg.With("Cannot connect to the telephony daemon on provided socket"),
		)
	}

	ctx := s.reset(false, socket)
	go s.listen(ctx)

	s.logger.Debug().Str("socket", opts.SocketPath).Msg("shim: session started")

	return nil
}

// Stop closes the connection to the telephony daemon.
// Pending commands return errorkinds.ErrSessionStop.
func (s *Session) Stop() error {
	if s.sessionClosed.Load() {
		return errorkinds.ErrSessionNotExist
	}

	s.reset(true, nil)

	return nil
}

// listen listens to the socket for any incoming replies.
func (s *Session) listen(ctx context.Context) {
	sendData := func(c chan commands.CommandResponse, m commands.CommandResponse) {
		select {
		case <-ctx.Done():
			close(c)
		case c <- m:
			close(c)
		default:
		}
	}

	scanner := bufio.NewScanner(s.conn)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)
	scanner.Split(bufio.ScanLines)

	for scanner.Scan() {
		if ctx.Err() != nil || s.sessionClosed.Load() {
			return
		}

		var response commands.CommandResponse

		if err := serde.UnmarshalJson(scanner.Bytes(), &response); err != nil {
			s.handleListenerError(err, false)
			continue
		}

		replyChan, ok := s.requestMap.LoadAndDelete(int64(response.RequestId))
		if ok {
			sendData(replyChan, response)
		}
	}

	if ctx.Err() == nil {
		s.handleListenerError(scanner.Err(), true)
	}
}

// handleListenerError handles any errors that occurred during listening from the socket.
// If the 'stop' parameter is specified, it means that the connection is unusable
// and the session is stopped.
func (s *Session) handleListenerError(err error, stop bool) {
	if err != nil {
		s.logger.Error().Err(err).Bool("stop", stop).Msg("shim: listener error")
	}

	if stop {
		s.Stop()
	}
}

// executor forms a request using the provided parameters, generates a unique request ID,
// and sends the request to the server. The request is tracked, and any responses to the
// request will be handled by the listener.
func (s *Session) executor(params []string) (chan commands.CommandResponse, error) {
	if s.sessionClosed.Load() {
		return nil, errorkinds.ErrSessionNotExist
	}

	s.Lock()
	defer s.Unlock()

	s.id.Inc()
	requestID := s.id.Value()

	replyChan := make(chan commands.CommandResponse, 1)
	s.requestMap.Store(requestID, replyChan)

	command := map[string]any{
		"command":    params,
		"request_id": requestID,
	}

	commandBytes, err := serde.MarshalJson(command)
	if err != nil {
		s.requestMap.Delete(requestID)
		return nil, err
	}

	commandBytes = append(commandBytes, '\n')
	if _, err = s.conn.Write(commandBytes); err != nil {
		s.requestMap.Delete(requestID)
		return nil, err
	}

	return replyChan, nil
}

// reset resets the state of the session. If 'isClosed' is true (i.e the session is stopped),
// it will close the socket connection. If 'isClosed is false (i.e the session is started),
// all session internals are initialized.
func (s *Session) reset(isClosed bool, conn net.Conn) context.Context {
	s.Lock()
	defer s.Unlock()

	s.sessionClosed.Store(isClosed)
	if isClosed {
		s.cleanup()

		return context.Background()
	}

	s.conn = conn
	s.id = xsync.NewCounter()
	s.requestMap = xsync.NewMapOf[int64, chan commands.CommandResponse]()

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	return ctx
}

// cleanup is called by 'reset()' to close all listeners and connections when
// the session is stopped.
func (s *Session) cleanup() {
	if s.cancel != nil {
		s.cancel()
	}

	if s.conn != nil {
		s.conn.Close()
	}

	if s.requestMap != nil {
		s.requestMap.Range(func(id int64, _ chan commands.CommandResponse) bool {
			if replyChan, ok := s.requestMap.LoadAndDelete(id); ok {
				close(replyChan)
			}

			return true
		})
	}
}
