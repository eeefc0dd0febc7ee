package console

import (
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/arthur-debert/stdwriter/pkg/errors"
	"github.com/arthur-debert/stdwriter/pkg/logging"
)

// Destination is where a write goes: one of the standard streams, or any
// other handle. Only standard streams are classified; everything else is
// written to as a file.
type Destination struct {
	std    bool
	stream Stream
	handle Handle
}

var (
	// Stdout is the standard output stream
	Stdout = Destination{std: true, stream: StreamOutput}
	// Stderr is the standard error stream
	Stderr = Destination{std: true, stream: StreamError}
)

// HandleDestination targets an arbitrary native handle
func HandleDestination(h Handle) Destination {
	return Destination{handle: h}
}

// FileDestination targets f. os.Stdout and os.Stderr map to the standard streams.
func FileDestination(f *os.File) Destination {
	switch f {
	case os.Stdout:
		return Stdout
	case os.Stderr:
		return Stderr
	}
	return HandleDestination(Handle(f.Fd()))
}

// IsStandard reports whether d is stdout or stderr
func (d Destination) IsStandard() bool {
	return d.std
}

func (d Destination) String() string {
	if d.std {
		return d.stream.String()
	}
	return "handle"
}

// Option configures a State
type Option func(*options)

type options struct {
	enableVT    bool
	stripLegacy bool
	forced      map[Stream]OutputMode
}

// WithVirtualTerminal controls whether the detector may switch consoles into
// virtual terminal mode. When off, consoles are classified as legacy.
func WithVirtualTerminal(enable bool) Option {
	return func(o *options) { o.enableVT = enable }
}

// WithLegacyStripping controls whether SGR sequences are removed for legacy consoles
func WithLegacyStripping(strip bool) Option {
	return func(o *options) { o.stripLegacy = strip }
}

// WithForcedMode skips detection for stream and uses mode instead
func WithForcedMode(stream Stream, mode OutputMode) Option {
	return func(o *options) { o.forced[stream] = mode }
}

type streamState struct {
	handle Handle
	mode   OutputMode
}

// State is the per-process record of how each standard stream is written to.
// Streams are classified on first use and never re-probed.
type State struct {
	platform Platform
	opts     options
	once     sync.Once
	streams  [2]streamState
}

// New creates a State over p. Nothing is probed until the first write or query.
func New(p Platform, opts ...Option) *State {
	o := options{
		enableVT:    true,
		stripLegacy: true,
		forced:      make(map[Stream]OutputMode),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &State{platform: p, opts: o}
}

var defaultState atomic.Pointer[State]

// Default returns the process-wide State. Unless SetDefault installed one,
// it is built over NewPlatform on first use.
func Default() *State {
	if s := defaultState.Load(); s != nil {
		return s
	}
	defaultState.CompareAndSwap(nil, New(NewPlatform()))
	return defaultState.Load()
}

// SetDefault makes s the State behind Default, Write and ClassificationLabel
func SetDefault(s *State) {
	defaultState.Store(s)
}

func (s *State) init() {
	s.once.Do(func() {
		logger := logging.GetLogger("console")
		done := logging.LogOperationStart(logger, "classify")
		defer done()

		d := detector{platform: s.platform, enableVT: s.opts.enableVT}
		for _, stream := range []Stream{StreamError, StreamOutput} {
			h, err := s.platform.StdHandle(stream)
			if err != nil {
				logger.Debug().Err(err).Str("stream", stream.String()).Msg("No standard handle")
				h = InvalidHandle
			}
			mode, forced := s.opts.forced[stream]
			if !forced {
				mode = d.classify(h)
			}
			s.streams[stream] = streamState{handle: h, mode: mode}
			logger.Debug().
				Str("stream", stream.String()).
				Str("mode", mode.String()).
				Bool("forced", forced).
				Msg("Classified output stream")
		}
	})
}

// Mode returns the cached classification of a standard stream
func (s *State) Mode(stream Stream) OutputMode {
	s.init()
	return s.streams[stream].mode
}

// Handle returns the native handle of a standard stream
func (s *State) Handle(stream Stream) Handle {
	s.init()
	return s.streams[stream].handle
}

func (s *State) resolve(d Destination) (Handle, OutputMode) {
	if !d.IsStandard() {
		return d.handle, Disk
	}
	s.init()
	st := s.streams[d.stream]
	return st.handle, st.mode
}

// Write delivers text to d according to d's classification. It returns bytes
// written for files and streams, UTF-16 code units for consoles, or
// WriteFailed and an *errors.Error when the OS call fails or the stream has no
// usable handle. Partial writes are reported as-is.
func (s *State) Write(d Destination, text string) (int, error) {
	n, _, err := s.write(d, text)
	if err != nil {
		return WriteFailed, err
	}
	return n, nil
}

func (s *State) write(d Destination, text string) (int, int, error) {
	h, mode := s.resolve(d)
	if !h.Valid() {
		return 0, 0, errors.New(errors.ErrInvalidHandle, "no handle to write to").
			WithDetail("destination", d.String())
	}
	return strategyFor(mode, s.opts.stripLegacy).write(s.platform, h, text)
}

// Label returns the diagnostic classification string for d. Standard streams
// are looked up through the cached handles, classifying them first if needed;
// the label itself is read from the OS and never changes console flags.
func (s *State) Label(d Destination) string {
	h := d.handle
	if d.IsStandard() {
		h = s.Handle(d.stream)
	}
	return Label(s.platform, h)
}

// Writer adapts d to io.Writer. Successful writes report len(p) even when
// escape sequences were dropped on the way; a short write reports
// io.ErrShortWrite.
//
// Writer classifies the standard streams right away, so a logger pointed at
// the returned writer is never called back from inside classification.
func (s *State) Writer(d Destination) io.Writer {
	s.init()
	return &destinationWriter{state: s, dest: d}
}

type destinationWriter struct {
	state *State
	dest  Destination
}

func (w *destinationWriter) Write(p []byte) (int, error) {
	n, total, err := w.state.write(w.dest, string(p))
	if err != nil {
		return 0, err
	}
	if n < total {
		return 0, io.ErrShortWrite
	}
	return len(p), nil
}

// Write writes text to d through Default
func Write(d Destination, text string) (int, error) {
	return Default().Write(d, text)
}

// ClassificationLabel returns the diagnostic label of d through Default
func ClassificationLabel(d Destination) string {
	return Default().Label(d)
}
