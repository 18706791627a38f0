package player

import (
	"bytes"
	"context"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

type fakeResolver struct {
	url   string
	err   error
	calls int32
}

func (r *fakeResolver) Resolve(_ context.Context, _ string) (string, error) {
	atomic.AddInt32(&r.calls, 1)
	return r.url, r.err
}

type fakeProcess struct {
	exit    chan ExitStatus
	waitErr error
	kills   int32
	once    sync.Once
}

func newFakeProcess() *fakeProcess {
	return &fakeProcess{exit: make(chan ExitStatus, 2)}
}

func (p *fakeProcess) Wait() (ExitStatus, error) {
	status := <-p.exit
	return status, p.waitErr
}

func (p *fakeProcess) Kill() error {
	atomic.AddInt32(&p.kills, 1)
	p.once.Do(func() {
		p.exit <- ExitStatus{Killed: true}
	})
	return nil
}

func (p *fakeProcess) Kills() int {
	return int(atomic.LoadInt32(&p.kills))
}

type fakeDecoder struct {
	proc    *fakeProcess
	err     error
	started []string
}

func (d *fakeDecoder) Name() string {
	return "fake"
}

func (d *fakeDecoder) Start(streamURL string) (Process, error) {
	if d.err != nil {
		return nil, d.err
	}
	d.started = append(d.started, streamURL)
	return d.proc, nil
}

type fakeConsole struct {
	keys     chan byte
	notTTY   bool
	raws     int32
	restores int32
	stops    int32
}

func newFakeConsole() *fakeConsole {
	return &fakeConsole{keys: make(chan byte, 8)}
}

func (c *fakeConsole) Raw() (func() error, bool, error) {
	atomic.AddInt32(&c.raws, 1)
	if c.notTTY {
		return func() error { return nil }, false, nil
	}
	return func() error {
		atomic.AddInt32(&c.restores, 1)
		return nil
	}, true, nil
}

func (c *fakeConsole) Keys() (<-chan byte, func(), error) {
	return c.keys, func() { atomic.AddInt32(&c.stops, 1) }, nil
}

func (c *fakeConsole) Restores() int {
	return int(atomic.LoadInt32(&c.restores))
}

func (c *fakeConsole) Stops() int {
	return int(atomic.LoadInt32(&c.stops))
}

type fakeSignals struct {
	mu       sync.Mutex
	ch       chan<- os.Signal
	notified chan struct{}
	stopped  int32
}

func newFakeSignals() *fakeSignals {
	return &fakeSignals{notified: make(chan struct{})}
}

func (s *fakeSignals) Notify(c chan<- os.Signal, _ ...os.Signal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ch = c
	close(s.notified)
}

func (s *fakeSignals) Stop(chan<- os.Signal) {
	atomic.AddInt32(&s.stopped, 1)
}

func (s *fakeSignals) Send(sig os.Signal) {
	<-s.notified
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ch <- sig
}

func (s *fakeSignals) Stopped() int {
	return int(atomic.LoadInt32(&s.stopped))
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// waitFor polls until cond holds or the deadline passes.
func waitFor(cond func() bool) bool {
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(2 * time.Millisecond)
	}
	return false
}

type result struct {
	outcome Outcome
	err     error
}

type harness struct {
	resolver *fakeResolver
	proc     *fakeProcess
	decoder  *fakeDecoder
	console  *fakeConsole
	signals  *fakeSignals
	out      *syncBuffer
	exits    []int
	player   *Player
}

func newHarness(interval time.Duration) *harness {
	h := &harness{
		resolver: &fakeResolver{url: "https://stream.example/audio"},
		proc:     newFakeProcess(),
		console:  newFakeConsole(),
		signals:  newFakeSignals(),
		out:      &syncBuffer{},
	}
	h.decoder = &fakeDecoder{proc: h.proc}
	h.player = New(Options{
		Resolver: h.resolver,
		Decoder:  h.decoder,
		Console:  h.console,
		Out:      h.out,
		Interval: interval,
		Notify:   h.signals.Notify,
		Stop:     h.signals.Stop,
		Exit:     func(code int) { h.exits = append(h.exits, code) },
	})
	return h
}

// start runs Play in the background.
func (h *harness) start(ctx context.Context, duration string) <-chan result {
	done := make(chan result, 1)
	go func() {
		outcome, err := h.player.Play(ctx, "https://www.youtube.com/watch?v=abc", duration)
		done <- result{outcome: outcome, err: err}
	}()
	return done
}

func await(done <-chan result) (result, bool) {
	select {
	case r := <-done:
		return r, true
	case <-time.After(3 * time.Second):
		return result{}, false
	}
}

func (c *fakeConsole) Raws() int {
	return int(atomic.LoadInt32(&c.raws))
}
