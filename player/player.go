// Package player supervises one playback of a track through an external decoder.
//
// A session resolves the stream, spawns the decoder and then waits on whichever comes
// first of: the decoder exiting, the stop key, an interrupt signal or context cancellation.
// Exactly one of them settles the session, and terminal state is restored before Play returns.
package player

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/ytplay-cli/ytplay/icon"
	"github.com/ytplay-cli/ytplay/key"
	"github.com/ytplay-cli/ytplay/log"
	"github.com/ytplay-cli/ytplay/progress"
	"github.com/ytplay-cli/ytplay/style"
)

// StopKey is the Escape byte. It ends the current playback only.
const StopKey byte = 27

// interruptKey is Ctrl+C as delivered in raw mode, where the terminal no longer turns it into SIGINT.
const interruptKey byte = 3

// reapTimeout bounds how long cleanup waits for a killed decoder to be reaped.
const reapTimeout = 3 * time.Second

// Outcome is how a playback ended.
type Outcome struct {
	// StoppedByUser is false only when the decoder reached the end of the stream.
	StoppedByUser bool
}

// Options configures a Player. Zero fields take the process defaults.
type Options struct {
	Resolver Resolver
	Decoder  Decoder
	Console  Console
	Out      io.Writer

	// Interval between progress redraws, one second by default.
	Interval time.Duration

	Notify func(c chan<- os.Signal, sig ...os.Signal)
	Stop   func(c chan<- os.Signal)
	// Exit is called after an interrupt has been cleaned up.
	Exit func(code int)
}

// Player plays tracks one at a time.
type Player struct {
	opts Options
}

// New returns a Player, filling unset options with the defaults.
func New(opts Options) *Player {
	if opts.Resolver == nil {
		opts.Resolver = &YtDlp{}
	}
	if opts.Decoder == nil {
		opts.Decoder = FFplay()
	}
	if opts.Console == nil {
		opts.Console = Stdin()
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Interval <= 0 {
		opts.Interval = time.Second
	}
	if opts.Notify == nil {
		opts.Notify = signal.Notify
	}
	if opts.Stop == nil {
		opts.Stop = signal.Stop
	}
	if opts.Exit == nil {
		opts.Exit = os.Exit
	}

	return &Player{opts: opts}
}

// Default returns a Player configured from the current settings.
func Default() (*Player, error) {
	decoder, err := NewDecoder(viper.GetString(key.PlayerDecoder))
	if err != nil {
		return nil, err
	}

	return New(Options{
		Resolver: &YtDlp{Format: viper.GetString(key.ResolverFormat)},
		Decoder:  decoder,
		Interval: time.Duration(viper.GetInt(key.PlayerTickInterval)) * time.Millisecond,
	}), nil
}

// Decoder returns the decoder this player spawns.
func (p *Player) Decoder() Decoder {
	return p.opts.Decoder
}

// Play streams the audio of url and blocks until the playback settles.
// duration is the track's "M:SS" or "H:MM:SS" length; it only drives the progress estimate.
//
// Failures are *Error values. An interrupt calls the exit hook and, if that returns,
// yields ErrInterrupted. A cancelled ctx kills the decoder and yields ctx.Err().
func (p *Player) Play(ctx context.Context, url, duration string) (Outcome, error) {
	streamURL, err := p.opts.Resolver.Resolve(ctx, url)
	if err != nil {
		return Outcome{}, &Error{Kind: KindResolve, Err: err}
	}

	streamURL = strings.TrimSpace(streamURL)
	if streamURL == "" {
		return Outcome{}, &Error{Kind: KindResolve, Err: ErrNoStreamURL}
	}

	total := progress.Seconds(duration)

	proc, err := p.opts.Decoder.Start(streamURL)
	if err != nil {
		return Outcome{}, &Error{Kind: KindSpawn, Err: err}
	}

	log.WithFields(logrus.Fields{
		"decoder":  p.opts.Decoder.Name(),
		"duration": total,
	}).Info("playback started")

	s := &session{
		opts:   p.opts,
		proc:   proc,
		total:  total,
		exited: make(chan exit, 1),
	}
	return s.run(ctx)
}

type exit struct {
	status ExitStatus
	err    error
}

// session is the state of a single Play call.
type session struct {
	opts  Options
	proc  Process
	total int

	elapsed int
	killed  bool

	exited   chan exit
	signals  chan os.Signal
	ticker   *time.Ticker
	restore  func() error
	stopKeys func()

	cleanupOnce sync.Once
	settleOnce  sync.Once
	outcome     Outcome
	err         error
}

func (s *session) run(ctx context.Context) (Outcome, error) {
	go func() {
		status, err := s.proc.Wait()
		s.exited <- exit{status: status, err: err}
	}()

	var keys <-chan byte

	restore, raw, err := s.opts.Console.Raw()
	switch {
	case err != nil:
		log.Warnf("raw mode: %s", err)
	case raw:
		s.restore = restore

		var stop func()
		keys, stop, err = s.opts.Console.Keys()
		if err != nil {
			log.Warnf("key reader: %s", err)
			keys = nil
		} else {
			s.stopKeys = stop
		}
	}

	s.signals = make(chan os.Signal, 1)
	s.opts.Notify(s.signals, os.Interrupt)

	s.ticker = time.NewTicker(s.opts.Interval)

	for {
		select {
		case <-s.ticker.C:
			s.tick()
		case b, ok := <-keys:
			if !ok {
				keys = nil
				continue
			}

			switch b {
			case StopKey:
				return s.stop()
			case interruptKey:
				return s.interrupt()
			}
		case <-s.signals:
			return s.interrupt()
		case e := <-s.exited:
			return s.finish(e)
		case <-ctx.Done():
			s.kill()
			s.cleanup()
			return s.settle(Outcome{}, ctx.Err())
		}
	}
}

func (s *session) tick() {
	s.elapsed++
	if s.elapsed > s.total {
		return
	}

	_, _ = fmt.Fprintf(s.opts.Out, "\r%s", progress.Render(s.elapsed, s.total))
}

func (s *session) stop() (Outcome, error) {
	s.kill()
	s.notice()
	s.cleanup()
	return s.settle(Outcome{StoppedByUser: true}, nil)
}

func (s *session) interrupt() (Outcome, error) {
	s.kill()
	s.notice()
	s.cleanup()

	outcome, err := s.settle(Outcome{StoppedByUser: true}, ErrInterrupted)
	s.opts.Exit(0)
	return outcome, err
}

func (s *session) finish(e exit) (Outcome, error) {
	s.cleanup()

	switch {
	case e.err != nil:
		return s.settle(Outcome{}, &Error{Kind: KindIO, Err: e.err})
	case e.status.Killed:
		// Killed from outside; nothing here asked for it.
		return s.settle(Outcome{StoppedByUser: true}, nil)
	case e.status.Code == 0:
		return s.settle(Outcome{StoppedByUser: false}, nil)
	default:
		return s.settle(Outcome{}, &Error{Kind: KindExit, Code: e.status.Code})
	}
}

func (s *session) kill() {
	s.killed = true
	if err := s.proc.Kill(); err != nil {
		log.Warnf("kill decoder: %s", err)
	}
}

func (s *session) notice() {
	// Still raw here, so the carriage return is explicit.
	_, _ = fmt.Fprintf(s.opts.Out, "\r\n%s %s", icon.Get(icon.Stop), style.Fg(style.Yellow)("Playback stopped"))
}

// settle records the first result; later calls return it unchanged.
func (s *session) settle(outcome Outcome, err error) (Outcome, error) {
	s.settleOnce.Do(func() {
		s.outcome = outcome
		s.err = err
	})
	return s.outcome, s.err
}

// cleanup releases everything the session acquired. Safe to call more than once.
func (s *session) cleanup() {
	s.cleanupOnce.Do(func() {
		if s.ticker != nil {
			s.ticker.Stop()
		}

		if s.restore != nil {
			if err := s.restore(); err != nil {
				log.Warnf("restore terminal: %s", err)
			}
		}

		if s.stopKeys != nil {
			s.stopKeys()
		}

		if s.signals != nil {
			s.opts.Stop(s.signals)
		}

		if s.killed {
			select {
			case <-s.exited:
			case <-time.After(reapTimeout):
				log.Warn("decoder was not reaped after kill")
			}
		}

		_, _ = fmt.Fprintln(s.opts.Out)
	})
}
