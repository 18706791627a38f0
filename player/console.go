package player

import (
	"errors"
	"os"
	"sync"

	"github.com/muesli/cancelreader"
	"github.com/ytplay-cli/ytplay/log"
	"golang.org/x/term"
)

// Console is the keyboard side of a playback session.
type Console interface {
	// Raw switches the console to unbuffered, unechoed input.
	// ok is false when the console is not a terminal, in which case nothing changed.
	Raw() (restore func() error, ok bool, err error)

	// Keys streams raw input bytes until stop is called.
	// stop returns only after the reader released the input.
	Keys() (keys <-chan byte, stop func(), err error)
}

// Terminal is the Console of the process' standard input.
type Terminal struct {
	In *os.File
}

// Stdin returns the console reading os.Stdin.
func Stdin() *Terminal {
	return &Terminal{In: os.Stdin}
}

func (t *Terminal) Raw() (func() error, bool, error) {
	fd := int(t.In.Fd())
	if !term.IsTerminal(fd) {
		return func() error { return nil }, false, nil
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, false, err
	}

	return func() error {
		return term.Restore(fd, state)
	}, true, nil
}

func (t *Terminal) Keys() (<-chan byte, func(), error) {
	reader, err := cancelreader.NewReader(t.In)
	if err != nil {
		return nil, nil, err
	}

	var (
		keys = make(chan byte, 16)
		quit = make(chan struct{})
		done = make(chan struct{})
	)

	go func() {
		defer close(done)

		buf := make([]byte, 64)
		for {
			n, err := reader.Read(buf)
			for _, b := range buf[:n] {
				select {
				case keys <- b:
				case <-quit:
					return
				}
			}

			if err != nil {
				if !errors.Is(err, cancelreader.ErrCanceled) {
					log.Warnf("key reader: %s", err)
				}
				return
			}
		}
	}()

	var once sync.Once
	stop := func() {
		once.Do(func() {
			close(quit)
			if reader.Cancel() {
				<-done
			}
			_ = reader.Close()
		})
	}

	return keys, stop, nil
}
