package player

import (
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"strings"

	"github.com/ytplay-cli/ytplay/constant"
)

// ExitStatus is how a decoder process ended.
type ExitStatus struct {
	Code int
	// Killed is set when a signal terminated the process, which then has no exit code.
	Killed bool
}

// Process is a running decoder.
type Process interface {
	// Wait blocks until the process ends. A non-nil error means waiting itself failed.
	Wait() (ExitStatus, error)
	// Kill terminates the process and everything it spawned.
	Kill() error
}

// Decoder starts an external program that plays an audio stream and exits when it ends.
type Decoder interface {
	Name() string
	Start(streamURL string) (Process, error)
}

// command is a Decoder backed by an executable on PATH.
type command struct {
	name string
	args func(target string) []string
}

// FFplay plays audio only, without a window, quits at end of stream and stays silent on the terminal.
func FFplay() Decoder {
	return &command{
		name: constant.FFplay,
		args: func(target string) []string {
			return []string{"-nodisp", "-autoexit", "-loglevel", "quiet", target}
		},
	}
}

// Mpv is the mpv equivalent of FFplay. mpv exits at end of file unless --idle is given.
func Mpv() Decoder {
	return &command{
		name: constant.Mpv,
		args: func(target string) []string {
			return []string{"--no-video", "--no-terminal", "--really-quiet", target}
		},
	}
}

// Decoders lists the supported decoder names.
func Decoders() []string {
	return []string{constant.FFplay, constant.Mpv}
}

// NewDecoder returns the decoder registered under name.
func NewDecoder(name string) (Decoder, error) {
	switch name {
	case constant.FFplay:
		return FFplay(), nil
	case constant.Mpv:
		return Mpv(), nil
	default:
		return nil, fmt.Errorf("unknown decoder %q", name)
	}
}

func (c *command) Name() string {
	return c.name
}

func (c *command) Start(streamURL string) (Process, error) {
	target, err := sanitizeMediaTarget(streamURL)
	if err != nil {
		return nil, fmt.Errorf("invalid media target: %w", err)
	}

	cmd := exec.Command(c.name, c.args(target)...)

	// Own process group: the terminal's interrupt must reach us, not the decoder.
	cmd.SysProcAttr = sysProcAttr()

	// The decoder must not read keystrokes or draw over the progress line.
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", c.name, err)
	}

	return &process{cmd: cmd}, nil
}

type process struct {
	cmd *exec.Cmd
}

func (p *process) Wait() (ExitStatus, error) {
	err := p.cmd.Wait()
	if err == nil {
		return ExitStatus{Code: 0}, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code >= 0 {
			return ExitStatus{Code: code}, nil
		}
		return ExitStatus{Killed: true}, nil
	}

	return ExitStatus{}, err
}

func (p *process) Kill() error {
	return killProcess(p.cmd)
}

// sanitizeMediaTarget validates that a resolved URL is safe to pass as the decoder's last argument.
func sanitizeMediaTarget(link string) (string, error) {
	l := strings.TrimSpace(link)
	if l == "" {
		return "", ErrNoStreamURL
	}

	if strings.ContainsAny(l, "\x00\n\r") {
		return "", fmt.Errorf("invalid control characters in URL")
	}

	// A leading dash would be parsed as a flag.
	if strings.HasPrefix(l, "-") {
		return "", fmt.Errorf("url must not start with '-' (looks like a flag)")
	}

	u, err := url.Parse(l)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return l, nil
	default:
		return "", fmt.Errorf("unsupported URL scheme: %q", u.Scheme)
	}
}
