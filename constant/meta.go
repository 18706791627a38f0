// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

import _ "embed"

const (
	// App is the canonical application identifier used for filesystem paths and CLI branding.
	App = "ytplay"

	// Version is the current application semantic version string.
	Version = "0.2.0"
)

// Build metadata, overridden at link time with -ldflags "-X".
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)

// External programs the player shells out to.
const (
	YtDlp  = "yt-dlp"
	FFplay = "ffplay"
	Mpv    = "mpv"
)

// AsciiArtLogo heads the root command's help.
//
//go:embed ascii.txt
var AsciiArtLogo string
