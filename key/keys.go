// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Search - these keys select the search provider and bound its result list.
const (
	SearchProvider = "search.provider"
	SearchLimit    = "search.limit"
)

// Playback - these keys configure the external decoder and the progress display.
const (
	PlayerDecoder      = "player.decoder"
	PlayerTickInterval = "player.tick_interval"
)

// Stream resolution - these keys are passed through to yt-dlp.
const (
	ResolverFormat = "resolver.format"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-interactive application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
