package constant

// GOOS values with install hints for missing dependencies.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)
