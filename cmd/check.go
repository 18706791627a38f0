package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/ytplay-cli/ytplay/constant"
	"github.com/ytplay-cli/ytplay/icon"
	"github.com/ytplay-cli/ytplay/style"
)

// installHints maps a dependency to its install command per OS.
var installHints = map[string]map[string]string{
	constant.YtDlp: {
		constant.Darwin:  "brew install yt-dlp",
		constant.Linux:   "pipx install yt-dlp",
		constant.Windows: "scoop install yt-dlp",
	},
	constant.FFplay: {
		constant.Darwin:  "brew install ffmpeg",
		constant.Linux:   "sudo apt install ffmpeg",
		constant.Windows: "scoop install ffmpeg",
	},
	constant.Mpv: {
		constant.Darwin:  "brew install mpv",
		constant.Linux:   "sudo apt install mpv",
		constant.Windows: "scoop install mpv",
	},
}

// CheckDependencies exits when yt-dlp or the decoder is missing from PATH.
func CheckDependencies(decoder string) {
	for _, dep := range []string{constant.YtDlp, decoder} {
		if _, err := exec.LookPath(dep); err != nil {
			printMissingDependencyError(dep)
			os.Exit(1)
		}
	}
}

func printMissingDependencyError(dep string) {
	installCmd := installHints[dep][runtime.GOOS]

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.HiRed).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(style.HiRed).Render(fmt.Sprintf("%s Error: Missing Dependency", icon.Get(icon.Fail)))
	body := style.New().Foreground(style.Text).Render(fmt.Sprintf("The required dependency '%s' was not found in your PATH.", dep))

	suggestion := ""
	if installCmd != "" {
		suggestion = fmt.Sprintf("\n\nTo install it, try running:\n  %s", style.New().Foreground(style.AccentColor).Bold(true).Render(installCmd))
	}

	fmt.Println(box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"\n",
			body,
			suggestion,
		),
	))
}
