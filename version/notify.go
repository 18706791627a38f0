package version

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/viper"
	"github.com/ytplay-cli/ytplay/color"
	"github.com/ytplay-cli/ytplay/constant"
	"github.com/ytplay-cli/ytplay/icon"
	"github.com/ytplay-cli/ytplay/key"
	"github.com/ytplay-cli/ytplay/log"
	"github.com/ytplay-cli/ytplay/style"
	"github.com/ytplay-cli/ytplay/util"
)

// Notify prints a notice when a newer release than the running one exists.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	erase := util.PrintErasable(fmt.Sprintf("%s Checking if new version is available...", icon.Get(icon.Progress)))
	latest, err := Latest(ctx)
	erase()

	if err != nil {
		log.Warnf("version check: %s", err)
		return
	}

	if comp, err := Compare(latest, constant.Version); err != nil || comp <= 0 {
		return
	}

	fmt.Printf(`
%s New version is available %s %s
%s

`,
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(latest),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint("https://github.com/ytplay-cli/ytplay/releases/tag/v"+latest),
	)
}
