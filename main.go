package main

import (
	"github.com/samber/lo"
	"github.com/ytplay-cli/ytplay/cmd"
	"github.com/ytplay-cli/ytplay/config"
	"github.com/ytplay-cli/ytplay/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())
	cmd.Execute()
}
