// Package main is the entry point for the loutube application.
package main

import (
	"github.com/loutube-cli/loutube/cmd"
	"github.com/loutube-cli/loutube/config"
	"github.com/loutube-cli/loutube/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
