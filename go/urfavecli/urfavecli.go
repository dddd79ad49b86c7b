// Package urfavecli contains helpers for programs built with
// github.com/urfave/cli/v2.
package urfavecli

import (
	cli "github.com/urfave/cli/v2"
	"go.skia.org/rpncalc/go/sklog"
)

// LogFlags logs the value of every flag visible to the running command, app
// level flags first, one per line, in the form "Flags: --name=value".
func LogFlags(c *cli.Context) {
	seen := map[string]bool{}
	var flags []cli.Flag
	flags = append(flags, c.App.Flags...)
	if c.Command != nil {
		flags = append(flags, c.Command.Flags...)
	}
	for _, f := range flags {
		names := f.Names()
		if len(names) == 0 || seen[names[0]] {
			continue
		}
		seen[names[0]] = true
		sklog.Infof("Flags: --%s=%v", names[0], c.Value(names[0]))
	}
}
