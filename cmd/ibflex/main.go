// Copyright 2026 Peter Edge
//
// All rights reserved.

package main

import (
	"context"
	_ "time/tzdata" // parse.time_zone accepts any IANA zone.

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/ibflex/cmd/ibflex/internal/command/cash"
	"github.com/bufdev/ibflex/cmd/ibflex/internal/command/classify"
	"github.com/bufdev/ibflex/cmd/ibflex/internal/command/config"
	"github.com/bufdev/ibflex/cmd/ibflex/internal/command/data"
	"github.com/bufdev/ibflex/cmd/ibflex/internal/command/download"
	"github.com/bufdev/ibflex/cmd/ibflex/internal/command/parse"
	"github.com/bufdev/ibflex/cmd/ibflex/internal/command/probe"
	"github.com/bufdev/ibflex/cmd/ibflex/internal/command/trades"
)

func main() {
	appcmd.Main(context.Background(), newRootCommand("ibflex"))
}

// newRootCommand creates the root ibflex command with all sub-commands.
func newRootCommand(name string) *appcmd.Command {
	builder := appext.NewBuilder(name)
	return &appcmd.Command{
		Use:   name,
		Short: "Download and inspect Interactive Brokers Flex statements",
		Long: `Download and inspect Interactive Brokers Flex statements.

Commands that read statements take XML file paths as arguments. Without
arguments, they read the files recorded by the last "ibflex download" run
in the directory given by --dir.

Commands that call the Flex Web Service read the token from the IBKR_TOKEN
environment variable, or from the ibkr.env_file dotenv file in ibflex.yaml.`,
		BindPersistentFlags: builder.BindRoot,
		SubCommands: []*appcmd.Command{
			classify.NewCommand("classify", builder),
			parse.NewCommand("parse", builder),
			trades.NewCommand("trades", builder),
			cash.NewCommand("cash", builder),
			download.NewCommand("download", builder),
			probe.NewCommand("probe", builder),
			config.NewCommand("config", builder),
			data.NewCommand("data", builder),
		},
	}
}
