// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package configinit implements the "config init" command.
package configinit

import (
	"context"
	"fmt"
	"io"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/ibflex/cmd/ibflex/internal/ibflexcmd"
	"github.com/bufdev/ibflex/internal/ibflex/ibflexconfig"
	"github.com/spf13/pflag"
)

const longHelp = `Create a new ibflex.yaml in the ibflex directory.

The file configures:

  version                           Always v1.
  ibkr.activity_query_id            Flex Query ID of the activity statement. Required.
  ibkr.trade_confirmation_query_id  Flex Query ID of the trade confirmation statement.
  ibkr.env_file                     Dotenv file that provides IBKR_TOKEN.
  download.max_attempts             Attempts per Flex Web Service request.
  download.initial_retry_delay      Delay before the first retry, as a Go duration.
  download.max_retry_delay          Upper bound on the retry delay.
  download.requests_per_minute      Client-side rate limit for the Flex Web Service.
  parse.date_time_separator         Separator between date and time in date-times.
  parse.time_zone                   IANA time zone that date-times are read in.

Every optional key is written commented out with its default. The command
fails if ibflex.yaml already exists. The path of the new file is printed on
stdout.`

// NewCommand returns a new config init command that creates a documented configuration file.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name,
		Short: "Create a new ibflex.yaml with documented defaults",
		Long:  longHelp,
		Args:  appcmd.NoArgs,
		Run: builder.NewRunFunc(
			func(ctx context.Context, container appext.Container) error {
				return run(ctx, container, flags)
			},
		),
		BindFlags: flags.Bind,
	}
}

type flags struct {
	// Dir is the ibflex directory to create ibflex.yaml in.
	Dir string
}

func newFlags() *flags {
	return &flags{}
}

// Bind registers the flag definitions with the given flag set.
func (f *flags) Bind(flagSet *pflag.FlagSet) {
	ibflexcmd.BindDirFlag(flagSet, &f.Dir)
}

func run(_ context.Context, container appext.Container, flags *flags) error {
	return initConfig(container.Stdout(), container.Stderr(), flags.Dir)
}

// initConfig writes the new file path to stdout and the next step to stderr.
func initConfig(stdout io.Writer, stderr io.Writer, dirPath string) error {
	filePath, err := ibflexconfig.InitConfig(dirPath)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(stdout, filePath); err != nil {
		return err
	}
	_, err = fmt.Fprintf(stderr, "set ibkr.activity_query_id in %s, then run \"ibflex config validate\"\n", filePath)
	return err
}
