// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package download implements the "download" command.
package download

import (
	"context"
	"fmt"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/ibflex/cmd/ibflex/internal/ibflexcmd"
	"github.com/spf13/pflag"
)

// NewCommand returns a new download command that downloads Flex statements.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name,
		Short: "Download Flex statements via the Flex Web Service",
		Long: `Download Flex statements via the Flex Web Service.

Runs the configured Activity Flex Query, and the Trade Confirmation Flex Query
if one is configured, over each query's configured period. Every document is
validated before anything is written. The statements are written under
statements/ in the ibflex directory, and statements/manifest.yaml records
the files of the run. Prints the path of each written file.`,
		Args: appcmd.NoArgs,
		Run: builder.NewRunFunc(
			func(ctx context.Context, container appext.Container) error {
				return run(ctx, container, flags)
			},
		),
		BindFlags: flags.Bind,
	}
}

type flags struct {
	// Dir is the ibflex directory containing ibflex.yaml.
	Dir string
}

func newFlags() *flags {
	return &flags{}
}

// Bind registers the flag definitions with the given flag set.
func (f *flags) Bind(flagSet *pflag.FlagSet) {
	ibflexcmd.BindDirFlag(flagSet, &f.Dir)
}

func run(ctx context.Context, container appext.Container, flags *flags) error {
	downloader, err := ibflexcmd.NewDownloader(container, flags.Dir)
	if err != nil {
		return err
	}
	manifest, err := downloader.Download(ctx)
	if err != nil {
		return err
	}
	for _, filePath := range manifest.FilePaths(flags.Dir) {
		if _, err := fmt.Fprintln(container.Stdout(), filePath); err != nil {
			return err
		}
	}
	return nil
}
