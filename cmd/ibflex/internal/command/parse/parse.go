// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package parse implements the "parse" command.
package parse

import (
	"context"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/ibflex/cmd/ibflex/internal/ibflexcmd"
	"github.com/bufdev/ibflex/internal/ibflex/ibflexreport"
	"github.com/bufdev/ibflex/internal/pkg/cliio"
	"github.com/spf13/pflag"
)

// NewCommand returns a new parse command that parses Flex statement files.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name + " [file.xml...]",
		Short: "Parse Flex statement files and summarize each statement",
		Long: `Parse Flex statement files and summarize each statement.

The table and csv formats print one row per statement with its record counts.
The json and yaml formats print the full parsed documents.`,
		Run: builder.NewRunFunc(
			func(ctx context.Context, container appext.Container) error {
				return run(ctx, container, flags)
			},
		),
		BindFlags: flags.Bind,
	}
}

type flags struct {
	// Dir is the ibflex directory, used when no files are given.
	Dir string
	// Format is the output format (table, csv, json, yaml).
	Format string
}

func newFlags() *flags {
	return &flags{}
}

// Bind registers the flag definitions with the given flag set.
func (f *flags) Bind(flagSet *pflag.FlagSet) {
	ibflexcmd.BindDirFlag(flagSet, &f.Dir)
	flagSet.StringVar(&f.Format, ibflexcmd.FormatFlagName, "table", "Output format (table, csv, json, yaml)")
}

func run(ctx context.Context, container appext.Container, flags *flags) error {
	format, err := cliio.ParseFormat(flags.Format)
	if err != nil {
		return appcmd.NewInvalidArgumentError(err.Error())
	}
	files, err := ibflexcmd.LoadFiles(ctx, container, flags.Dir, true)
	if err != nil {
		return err
	}
	return cliio.Write(container.Stdout(), format, ibflexreport.GetStatementSummaries(files), files)
}
