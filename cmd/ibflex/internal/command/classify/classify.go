// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package classify implements the "classify" command.
package classify

import (
	"context"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/ibflex/cmd/ibflex/internal/ibflexcmd"
	"github.com/bufdev/ibflex/internal/ibflex/ibflexload"
	"github.com/bufdev/ibflex/internal/pkg/cliio"
	"github.com/spf13/pflag"
)

// NewCommand returns a new classify command that prints the document kind of each file.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name + " [file.xml...]",
		Short: "Print the document kind of Flex statement files",
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
	files, err := ibflexcmd.LoadFiles(ctx, container, flags.Dir, false)
	if err != nil {
		return err
	}
	return cliio.Write(container.Stdout(), format, classifiedFiles(files), files)
}

type classifiedFiles []*ibflexload.File

func (c classifiedFiles) Headers() []string {
	return []string{"PATH", "KIND"}
}

func (c classifiedFiles) Rows() [][]string {
	rows := make([][]string, 0, len(c))
	for _, file := range c {
		rows = append(rows, []string{file.Path, file.Kind.String()})
	}
	return rows
}
