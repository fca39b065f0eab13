// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package configedit implements the "config edit" command.
package configedit

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/ibflex/cmd/ibflex/internal/ibflexcmd"
	"github.com/bufdev/ibflex/internal/ibflex/ibflexconfig"
	"github.com/bufdev/ibflex/internal/ibflex/ibflexpath"
	"github.com/spf13/pflag"
)

// editorEnvVar names the editor to open the configuration file with.
const editorEnvVar = "EDITOR"

// NewCommand returns a new config edit command that opens the configuration file in an editor.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name,
		Short: "Edit ibflex.yaml in $EDITOR, creating it first if needed",
		Long: `Edit ibflex.yaml in $EDITOR, creating it first if needed.

The file is validated after the editor exits.`,
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
	editor := container.Env(editorEnvVar)
	if editor == "" {
		return errors.New("EDITOR environment variable is not set")
	}
	configFilePath := ibflexpath.ConfigFilePath(flags.Dir)
	if _, err := os.Stat(configFilePath); os.IsNotExist(err) {
		if _, err := ibflexconfig.InitConfig(flags.Dir); err != nil {
			return err
		}
	}
	cmd := exec.CommandContext(ctx, editor, configFilePath)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running editor: %w", err)
	}
	if err := ibflexconfig.ValidateConfig(flags.Dir); err != nil {
		return fmt.Errorf("%s is invalid: %w", configFilePath, err)
	}
	_, err := fmt.Fprintln(container.Stdout(), configFilePath)
	return err
}
