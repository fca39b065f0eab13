// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package data implements the "data" command group.
package data

import (
	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/ibflex/cmd/ibflex/internal/command/data/datazip"
)

// NewCommand returns a new data command group for managing downloaded statements.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	return &appcmd.Command{
		Use:   name,
		Short: "Manage downloaded statements",
		SubCommands: []*appcmd.Command{
			datazip.NewCommand("zip", builder),
		},
	}
}
