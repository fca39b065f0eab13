// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package trades implements the "trades" command.
package trades

import (
	"context"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/ibflex/cmd/ibflex/internal/ibflexcmd"
	"github.com/bufdev/ibflex/internal/ibflex/ibflexreport"
	"github.com/bufdev/ibflex/internal/pkg/cliio"
	"github.com/bufdev/ibflex/internal/pkg/ibkrflex"
	"github.com/spf13/pflag"
)

const (
	// symbolFlagName is the flag name for filtering by symbol.
	symbolFlagName = "symbol"
	// assetCategoryFlagName is the flag name for filtering by asset category.
	assetCategoryFlagName = "asset-category"
)

// NewCommand returns a new trades command that lists trades.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name + " [file.xml...]",
		Short: "List trades from Flex statement files",
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
	// Symbol filters trades to a symbol or underlying symbol. Empty means all symbols.
	Symbol string
	// AssetCategory filters trades to an IBKR asset category such as STK or OPT.
	AssetCategory string
}

func newFlags() *flags {
	return &flags{}
}

// Bind registers the flag definitions with the given flag set.
func (f *flags) Bind(flagSet *pflag.FlagSet) {
	ibflexcmd.BindDirFlag(flagSet, &f.Dir)
	flagSet.StringVar(&f.Format, ibflexcmd.FormatFlagName, "table", "Output format (table, csv, json, yaml)")
	flagSet.StringVar(&f.Symbol, symbolFlagName, "", "Filter by symbol or underlying symbol (omit for all symbols)")
	flagSet.StringVar(&f.AssetCategory, assetCategoryFlagName, "", "Filter by IBKR asset category, e.g. STK or OPT (omit for all)")
}

func run(ctx context.Context, container appext.Container, flags *flags) error {
	format, err := cliio.ParseFormat(flags.Format)
	if err != nil {
		return appcmd.NewInvalidArgumentError(err.Error())
	}
	filter := ibflexreport.TradeFilter{
		Symbol:        flags.Symbol,
		AssetCategory: ibkrflex.ParseAssetCategory(flags.AssetCategory),
	}
	if filter.AssetCategory == ibkrflex.AssetCategoryUnknown {
		return appcmd.NewInvalidArgumentErrorf("unknown --%s %q", assetCategoryFlagName, flags.AssetCategory)
	}
	files, err := ibflexcmd.LoadFiles(ctx, container, flags.Dir, true)
	if err != nil {
		return err
	}
	trades := ibflexreport.GetTrades(files, filter)
	return cliio.Write(container.Stdout(), format, trades, trades)
}
