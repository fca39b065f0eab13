// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package cash implements the "cash" command.
package cash

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

// typeFlagName is the flag name for filtering by cash transaction type.
const typeFlagName = "type"

// NewCommand returns a new cash command that lists cash transactions.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name + " [file.xml...]",
		Short: "List cash transactions from Flex activity statements",
		Long: `List cash transactions from Flex activity statements.

The table format ends with the total amount per currency.`,
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
	// Type filters cash transactions to an IBKR type such as Dividends.
	Type string
}

func newFlags() *flags {
	return &flags{}
}

// Bind registers the flag definitions with the given flag set.
func (f *flags) Bind(flagSet *pflag.FlagSet) {
	ibflexcmd.BindDirFlag(flagSet, &f.Dir)
	flagSet.StringVar(&f.Format, ibflexcmd.FormatFlagName, "table", "Output format (table, csv, json, yaml)")
	flagSet.StringVar(&f.Type, typeFlagName, "", `Filter by IBKR cash transaction type, e.g. "Dividends" (omit for all)`)
}

func run(ctx context.Context, container appext.Container, flags *flags) error {
	format, err := cliio.ParseFormat(flags.Format)
	if err != nil {
		return appcmd.NewInvalidArgumentError(err.Error())
	}
	filter := ibflexreport.CashTransactionFilter{
		Type: ibkrflex.ParseCashTransactionType(flags.Type),
	}
	if filter.Type == ibkrflex.CashTransactionTypeUnknown {
		return appcmd.NewInvalidArgumentErrorf("unknown --%s %q", typeFlagName, flags.Type)
	}
	files, err := ibflexcmd.LoadFiles(ctx, container, flags.Dir, true)
	if err != nil {
		return err
	}
	cashTransactions := ibflexreport.GetCashTransactions(files, filter)
	if format != cliio.FormatTable {
		return cliio.Write(container.Stdout(), format, cashTransactions, cashTransactions)
	}
	headers := cashTransactions.Headers()
	var totalsRows [][]string
	for _, total := range ibflexreport.ComputeCashTotals(cashTransactions) {
		totalsRow := make([]string, len(headers))
		totalsRow[0] = "TOTAL"
		totalsRow[5] = total.Amount
		totalsRow[6] = total.Currency
		totalsRows = append(totalsRows, totalsRow)
	}
	return cliio.WriteTableWithTotals(container.Stdout(), headers, cashTransactions.Rows(), totalsRows)
}
