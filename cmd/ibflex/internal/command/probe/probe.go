// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package probe implements the "probe" command for testing Flex Web Service access.
package probe

import (
	"context"
	"fmt"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/ibflex/cmd/ibflex/internal/ibflexcmd"
	"github.com/bufdev/ibflex/internal/ibflex/ibflexconfig"
	"github.com/bufdev/ibflex/internal/pkg/ibkrflex"
	"github.com/bufdev/ibflex/internal/standard/xtime"
	"github.com/spf13/pflag"
)

const (
	// fromFlagName is the flag name for the start date.
	fromFlagName = "from"
	// toFlagName is the flag name for the end date.
	toFlagName = "to"
	// tradeConfirmationFlagName is the flag name for probing the Trade Confirmation query.
	tradeConfirmationFlagName = "trade-confirmation"
)

// NewCommand returns a new probe command for testing Flex Web Service access and date ranges.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name,
		Short: "Probe the IBKR Flex Web Service with a single query",
		Long: `Probe the IBKR Flex Web Service with a single query.

Makes a single Flex Web Service call, parses the returned document, and prints
the number of records in each non-empty section. Does not write any files.

Without --from/--to, uses the query's configured period.
With --from/--to (YYYYMMDD format), overrides the period to test specific date ranges.`,
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
	// From is the start date (YYYYMMDD).
	From string
	// To is the end date (YYYYMMDD).
	To string
	// TradeConfirmation probes the Trade Confirmation query instead of the Activity query.
	TradeConfirmation bool
}

func newFlags() *flags {
	return &flags{}
}

// Bind registers the flag definitions with the given flag set.
func (f *flags) Bind(flagSet *pflag.FlagSet) {
	ibflexcmd.BindDirFlag(flagSet, &f.Dir)
	flagSet.StringVar(
		&f.From,
		fromFlagName,
		"",
		"Start date (YYYYMMDD, optional, requires --to)",
	)
	flagSet.StringVar(
		&f.To,
		toFlagName,
		"",
		"End date (YYYYMMDD, optional, requires --from)",
	)
	flagSet.BoolVar(
		&f.TradeConfirmation,
		tradeConfirmationFlagName,
		false,
		"Probe the Trade Confirmation Flex Query instead of the Activity Flex Query",
	)
}

func run(ctx context.Context, container appext.Container, flags *flags) error {
	if (flags.From == "") != (flags.To == "") {
		return appcmd.NewInvalidArgumentError("--from and --to must be set together")
	}
	var fromDate, toDate xtime.Date
	if flags.From != "" {
		var err error
		fromDate, err = xtime.ParseCompactDate(flags.From)
		if err != nil {
			return appcmd.NewInvalidArgumentErrorf("invalid --from date %q, expected YYYYMMDD format: %v", flags.From, err)
		}
		toDate, err = xtime.ParseCompactDate(flags.To)
		if err != nil {
			return appcmd.NewInvalidArgumentErrorf("invalid --to date %q, expected YYYYMMDD format: %v", flags.To, err)
		}
		if toDate.Before(fromDate) {
			return appcmd.NewInvalidArgumentError("--to must not be before --from")
		}
	}
	config, err := ibflexconfig.ReadConfig(flags.Dir)
	if err != nil {
		return err
	}
	queryID := config.ActivityQueryID
	if flags.TradeConfirmation {
		if config.TradeConfirmationQueryID == "" {
			return appcmd.NewInvalidArgumentErrorf("--%s requires ibkr.trade_confirmation_query_id to be set", tradeConfirmationFlagName)
		}
		queryID = config.TradeConfirmationQueryID
	}
	ibkrToken, err := ibflexcmd.GetIBKRToken(container, config)
	if err != nil {
		return err
	}
	logger := container.Logger()
	logger.Info("probing Flex Web Service", "from", fromDate.String(), "to", toDate.String(), "query_id", queryID)
	data, err := ibflexcmd.NewFlexQueryClient(container, config).Download(ctx, ibkrToken, queryID, fromDate, toDate)
	if err != nil {
		return fmt.Errorf("probe failed: %w", err)
	}
	sectionCounts, err := getSectionCounts(data, append(config.ParseOptions(), ibkrflex.WithLogger(logger)))
	if err != nil {
		return fmt.Errorf("probe failed: %w", err)
	}
	for _, sectionCount := range sectionCounts {
		if sectionCount.Records == 0 {
			continue
		}
		if _, err := fmt.Fprintf(container.Stdout(), "%s: %d\n", sectionCount.Section, sectionCount.Records); err != nil {
			return err
		}
	}
	return nil
}

// getSectionCounts parses data and sums the section counts over all of its statements.
func getSectionCounts(data []byte, parseOptions []ibkrflex.ParseOption) ([]ibkrflex.SectionCount, error) {
	kind, err := ibkrflex.Classify(data)
	if err != nil {
		return nil, err
	}
	switch kind {
	case ibkrflex.DocumentKindActivity:
		response, err := ibkrflex.ParseActivityStatement(data, parseOptions...)
		if err != nil {
			return nil, err
		}
		var sectionCounts []ibkrflex.SectionCount
		for _, statement := range response.Statements {
			sectionCounts = addSectionCounts(sectionCounts, statement.SectionCounts())
		}
		return append([]ibkrflex.SectionCount{{Section: "FlexStatements", Records: len(response.Statements)}}, sectionCounts...), nil
	case ibkrflex.DocumentKindTradeConfirmation:
		statement, err := ibkrflex.ParseTradeConfirmationStatement(data, parseOptions...)
		if err != nil {
			return nil, err
		}
		return statement.SectionCounts(), nil
	default:
		return nil, fmt.Errorf("unexpected document kind %s", kind)
	}
}

// addSectionCounts adds add to sum. The two slices have the same section order.
func addSectionCounts(sum []ibkrflex.SectionCount, add []ibkrflex.SectionCount) []ibkrflex.SectionCount {
	if sum == nil {
		return add
	}
	for i := range add {
		sum[i].Records += add[i].Records
	}
	return sum
}
