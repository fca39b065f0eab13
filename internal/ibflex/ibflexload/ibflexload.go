// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package ibflexload reads and parses Flex statement files concurrently.
package ibflexload

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/bufdev/ibflex/internal/pkg/ibkrflex"
	"golang.org/x/sync/errgroup"
)

// File is a loaded Flex statement file.
type File struct {
	// Path is the path the file was read from.
	Path string `json:"path" yaml:"path"`
	// Kind is the document kind of the file.
	Kind ibkrflex.DocumentKind `json:"kind" yaml:"kind"`
	// Activity is the parsed document if Kind is DocumentKindActivity.
	//
	// Nil if the file was only classified.
	Activity *ibkrflex.Response `json:"activity,omitempty" yaml:"activity,omitempty"`
	// TradeConfirmation is the parsed document if Kind is DocumentKindTradeConfirmation.
	//
	// Nil if the file was only classified.
	TradeConfirmation *ibkrflex.TradeConfirmationStatement `json:"trade_confirmation,omitempty" yaml:"trade_confirmation,omitempty"`
}

// LoadOption is an option for Load and Classify.
type LoadOption func(*loadOptions)

// WithParallelism sets the maximum number of files processed at once.
//
// The default is runtime.GOMAXPROCS(0). Values less than 1 are ignored.
func WithParallelism(parallelism int) LoadOption {
	return func(loadOptions *loadOptions) {
		if parallelism > 0 {
			loadOptions.parallelism = parallelism
		}
	}
}

// WithParseOptions sets the options passed to the ibkrflex parse functions.
func WithParseOptions(parseOptions ...ibkrflex.ParseOption) LoadOption {
	return func(loadOptions *loadOptions) {
		loadOptions.parseOptions = append(loadOptions.parseOptions, parseOptions...)
	}
}

// WithLogger sets the logger.
//
// The default discards all output.
func WithLogger(logger *slog.Logger) LoadOption {
	return func(loadOptions *loadOptions) {
		if logger != nil {
			loadOptions.logger = logger
		}
	}
}

// Load reads and fully parses each file.
//
// Files are returned in the order of filePaths. The first error stops the run.
func Load(ctx context.Context, filePaths []string, options ...LoadOption) ([]*File, error) {
	return forEachFile(ctx, filePaths, options, true)
}

// Classify reads each file and determines its document kind without parsing it.
//
// Files are returned in the order of filePaths. The first error stops the run.
func Classify(ctx context.Context, filePaths []string, options ...LoadOption) ([]*File, error) {
	return forEachFile(ctx, filePaths, options, false)
}

// *** PRIVATE ***

type loadOptions struct {
	parallelism  int
	parseOptions []ibkrflex.ParseOption
	logger       *slog.Logger
}

func newLoadOptions(options []LoadOption) *loadOptions {
	loadOptions := &loadOptions{
		parallelism: runtime.GOMAXPROCS(0),
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, option := range options {
		option(loadOptions)
	}
	return loadOptions
}

func forEachFile(ctx context.Context, filePaths []string, options []LoadOption, parse bool) ([]*File, error) {
	loadOptions := newLoadOptions(options)
	files := make([]*File, len(filePaths))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(loadOptions.parallelism)
	for i, filePath := range filePaths {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			file, err := loadFile(filePath, loadOptions, parse)
			if err != nil {
				return fmt.Errorf("%s: %w", filePath, err)
			}
			files[i] = file
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return files, nil
}

func loadFile(filePath string, loadOptions *loadOptions, parse bool) (*File, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	kind, err := ibkrflex.Classify(data)
	if err != nil {
		return nil, err
	}
	file := &File{
		Path: filePath,
		Kind: kind,
	}
	if !parse {
		return file, nil
	}
	parseOptions := append(
		[]ibkrflex.ParseOption{ibkrflex.WithLogger(loadOptions.logger.With("path", filePath))},
		loadOptions.parseOptions...,
	)
	switch kind {
	case ibkrflex.DocumentKindActivity:
		file.Activity, err = ibkrflex.ParseActivityStatement(data, parseOptions...)
	case ibkrflex.DocumentKindTradeConfirmation:
		file.TradeConfirmation, err = ibkrflex.ParseTradeConfirmationStatement(data, parseOptions...)
	default:
		err = fmt.Errorf("unsupported document kind %s", kind)
	}
	if err != nil {
		return nil, err
	}
	loadOptions.logger.Debug("file loaded", "path", filePath, "kind", kind.String(), "bytes", len(data))
	return file, nil
}
