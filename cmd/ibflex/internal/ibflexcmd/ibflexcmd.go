// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package ibflexcmd provides shared wiring for ibflex commands: reading
// config, getting the IBKR token, constructing clients, and loading statement files.
package ibflexcmd

import (
	"context"
	"errors"
	"fmt"

	"buf.build/go/app/appext"
	"github.com/bufdev/ibflex/internal/ibflex/ibflexconfig"
	"github.com/bufdev/ibflex/internal/ibflex/ibflexdownload"
	"github.com/bufdev/ibflex/internal/ibflex/ibflexload"
	"github.com/bufdev/ibflex/internal/pkg/ibkrflex"
	"github.com/bufdev/ibflex/internal/pkg/ibkrflexquery"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

const (
	// DirFlagName is the flag name for the base directory containing ibflex.yaml.
	DirFlagName = "dir"
	// FormatFlagName is the flag name for the output format.
	FormatFlagName = "format"
	// ibkrTokenEnvVar is the environment variable name for the IBKR Flex Web Service token.
	ibkrTokenEnvVar = "IBKR_TOKEN"
)

// BindDirFlag binds the --dir flag to dir.
func BindDirFlag(flagSet *pflag.FlagSet, dir *string) {
	flagSet.StringVar(dir, DirFlagName, ".", "The ibflex directory containing ibflex.yaml")
}

// NewFlexQueryClient constructs a Flex Web Service client configured from config.
func NewFlexQueryClient(container appext.Container, config *ibflexconfig.Config) ibkrflexquery.Client {
	return ibkrflexquery.NewClient(
		ibkrflexquery.ClientWithLogger(container.Logger()),
		ibkrflexquery.ClientWithRetryPolicy(config.RetryPolicy),
		ibkrflexquery.ClientWithRateLimiter(ibkrflexquery.NewRateLimiter(config.RequestsPerMinute)),
	)
}

// NewDownloader constructs a Downloader from the appext container by reading the
// config file, getting the IBKR token, and creating the Flex Web Service client.
func NewDownloader(container appext.Container, dirPath string) (ibflexdownload.Downloader, error) {
	config, err := ibflexconfig.ReadConfig(dirPath)
	if err != nil {
		return nil, err
	}
	ibkrToken, err := GetIBKRToken(container, config)
	if err != nil {
		return nil, err
	}
	return ibflexdownload.NewDownloader(
		container.Logger(),
		ibkrToken,
		config,
		NewFlexQueryClient(container, config),
	), nil
}

// GetIBKRToken returns the Flex Web Service token from the IBKR_TOKEN environment
// variable, falling back to the config's dotenv file.
func GetIBKRToken(container appext.Container, config *ibflexconfig.Config) (string, error) {
	if ibkrToken := container.Env(ibkrTokenEnvVar); ibkrToken != "" {
		return ibkrToken, nil
	}
	if config.EnvFilePath != "" {
		envMap, err := godotenv.Read(config.EnvFilePath)
		if err != nil {
			return "", fmt.Errorf("reading env file: %w", err)
		}
		if ibkrToken := envMap[ibkrTokenEnvVar]; ibkrToken != "" {
			return ibkrToken, nil
		}
	}
	return "", errors.New("IBKR_TOKEN environment variable is required, set it to your IBKR Flex Web Service token or set ibkr.env_file in ibflex.yaml (see \"ibflex --help\" for details)")
}

// LoadFiles loads the statement files named by the container's arguments.
//
// Without arguments, it loads the files of the last download run in dirPath.
// If dirPath has a config file, its parse settings are used. When parse is
// false, files are only classified.
func LoadFiles(ctx context.Context, container appext.Container, dirPath string, parse bool) ([]*ibflexload.File, error) {
	filePaths := make([]string, 0, container.NumArgs())
	for i := range container.NumArgs() {
		filePaths = append(filePaths, container.Arg(i))
	}
	if len(filePaths) == 0 {
		manifest, err := ibflexdownload.ReadManifest(dirPath)
		if err != nil {
			return nil, err
		}
		filePaths = manifest.FilePaths(dirPath)
	}
	loadOptions := []ibflexload.LoadOption{
		ibflexload.WithLogger(container.Logger()),
	}
	parseOptions, err := getParseOptions(dirPath)
	if err != nil {
		return nil, err
	}
	loadOptions = append(loadOptions, ibflexload.WithParseOptions(parseOptions...))
	if !parse {
		return ibflexload.Classify(ctx, filePaths, loadOptions...)
	}
	return ibflexload.Load(ctx, filePaths, loadOptions...)
}

// *** PRIVATE ***

// getParseOptions returns the parse options of the config in dirPath, or nil
// if there is no config file.
func getParseOptions(dirPath string) ([]ibkrflex.ParseOption, error) {
	config, err := ibflexconfig.ReadConfig(dirPath)
	if err != nil {
		if errors.Is(err, ibflexconfig.ErrConfigNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return config.ParseOptions(), nil
}
