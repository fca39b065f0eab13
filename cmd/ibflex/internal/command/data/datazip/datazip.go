// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package datazip implements the "data zip" command.
package datazip

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/ibflex/cmd/ibflex/internal/ibflexcmd"
	"github.com/bufdev/ibflex/internal/ibflex/ibflexpath"
	"github.com/spf13/pflag"
)

// outputFlagName is the flag name for the output zip file path.
const outputFlagName = "output"

// NewCommand returns a new data zip command that archives the config and downloaded statements.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name,
		Short: "Archive ibflex.yaml and the downloaded statements to a zip file",
		Args:  appcmd.NoArgs,
		Run: builder.NewRunFunc(
			func(ctx context.Context, container appext.Container) error {
				return run(ctx, container, flags)
			},
		),
		BindFlags: flags.Bind,
	}
}

type flags struct {
	// Dir is the ibflex directory containing ibflex.yaml and statements/.
	Dir string
	// Output is the path to the output zip file.
	Output string
}

func newFlags() *flags {
	return &flags{}
}

// Bind registers the flag definitions with the given flag set.
func (f *flags) Bind(flagSet *pflag.FlagSet) {
	ibflexcmd.BindDirFlag(flagSet, &f.Dir)
	flagSet.StringVarP(&f.Output, outputFlagName, "o", "", "Output zip file path (required)")
}

func run(_ context.Context, container appext.Container, flags *flags) (retErr error) {
	if flags.Output == "" {
		return appcmd.NewInvalidArgumentError("--output (-o) is required")
	}
	if !strings.HasSuffix(flags.Output, ".zip") {
		return appcmd.NewInvalidArgumentError("output file must have a .zip extension")
	}
	info, err := os.Stat(ibflexpath.StatementsDirPath(flags.Dir))
	if err != nil {
		return fmt.Errorf("no statements in %s, run \"ibflex download\" first: %w", flags.Dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", ibflexpath.StatementsDirPath(flags.Dir))
	}
	outputFile, err := os.Create(flags.Output)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer func() {
		retErr = errors.Join(retErr, outputFile.Close())
	}()
	absOutputPath, err := filepath.Abs(flags.Output)
	if err != nil {
		return err
	}
	numFiles, err := writeArchive(outputFile, flags.Dir, absOutputPath)
	if err != nil {
		return fmt.Errorf("creating zip archive: %w", err)
	}
	container.Logger().Info("zip archive created", "path", flags.Output, "files", numFiles)
	return nil
}

// writeArchive writes a zip archive of the config file, if present, and every file
// under the statements directory of dirPath. Entry names are relative to dirPath
// and use forward slashes. The file at absExcludePath is skipped. It returns the
// number of files written.
func writeArchive(writer io.Writer, dirPath string, absExcludePath string) (int, error) {
	zipWriter := zip.NewWriter(writer)
	numFiles := 0
	addFile := func(filePath string) error {
		relPath, err := filepath.Rel(dirPath, filePath)
		if err != nil {
			return err
		}
		if err := addZipFile(zipWriter, filePath, filepath.ToSlash(relPath)); err != nil {
			return err
		}
		numFiles++
		return nil
	}
	configFilePath := ibflexpath.ConfigFilePath(dirPath)
	if _, err := os.Stat(configFilePath); err == nil {
		if err := addFile(configFilePath); err != nil {
			return 0, err
		}
	}
	if err := filepath.WalkDir(
		ibflexpath.StatementsDirPath(dirPath),
		func(path string, dirEntry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if dirEntry.IsDir() {
				return nil
			}
			// The output archive itself may live under statements/.
			if absPath, err := filepath.Abs(path); err == nil && absPath == absExcludePath {
				return nil
			}
			return addFile(path)
		},
	); err != nil {
		return 0, err
	}
	if err := zipWriter.Close(); err != nil {
		return 0, fmt.Errorf("finalizing zip archive: %w", err)
	}
	return numFiles, nil
}

func addZipFile(zipWriter *zip.Writer, filePath string, name string) (retErr error) {
	file, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer func() {
		retErr = errors.Join(retErr, file.Close())
	}()
	info, err := file.Stat()
	if err != nil {
		return err
	}
	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	header.Name = name
	header.Method = zip.Deflate
	entryWriter, err := zipWriter.CreateHeader(header)
	if err != nil {
		return err
	}
	_, err = io.Copy(entryWriter, file)
	return err
}
