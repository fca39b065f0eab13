// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package ibflexdownload provides the download orchestrator for IBKR Flex statements.
package ibflexdownload

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bufdev/ibflex/internal/ibflex/ibflexconfig"
	"github.com/bufdev/ibflex/internal/ibflex/ibflexpath"
	"github.com/bufdev/ibflex/internal/pkg/ibkrflex"
	"github.com/bufdev/ibflex/internal/pkg/ibkrflexquery"
	"github.com/bufdev/ibflex/internal/standard/xtime"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// multipleAccounts is the account part of the file name of a document that
// contains statements for more than one account.
const multipleAccounts = "multiple"

// Manifest records one download run. It is written to statements/manifest.yaml.
type Manifest struct {
	// RunID uniquely identifies the run.
	RunID string `yaml:"run_id"`
	// DownloadTime is when the run completed.
	DownloadTime time.Time `yaml:"download_time"`
	// Files are the statements written by the run, activity first.
	Files []*ManifestFile `yaml:"files"`
}

// ManifestFile describes one downloaded statement file.
type ManifestFile struct {
	// Path is the file path relative to the base directory.
	Path string `yaml:"path"`
	// Kind is the document kind, e.g. "activity".
	Kind ibkrflex.DocumentKind `yaml:"kind"`
	// QueryID is the Flex Query that produced the file.
	QueryID string `yaml:"query_id"`
	// AccountIDs are the accounts of the statements in the file.
	AccountIDs []string `yaml:"account_ids"`
	// FromDate is the earliest statement start date.
	FromDate xtime.Date `yaml:"from_date"`
	// ToDate is the latest statement end date.
	ToDate xtime.Date `yaml:"to_date"`
	// Bytes is the size of the file.
	Bytes int `yaml:"bytes"`
}

// Downloader is the interface for downloading and storing Flex statements.
type Downloader interface {
	// Download fetches every configured Flex Query, validates each document by
	// parsing it, and writes the raw XML and a manifest under the base directory.
	//
	// Nothing is written unless every query succeeds.
	Download(ctx context.Context) (*Manifest, error)
}

// NewDownloader creates a new Downloader.
//
// The ibkrToken is the Flex Web Service token.
func NewDownloader(
	logger *slog.Logger,
	ibkrToken string,
	config *ibflexconfig.Config,
	flexQueryClient ibkrflexquery.Client,
) Downloader {
	return &downloader{
		logger:          logger,
		ibkrToken:       ibkrToken,
		config:          config,
		flexQueryClient: flexQueryClient,
		now:             time.Now,
	}
}

// ReadManifest reads the manifest of the last download run from the base directory.
func ReadManifest(dirPath string) (*Manifest, error) {
	data, err := os.ReadFile(ibflexpath.ManifestFilePath(dirPath))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("no download manifest in %s, run \"ibflex download\" first", dirPath)
		}
		return nil, err
	}
	manifest := &Manifest{}
	if err := yaml.Unmarshal(data, manifest); err != nil {
		return nil, fmt.Errorf("parsing download manifest: %w", err)
	}
	return manifest, nil
}

// FilePaths returns the paths of the manifest's files joined to dirPath.
func (m *Manifest) FilePaths(dirPath string) []string {
	filePaths := make([]string, 0, len(m.Files))
	for _, file := range m.Files {
		filePaths = append(filePaths, filepath.Join(dirPath, file.Path))
	}
	return filePaths
}

// *** PRIVATE ***

type downloader struct {
	logger          *slog.Logger
	ibkrToken       string
	config          *ibflexconfig.Config
	flexQueryClient ibkrflexquery.Client
	now             func() time.Time
}

type query struct {
	queryID string
	kind    ibkrflex.DocumentKind
}

// document is a fetched and validated Flex document waiting to be written.
type document struct {
	data []byte
	file *ManifestFile
}

func (d *downloader) Download(ctx context.Context) (*Manifest, error) {
	queries := []query{
		{queryID: d.config.ActivityQueryID, kind: ibkrflex.DocumentKindActivity},
	}
	if d.config.TradeConfirmationQueryID != "" {
		queries = append(queries, query{queryID: d.config.TradeConfirmationQueryID, kind: ibkrflex.DocumentKindTradeConfirmation})
	}
	documents := make([]*document, len(queries))
	eg, ctx := errgroup.WithContext(ctx)
	for i, query := range queries {
		eg.Go(func() error {
			d.logger.Info("downloading flex query", "query_id", query.queryID, "kind", query.kind.String())
			data, err := d.flexQueryClient.Download(ctx, d.ibkrToken, query.queryID, xtime.Date{}, xtime.Date{})
			if err != nil {
				return fmt.Errorf("downloading %s query %s: %w", query.kind, query.queryID, err)
			}
			file, err := d.validate(data, query.kind)
			if err != nil {
				return fmt.Errorf("validating %s query %s: %w", query.kind, query.queryID, err)
			}
			file.QueryID = query.queryID
			documents[i] = &document{data: data, file: file}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	manifest := &Manifest{
		RunID: uuid.NewString(),
	}
	for _, document := range documents {
		if err := d.write(document); err != nil {
			return nil, err
		}
		manifest.Files = append(manifest.Files, document.file)
	}
	manifest.DownloadTime = d.now().UTC()
	if err := writeManifest(ibflexpath.ManifestFilePath(d.config.DirPath), manifest); err != nil {
		return nil, err
	}
	d.logger.Info("download complete", "run_id", manifest.RunID, "files", len(manifest.Files))
	return manifest, nil
}

// validate classifies and fully parses data, and returns the manifest entry
// for it with Path set.
func (d *downloader) validate(data []byte, expected ibkrflex.DocumentKind) (*ManifestFile, error) {
	kind, err := ibkrflex.Classify(data)
	if err != nil {
		return nil, err
	}
	if kind != expected {
		return nil, &ibkrflex.WrongSchemaError{Expected: expected, Actual: kind}
	}
	parseOptions := append(d.config.ParseOptions(), ibkrflex.WithLogger(d.logger))
	file := &ManifestFile{
		Kind:  kind,
		Bytes: len(data),
	}
	switch kind {
	case ibkrflex.DocumentKindActivity:
		response, err := ibkrflex.ParseActivityStatement(data, parseOptions...)
		if err != nil {
			return nil, err
		}
		for _, statement := range response.Statements {
			file.AccountIDs = append(file.AccountIDs, statement.AccountID)
			if file.FromDate.IsZero() || statement.FromDate.Before(file.FromDate) {
				file.FromDate = statement.FromDate
			}
			if statement.ToDate.After(file.ToDate) {
				file.ToDate = statement.ToDate
			}
		}
	case ibkrflex.DocumentKindTradeConfirmation:
		statement, err := ibkrflex.ParseTradeConfirmationStatement(data, parseOptions...)
		if err != nil {
			return nil, err
		}
		file.AccountIDs = []string{statement.AccountID}
		file.FromDate = statement.FromDate
		file.ToDate = statement.ToDate
		// Confirmation statements often carry only whenGenerated.
		if file.FromDate.IsZero() && !statement.WhenGenerated.IsZero() {
			file.FromDate = xtime.TimeToDate(statement.WhenGenerated)
		}
		if file.ToDate.IsZero() {
			file.ToDate = file.FromDate
		}
	default:
		return nil, fmt.Errorf("unsupported document kind %s", kind)
	}
	accountPart := multipleAccounts
	if len(file.AccountIDs) == 1 {
		accountPart = file.AccountIDs[0]
	}
	if accountPart == "" || strings.ContainsAny(accountPart, `/\`) {
		return nil, fmt.Errorf("account id %q cannot be used in a file name", accountPart)
	}
	file.Path, err = filepath.Rel(
		d.config.DirPath,
		ibflexpath.StatementFilePath(d.config.DirPath, kind.String(), accountPart, file.FromDate, file.ToDate),
	)
	if err != nil {
		return nil, err
	}
	return file, nil
}

func (d *downloader) write(document *document) error {
	filePath := filepath.Join(d.config.DirPath, document.file.Path)
	if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		return fmt.Errorf("creating statements directory: %w", err)
	}
	if err := os.WriteFile(filePath, document.data, 0o644); err != nil {
		return fmt.Errorf("writing statement: %w", err)
	}
	d.logger.Info(
		"statement written",
		"path", filePath,
		"kind", document.file.Kind.String(),
		"accounts", len(document.file.AccountIDs),
		"bytes", document.file.Bytes,
	)
	return nil
}

func writeManifest(filePath string, manifest *Manifest) error {
	data, err := yaml.Marshal(manifest)
	if err != nil {
		return fmt.Errorf("marshaling download manifest: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		return fmt.Errorf("creating statements directory: %w", err)
	}
	if err := os.WriteFile(filePath, data, 0o644); err != nil {
		return fmt.Errorf("writing download manifest: %w", err)
	}
	return nil
}
