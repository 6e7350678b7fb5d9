package drive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/time/rate"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/AlyyanAhmed21/ai-portfolio/internal/core/domain"
	"github.com/AlyyanAhmed21/ai-portfolio/internal/core/ports/driven"
	"github.com/AlyyanAhmed21/ai-portfolio/internal/logger"
)

// Ensure Loader implements the interface.
var _ driven.DocumentLoader = (*Loader)(nil)

// Drive MIME types the loader understands.
const (
	MimeTypeGoogleDoc = "application/vnd.google-apps.document"
	MimeTypePDF       = "application/pdf"
)

// ExportMimeText is the export format for Google Docs.
const ExportMimeText = "text/plain"

// MaxExportSize is the maximum size for exported content (5MB).
const MaxExportSize = 5 * 1024 * 1024

// requestsPerSecond throttles Drive API calls; Google allows 10/sec/user.
const requestsPerSecond = 8.0

// Loader-specific errors.
var (
	// ErrMissingFolderID indicates no Drive folder was configured.
	ErrMissingFolderID = errors.New("drive: folder ID is required")

	// ErrMissingCredentials indicates no service account file was configured.
	ErrMissingCredentials = errors.New("drive: credentials file is required")
)

// Config holds the loader configuration.
type Config struct {
	// CredentialsFile is the path to the service account JSON key (required).
	CredentialsFile string

	// FolderID is the Drive folder to load documents from (required).
	FolderID string
}

// Loader reads personal documents from a Google Drive folder.
type Loader struct {
	svc      *drive.Service
	folderID string
	limiter  *rate.Limiter
}

// NewLoader creates a Drive document loader authenticated with a service
// account.
func NewLoader(ctx context.Context, cfg Config) (*Loader, error) {
	if cfg.FolderID == "" {
		return nil, ErrMissingFolderID
	}
	if cfg.CredentialsFile == "" {
		return nil, ErrMissingCredentials
	}

	svc, err := drive.NewService(ctx,
		option.WithCredentialsFile(cfg.CredentialsFile),
		option.WithScopes(drive.DriveReadonlyScope),
	)
	if err != nil {
		return nil, fmt.Errorf("create drive service: %w", err)
	}

	return &Loader{
		svc:      svc,
		folderID: cfg.FolderID,
		limiter:  rate.NewLimiter(rate.Limit(requestsPerSecond), 10),
	}, nil
}

// Name identifies the loader for logging.
func (l *Loader) Name() string {
	return "gdrive"
}

// Load lists the folder's Google Docs and PDFs and returns the text of the
// Docs as personal documents. PDFs are logged and skipped - there is no
// text extraction for them.
func (l *Loader) Load(ctx context.Context) ([]domain.Document, error) {
	logger.Section("Google Drive")
	logger.Info("Listing documents in folder %s", l.folderID)

	if err := l.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	result, err := l.svc.Files.List().
		Q(folderQuery(l.folderID)).
		Fields("files(id, name, mimeType)").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("list folder %q: %w", l.folderID, err)
	}

	if len(result.Files) == 0 {
		logger.Warn("No relevant documents found in Drive folder %s", l.folderID)
		return []domain.Document{}, nil
	}

	docs := make([]domain.Document, 0, len(result.Files))
	for _, file := range result.Files {
		logger.Debug("Found document: %q (%s)", file.Name, file.MimeType)

		if file.MimeType == MimeTypePDF {
			logger.Warn("Skipping PDF %q: no text extraction available", file.Name)
			continue
		}

		if err := l.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		content, err := l.exportDoc(ctx, file.Id)
		if err != nil {
			return nil, fmt.Errorf("export %q: %w", file.Name, err)
		}
		if strings.TrimSpace(content) == "" {
			logger.Warn("Document %q exported empty, skipping", file.Name)
			continue
		}

		docs = append(docs, domain.Document{
			Content: content,
			Metadata: map[string]string{
				domain.MetadataSource: domain.SourceDriveDocument,
				"file_id":             file.Id,
				"file_name":           file.Name,
			},
		})
	}

	logger.Info("Loaded %d documents from Google Drive", len(docs))
	return docs, nil
}

// exportDoc exports a Google Doc to plain text.
func (l *Loader) exportDoc(ctx context.Context, fileID string) (string, error) {
	resp, err := l.svc.Files.Export(fileID, ExportMimeText).Context(ctx).Download()
	if err != nil {
		return "", fmt.Errorf("export file: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxExportSize))
	if err != nil {
		return "", fmt.Errorf("read export: %w", err)
	}

	return string(data), nil
}

// folderQuery builds the Drive search query for the folder's Google Docs
// and PDFs, excluding trashed files.
func folderQuery(folderID string) string {
	return fmt.Sprintf(
		"'%s' in parents and (mimeType='%s' or mimeType='%s') and trashed = false",
		folderID, MimeTypePDF, MimeTypeGoogleDoc,
	)
}
