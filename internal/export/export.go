// Package export writes the bulletin to the two output formats: a Markdown
// file and a PDF rendered from the same document. Prior output at the fixed
// paths is silently overwritten.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/frnietz/newsletter-tr/internal/bulletin"
	"github.com/frnietz/newsletter-tr/internal/logger"
	"github.com/frnietz/newsletter-tr/internal/store"
)

// Exporter writes bulletin documents to the configured output directory.
type Exporter struct {
	dir          string
	markdownFile string
	pdfFile      string
}

// NewExporter creates an exporter from config.
func NewExporter(cfg *store.Config) *Exporter {
	return &Exporter{
		dir:          cfg.Output.Dir,
		markdownFile: cfg.Output.MarkdownFile,
		pdfFile:      cfg.Output.PDFFile,
	}
}

// Export writes both documents and returns their paths, Markdown first.
// I/O failures propagate; a failed PDF still leaves the Markdown on disk.
func (e *Exporter) Export(ctx context.Context, b *bulletin.Bulletin) (mdPath, pdfPath string, err error) {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", "", fmt.Errorf("create output dir: %w", err)
	}

	doc := BuildDocument(b)

	mdPath = filepath.Join(e.dir, e.markdownFile)
	if err := os.WriteFile(mdPath, []byte(doc), 0o644); err != nil {
		return "", "", fmt.Errorf("write markdown: %w", err)
	}
	logger.Info(ctx, "Markdown exported", "path", mdPath, "bytes", len(doc))

	pdfBytes, err := markdownToPDF(doc)
	if err != nil {
		return mdPath, "", err
	}

	pdfPath = filepath.Join(e.dir, e.pdfFile)
	if err := os.WriteFile(pdfPath, pdfBytes, 0o644); err != nil {
		return mdPath, "", fmt.Errorf("write pdf: %w", err)
	}
	logger.Info(ctx, "PDF exported", "path", pdfPath, "bytes", len(pdfBytes))

	return mdPath, pdfPath, nil
}
