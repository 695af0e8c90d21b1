// Package export snapshots the rendered roadmap visualization into a
// document on disk.
package export

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/abhisek/sankalan/internal/navigator"
	"github.com/abhisek/sankalan/internal/store"
)

// DefaultPrefix starts every exported file name.
const DefaultPrefix = "Sankalan"

// Format is an output document format.
type Format string

const (
	FormatPDF Format = "pdf"
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// Formats lists the supported formats, default first.
var Formats = []Format{FormatPDF, FormatPNG, FormatSVG}

// ParseFormat accepts a format name with or without a leading dot.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimPrefix(s, ".")))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported export format %q (want pdf, png or svg)", s)
}

// FileName returns "<prefix>_<roadmapID>.<format>".
func FileName(prefix, roadmapID string, f Format) string {
	return prefix + "_" + roadmapID + "." + string(f)
}

// checkFileName rejects names that would resolve outside the export
// directory.
func checkFileName(name string) error {
	if name != filepath.Base(name) || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("export file name %q is not a plain file name", name)
	}
	return nil
}

// ViewSource exposes the current navigation state.
type ViewSource interface {
	View() navigator.View
}

// Exporter writes the visualization region of the open roadmap to a file.
// It only reads navigation state.
type Exporter struct {
	src      ViewSource
	renderer Renderer
	dir      string
	prefix   string
	repo     store.ExportRepo
	logger   *slog.Logger
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithRenderer sets the document renderer. The default is PDFRenderer.
func WithRenderer(r Renderer) Option {
	return func(e *Exporter) {
		e.renderer = r
	}
}

// WithDir sets the output directory. The default is the working directory.
func WithDir(dir string) Option {
	return func(e *Exporter) {
		if dir != "" {
			e.dir = dir
		}
	}
}

// WithPrefix overrides DefaultPrefix. An empty prefix is ignored.
func WithPrefix(p string) Option {
	return func(e *Exporter) {
		if p != "" {
			e.prefix = p
		}
	}
}

// WithRepo records each completed export in repo.
func WithRepo(repo store.ExportRepo) Option {
	return func(e *Exporter) {
		e.repo = repo
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Exporter) {
		e.logger = l
	}
}

// New creates an Exporter reading navigation state from src.
func New(src ViewSource, opts ...Option) *Exporter {
	e := &Exporter{
		src:      src,
		renderer: PDFRenderer{},
		dir:      ".",
		prefix:   DefaultPrefix,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Format returns the format the exporter produces.
func (e *Exporter) Format() Format {
	return e.renderer.Format()
}

// ExportCurrentView renders region into the destination file for the open
// roadmap and returns its path. Concurrent calls are allowed; each writes
// a private temporary file that is renamed into place when complete.
func (e *Exporter) ExportCurrentView(ctx context.Context, region *Region) (string, error) {
	v := e.src.View()
	if v.Mode != navigator.ModeVisualization {
		return "", &ExportUnavailableError{Reason: "no roadmap is open (mode " + v.Mode.String() + ")"}
	}
	if region == nil {
		return "", &ExportUnavailableError{Reason: "visualization region is not rendered"}
	}
	if region.RoadmapID != v.Roadmap.ID || region.CategoryID != v.Roadmap.CategoryID {
		return "", &ExportUnavailableError{Reason: fmt.Sprintf(
			"rendered roadmap %q is no longer open (now %q)", region.RoadmapID, v.Roadmap.ID)}
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := FileName(e.prefix, v.Roadmap.ID, e.renderer.Format())
	if err := checkFileName(name); err != nil {
		return "", err
	}
	path := filepath.Join(e.dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	if err := e.write(path, region); err != nil {
		return "", err
	}

	format := e.renderer.Format()
	e.logger.Info("exported view", "roadmap", v.Roadmap.ID, "format", format, "path", path)

	if e.repo != nil {
		_, err := e.repo.Append(ctx, store.ExportEventData{
			CategoryID: v.Category.ID,
			RoadmapID:  v.Roadmap.ID,
			Format:     string(format),
			Path:       path,
		})
		if err != nil {
			e.logger.Warn("record export", "path", path, "error", err)
		}
	}
	return path, nil
}

func (e *Exporter) write(path string, region *Region) error {
	tmp := path + "." + uuid.NewString() + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}

	if err := e.renderer.Render(f, region); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("render %s: %w", e.renderer.Format(), err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close export file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("move export into place: %w", err)
	}
	return nil
}
