package report

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/zalepa/ourvoice/i18n"
	"github.com/zalepa/ourvoice/metrics"
)

// Properties are the document properties stamped into a report.
func Properties(s metrics.Snapshot, lang i18n.Language) map[string]string {
	return map[string]string{
		"District":    s.Name,
		"DistrictID":  s.ID,
		"State":       s.State,
		"LastUpdated": s.LastUpdated,
		"Language":    string(lang),
	}
}

// WriteFile renders the report for s, stamps its document properties and
// writes it to path. The written file is read back and must have PageCount
// pages.
func WriteFile(path string, s metrics.Snapshot, lang i18n.Language) error {
	var raw bytes.Buffer
	if err := Render(&raw, s, lang); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	conf := model.NewDefaultConfiguration()
	if err := api.AddProperties(bytes.NewReader(raw.Bytes()), f, Properties(s, lang), conf); err != nil {
		f.Close()
		return fmt.Errorf("stamp properties: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	n, err := CountPages(path)
	if err != nil {
		return err
	}
	if n != PageCount {
		return fmt.Errorf("%s: wrote %d pages, want %d", path, n, PageCount)
	}
	return nil
}

// CountPages opens a PDF file and returns its page count.
func CountPages(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	ctx, err := pdfcpu.Read(f, model.NewDefaultConfiguration())
	if err != nil {
		return 0, fmt.Errorf("read pdf: %w", err)
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return 0, fmt.Errorf("page count: %w", err)
	}
	return ctx.PageCount, nil
}

// ReadProperties returns the document properties stored in a PDF file.
func ReadProperties(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	props, err := api.Properties(f, model.NewDefaultConfiguration())
	if err != nil {
		return nil, fmt.Errorf("read properties: %w", err)
	}
	return props, nil
}
