package ports

import (
	"io"

	"go.trai.ch/smolbuf/internal/core/domain"
)

// ReportWriter renders classifications and reports.
//
//go:generate mockgen -source=report_writer.go -destination=mocks/mock_report_writer.go -package=mocks
type ReportWriter interface {
	// WriteInspections renders one classification per inspected text.
	WriteInspections(w io.Writer, items []domain.Classification, format domain.Format) error

	// WriteReport renders a corpus report.
	WriteReport(w io.Writer, report *domain.Report, format domain.Format) error
}
