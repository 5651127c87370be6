package reporter

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"serprank/internal/comparer"
	"serprank/internal/config"
	"serprank/internal/errorwrapper"
)

// ReportManager coordinates CSV and text report generation and writes
// both files to the configured output directory
type ReportManager struct {
	config  config.ReporterConfig
	csvGen  *CSVReportGenerator
	textGen *TextReportGenerator
	logger  zerolog.Logger
}

// NewReportManager creates a report manager with both generators
func NewReportManager(cfg config.ReporterConfig, logger zerolog.Logger) *ReportManager {
	return &ReportManager{
		config:  cfg,
		csvGen:  NewCSVReportGenerator(logger),
		textGen: NewTextReportGenerator(logger),
		logger:  logger.With().Str("component", "ReportManager").Logger(),
	}
}

// GenerateReports writes the CSV and text reports for the given results.
// Returns the paths of the files written.
func (m *ReportManager) GenerateReports(results []comparer.ComparisonResult, mode comparer.CorrelationMode) (csvPath, textPath string, err error) {
	if err := os.MkdirAll(m.config.OutputDir, 0755); err != nil {
		return "", "", errorwrapper.WrapError(err, "failed to create report output directory")
	}

	csvPath = filepath.Join(m.config.OutputDir, m.config.CSVReportFile)
	if err := m.writeCSV(results, csvPath); err != nil {
		return "", "", err
	}

	textPath = filepath.Join(m.config.OutputDir, m.config.TextReportFile)
	if err := m.writeText(results, mode, textPath); err != nil {
		return "", "", err
	}

	m.logger.Info().
		Str("csv_report", csvPath).
		Str("text_report", textPath).
		Int("queries", len(results)).
		Msg("Reports generated")

	return csvPath, textPath, nil
}

func (m *ReportManager) writeCSV(results []comparer.ComparisonResult, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return errorwrapper.WrapError(err, "failed to create CSV report file")
	}
	defer file.Close()

	return m.csvGen.Generate(results, file)
}

func (m *ReportManager) writeText(results []comparer.ComparisonResult, mode comparer.CorrelationMode, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return errorwrapper.WrapError(err, "failed to create text report file")
	}
	defer file.Close()

	return m.textGen.Generate(results, mode, file)
}
