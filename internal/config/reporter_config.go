package config

// Default reporter settings
const (
	DefaultReportOutputDir = "reports"
	DefaultCSVReportFile   = "comparison.csv"
	DefaultTextReportFile  = "comparison.txt"
)

// ReporterConfig holds configuration for report generation
type ReporterConfig struct {
	OutputDir      string `json:"output_dir,omitempty" yaml:"output_dir,omitempty"`
	CSVReportFile  string `json:"csv_report_file,omitempty" yaml:"csv_report_file,omitempty"`
	TextReportFile string `json:"text_report_file,omitempty" yaml:"text_report_file,omitempty"`
}

// NewDefaultReporterConfig creates reporter configuration with defaults
func NewDefaultReporterConfig() ReporterConfig {
	return ReporterConfig{
		OutputDir:      DefaultReportOutputDir,
		CSVReportFile:  DefaultCSVReportFile,
		TextReportFile: DefaultTextReportFile,
	}
}
