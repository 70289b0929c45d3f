package output

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/Rocker-Mitchell/aoc-2025/pkg/constants"
	customErr "github.com/Rocker-Mitchell/aoc-2025/pkg/errors"
	"github.com/Rocker-Mitchell/aoc-2025/pkg/solution"
	"gopkg.in/yaml.v3"
)

// Report is the document written for --format yaml or json.
type Report struct {
	RunID    string       `json:"run_id" yaml:"run_id"`
	Solution string       `json:"solution" yaml:"solution"`
	Parse    *ParseReport `json:"parse,omitempty" yaml:"parse,omitempty"`
	Parts    []PartReport `json:"parts" yaml:"parts"`
	Error    string       `json:"error,omitempty" yaml:"error,omitempty"`
}

// ParseReport records the parse step. Durations are set on timed runs only.
type ParseReport struct {
	Duration   string `json:"duration,omitempty" yaml:"duration,omitempty"`
	DurationNs int64  `json:"duration_ns,omitempty" yaml:"duration_ns,omitempty"`
}

// PartReport records one part, in the order the parts ran.
type PartReport struct {
	Part           solution.Part `json:"part" yaml:"part"`
	Output         string        `json:"output,omitempty" yaml:"output,omitempty"`
	Duration       string        `json:"duration,omitempty" yaml:"duration,omitempty"`
	DurationNs     int64         `json:"duration_ns,omitempty" yaml:"duration_ns,omitempty"`
	NotImplemented bool          `json:"not_implemented,omitempty" yaml:"not_implemented,omitempty"`
}

// ReportHandler records a run so it can be written out as a document.
type ReportHandler struct {
	report Report
}

// NewReportHandler returns an empty report for the run runID.
func NewReportHandler(runID string) *ReportHandler {
	return &ReportHandler{report: Report{RunID: runID, Parts: []PartReport{}}}
}

// Report returns the events recorded so far.
func (r *ReportHandler) Report() Report {
	return r.report
}

// Fail records the error that ended the run.
func (r *ReportHandler) Fail(err error) {
	if err != nil {
		r.report.Error = err.Error()
	}
}

func (r *ReportHandler) SolutionName(name string) {
	r.report.Solution = name
}

func (r *ReportHandler) ParseStart() {
	r.report.Parse = &ParseReport{}
}

func (r *ReportHandler) ParseEnd() {}

func (r *ReportHandler) ParseEndTimed(d time.Duration) {
	if r.report.Parse == nil {
		r.report.Parse = &ParseReport{}
	}
	r.report.Parse.Duration = FormatDuration(d)
	r.report.Parse.DurationNs = d.Nanoseconds()
}

func (r *ReportHandler) PartStart(part solution.Part) {
	r.report.Parts = append(r.report.Parts, PartReport{Part: part})
}

func (r *ReportHandler) PartOutput(part solution.Part, output any) {
	p := r.current(part)
	p.Output = fmt.Sprint(output)
}

func (r *ReportHandler) PartOutputTimed(part solution.Part, output any, d time.Duration) {
	p := r.current(part)
	p.Output = fmt.Sprint(output)
	p.Duration = FormatDuration(d)
	p.DurationNs = d.Nanoseconds()
}

func (r *ReportHandler) PartNotImplemented(part solution.Part) {
	r.current(part).NotImplemented = true
}

// current returns the entry opened by the last PartStart for part, opening
// one if the event arrived without it.
func (r *ReportHandler) current(part solution.Part) *PartReport {
	if n := len(r.report.Parts); n > 0 && r.report.Parts[n-1].Part == part {
		return &r.report.Parts[n-1]
	}
	r.report.Parts = append(r.report.Parts, PartReport{Part: part})
	return &r.report.Parts[len(r.report.Parts)-1]
}

// Encode writes report to w in the given format.
func Encode(w io.Writer, report Report, format constants.OutputFormat) error {
	switch format {
	case constants.OutputFormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to encode yaml report: %w", err)
		}
		return enc.Close()
	case constants.OutputFormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to encode json report: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %s cannot encode a report", customErr.ErrInvalidOutputFormat, format)
	}
}
