package scaffold

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	okColor   = color.New(color.FgGreen)
	skipColor = color.New(color.FgYellow)
	warnColor = color.New(color.FgRed, color.Bold)
	missColor = color.New(color.FgYellow, color.Bold)
)

// Reporter writes operator feedback lines to w.
type Reporter struct {
	w io.Writer
}

// NewReporter returns a Reporter writing to w. A nil w discards output.
func NewReporter(w io.Writer) *Reporter {
	if w == nil {
		w = io.Discard
	}
	return &Reporter{w: w}
}

// Info prints an unmarked line.
func (r *Reporter) Info(format string, args ...any) {
	fmt.Fprintf(r.w, format+"\n", args...)
}

// Created reports a newly written path.
func (r *Reporter) Created(path string) {
	fmt.Fprintf(r.w, "  %s Created %s\n", okColor.Sprint("[ OK ]"), path)
}

// Skipped reports a path left untouched.
func (r *Reporter) Skipped(path, reason string) {
	fmt.Fprintf(r.w, "  %s %s %s\n", skipColor.Sprint("[SKIP]"), path, reason)
}

// Warn reports a non-fatal problem.
func (r *Reporter) Warn(format string, args ...any) {
	fmt.Fprintf(r.w, "  %s %s\n", warnColor.Sprint("[WARN]"), fmt.Sprintf(format, args...))
}

// OK reports a passing check.
func (r *Reporter) OK(format string, args ...any) {
	fmt.Fprintf(r.w, "  %s %s\n", okColor.Sprint("[ OK ]"), fmt.Sprintf(format, args...))
}

// Missing reports an expected path that is absent.
func (r *Reporter) Missing(path string) {
	fmt.Fprintf(r.w, "  %s %s does not exist\n", missColor.Sprint("[MISS]"), path)
}

// Fail reports a failed check.
func (r *Reporter) Fail(format string, args ...any) {
	fmt.Fprintf(r.w, "  %s %s\n", warnColor.Sprint("[FAIL]"), fmt.Sprintf(format, args...))
}
