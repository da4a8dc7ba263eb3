package models

import (
	"errors"
	"fmt"
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

type CompatibilityIssue struct {
	Severity      Severity       `json:"type"`
	Code          string         `json:"code"`
	Message       string         `json:"message"`
	AffectedParts []HardwareType `json:"affectedParts"`
	Suggestion    string         `json:"suggestion,omitempty"`
}

// CompatibilityResult is built through NewCompatibilityResult so that
// IsCompatible always reflects whether Issues is empty.
type CompatibilityResult struct {
	IsCompatible bool                 `json:"isCompatible"`
	Issues       []CompatibilityIssue `json:"issues"`
	Warnings     []CompatibilityIssue `json:"warnings"`
}

var ErrInconsistentResult = errors.New("inconsistent compatibility result")

func NewCompatibilityResult(issues, warnings []CompatibilityIssue) CompatibilityResult {
	if issues == nil {
		issues = []CompatibilityIssue{}
	}
	if warnings == nil {
		warnings = []CompatibilityIssue{}
	}
	return CompatibilityResult{
		IsCompatible: len(issues) == 0,
		Issues:       issues,
		Warnings:     warnings,
	}
}

// Validate reports results whose verdict disagrees with Issues or whose
// diagnostics sit in the wrong bucket.
func (r CompatibilityResult) Validate() error {
	if r.IsCompatible != (len(r.Issues) == 0) {
		return fmt.Errorf("%w: isCompatible=%t with %d issues", ErrInconsistentResult, r.IsCompatible, len(r.Issues))
	}
	for _, issue := range r.Issues {
		if issue.Severity != SeverityError {
			return fmt.Errorf("%w: issue %s has severity %q", ErrInconsistentResult, issue.Code, issue.Severity)
		}
	}
	for _, warning := range r.Warnings {
		if warning.Severity != SeverityWarning {
			return fmt.Errorf("%w: warning %s has severity %q", ErrInconsistentResult, warning.Code, warning.Severity)
		}
	}
	return nil
}

// BuildConfig is an assembled selection of parts with its evaluation.
type BuildConfig struct {
	ID                 string              `json:"id"`
	Name               string              `json:"name"`
	CPU                *Hardware           `json:"cpu,omitempty"`
	GPU                *Hardware           `json:"gpu,omitempty"`
	Motherboard        *Hardware           `json:"motherboard,omitempty"`
	RAM                *Hardware           `json:"ram,omitempty"`
	Storage            []Hardware          `json:"storage,omitempty"`
	PSU                *Hardware           `json:"psu,omitempty"`
	Case               *Hardware           `json:"case,omitempty"`
	Cooler             *Hardware           `json:"cooler,omitempty"`
	TotalPrice         int64               `json:"totalPrice"`
	EstimatedBenchmark int                 `json:"estimatedBenchmark"`
	Compatibility      CompatibilityResult `json:"compatibility"`
}

// Parts returns every selected part, single-slot categories first in
// catalog order, then storage.
func (b BuildConfig) Parts() []Hardware {
	var parts []Hardware
	for _, p := range []*Hardware{b.CPU, b.GPU, b.Motherboard, b.RAM, b.PSU, b.Case, b.Cooler} {
		if p != nil {
			parts = append(parts, *p)
		}
	}
	return append(parts, b.Storage...)
}
