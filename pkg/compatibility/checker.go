package compatibility

import (
	"github.com/Aquilabot/KreaPC-Market/internal/models"
)

// Parts is the selection under evaluation. Nil entries are unselected.
type Parts struct {
	CPU         *models.Hardware
	GPU         *models.Hardware
	Motherboard *models.Hardware
	RAM         *models.Hardware
	Storage     []models.Hardware
	PSU         *models.Hardware
	Case        *models.Hardware
	Cooler      *models.Hardware
}

// PartsOf extracts the selection held by a build.
func PartsOf(b models.BuildConfig) Parts {
	return Parts{
		CPU:         b.CPU,
		GPU:         b.GPU,
		Motherboard: b.Motherboard,
		RAM:         b.RAM,
		Storage:     b.Storage,
		PSU:         b.PSU,
		Case:        b.Case,
		Cooler:      b.Cooler,
	}
}

// Rule inspects a selection and reports every violation it finds. Rules
// skip silently when a part they need is not selected.
type Rule interface {
	Check(p Parts) []models.CompatibilityIssue
}

type RuleFunc func(p Parts) []models.CompatibilityIssue

func (f RuleFunc) Check(p Parts) []models.CompatibilityIssue {
	return f(p)
}

type Checker struct {
	rules []Rule
}

// NewChecker returns a Checker running rules in order. Without rules it
// uses DefaultRules.
func NewChecker(rules ...Rule) *Checker {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Checker{rules: rules}
}

// Evaluate runs every rule and files each diagnostic by severity. Errors
// make the selection incompatible, warnings never do.
func (c *Checker) Evaluate(p Parts) models.CompatibilityResult {
	var issues, warnings []models.CompatibilityIssue
	for _, rule := range c.rules {
		for _, d := range rule.Check(p) {
			if d.Severity == models.SeverityWarning {
				warnings = append(warnings, d)
			} else {
				d.Severity = models.SeverityError
				issues = append(issues, d)
			}
		}
	}
	return models.NewCompatibilityResult(issues, warnings)
}
