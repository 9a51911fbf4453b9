package domain

import "fmt"

// Severity is the closed set of log levels. The zero value is not valid.
type Severity string

const (
	SeverityDebug    Severity = "DEBUG"
	SeverityInfo     Severity = "INFO"
	SeverityWarning  Severity = "WARNING"
	SeverityError    Severity = "ERROR"
	SeverityCritical Severity = "CRITICAL"
)

// severities holds every level in definition order. Display order and chart
// column order both follow this slice.
var severities = []Severity{
	SeverityDebug,
	SeverityInfo,
	SeverityWarning,
	SeverityError,
	SeverityCritical,
}

var severityColors = map[Severity]string{
	SeverityDebug:    "#6b7280",
	SeverityInfo:     "#3b82f6",
	SeverityWarning:  "#f59e0b",
	SeverityError:    "#ef4444",
	SeverityCritical: "#991b1b",
}

func Severities() []Severity {
	out := make([]Severity, len(severities))
	copy(out, severities)
	return out
}

// SeverityLevel describes one level for capability payloads: its name, its
// rank in display order and its chart color.
type SeverityLevel struct {
	Name  Severity `json:"name"`
	Order int      `json:"order"`
	Color string   `json:"color"`
}

func SeverityLevels() []SeverityLevel {
	out := make([]SeverityLevel, len(severities))
	for i, sev := range severities {
		out[i] = SeverityLevel{Name: sev, Order: sev.Order(), Color: sev.Color()}
	}
	return out
}

func ParseSeverity(s string) (Severity, error) {
	sev := Severity(s)
	if !sev.Valid() {
		return "", fmt.Errorf("unknown severity %q", s)
	}
	return sev, nil
}

func (s Severity) Valid() bool {
	for _, known := range severities {
		if s == known {
			return true
		}
	}
	return false
}

// Order returns the position in the definition order, -1 for unknown values.
func (s Severity) Order() int {
	for i, known := range severities {
		if s == known {
			return i
		}
	}
	return -1
}

func (s Severity) Color() string {
	return severityColors[s]
}

func (s Severity) String() string {
	return string(s)
}
