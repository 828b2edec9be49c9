package valueobjects

import "fmt"

type Severity string

const (
	SeverityMinor   Severity = "MINOR"
	SeverityMajor   Severity = "MAJOR"
	SeverityBlocker Severity = "BLOCKER"
)

var validSeverities = map[Severity]bool{
	SeverityMinor:   true,
	SeverityMajor:   true,
	SeverityBlocker: true,
}

func (s Severity) String() string {
	return string(s)
}

func (s Severity) IsValid() bool {
	return validSeverities[s]
}

func NewSeverity(s string) (Severity, error) {
	sv := Severity(s)
	if !sv.IsValid() {
		return "", fmt.Errorf("invalid severity: %s", s)
	}
	return sv, nil
}
