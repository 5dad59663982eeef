package payroll

import (
	"fmt"
	"strings"
	"time"
)

// Salary months are stored as free-text labels such as "January 2025".
// ParseSalaryMonth turns a label into a "2006-01" bucket key so list
// filtering can compare against a requested YYYY-MM value. The second
// return reports whether the label parsed; callers fall back to
// substring matching when it did not.
func ParseSalaryMonth(label string) (string, bool) {
	label = strings.TrimSpace(label)
	if label == "" {
		return "", false
	}

	for _, layout := range []string{"January 2006", "Jan 2006", "2006-01", "01/2006"} {
		if t, err := time.Parse(layout, label); err == nil {
			return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month())), true
		}
	}

	return "", false
}
