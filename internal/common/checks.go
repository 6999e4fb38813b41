package common

import (
	"strings"

	"github.com/go-errors/errors"
)

// Checks collects the failed sub-checks of a validation. Every check is
// evaluated, so a caller learns all reasons a value was rejected.
type Checks struct {
	failed []string
}

// Require records description as failed when ok is false, and returns ok.
func (c *Checks) Require(ok bool, description string) bool {
	if !ok {
		c.failed = append(c.failed, description)
	}
	return ok
}

// Merge records a nested validation error under the given prefix.
func (c *Checks) Merge(prefix string, err error) bool {
	if err == nil {
		return true
	}
	c.failed = append(c.failed, prefix+": "+err.Error())
	return false
}

func (c *Checks) Failed() []string {
	return c.failed
}

// Err returns nil if all checks passed, or an error listing the failures.
func (c *Checks) Err(subject string) error {
	if len(c.failed) == 0 {
		return nil
	}
	return errors.Errorf("%s: %s", subject, strings.Join(c.failed, "; "))
}
