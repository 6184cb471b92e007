package registry

import (
	"fmt"

	"github.com/weftlabs/weft/internal/core/label"
)

// LabelNotFoundError reports a run by label or callback that matched no
// registered system. Registration has to happen before a label can be run.
type LabelNotFoundError struct {
	Label label.Label
}

func (e *LabelNotFoundError) Error() string {
	return fmt.Sprintf("registry: no system registered under label %q", e.Label)
}

// DuplicateRegistrationError reports a repeated automatic registration under
// the error policy.
type DuplicateRegistrationError struct {
	System string
	Label  label.Label
}

func (e *DuplicateRegistrationError) Error() string {
	return fmt.Sprintf("registry: system %s already registered under label %q", e.System, e.Label)
}
