// Package yamlutil decodes the YAML config files this tool reads. It is the
// single import point for the YAML library and enforces the two rules every
// config read shares: a size cap and strict field checking, so a typo in a
// config key surfaces as an error instead of a silently ignored setting.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxConfigSize caps config input at 1MB. Real config files are a few
// hundred bytes; anything near the cap is a mistake.
const MaxConfigSize = 1 << 20

var (
	ErrEmptyInput  = errors.New("yaml: empty input")
	ErrNilTarget   = errors.New("yaml: nil decode target")
	ErrInputTooBig = errors.New("yaml: input exceeds size cap")
)

// UnmarshalStrict decodes data into target, rejecting fields target does not
// declare.
func UnmarshalStrict(data []byte, target any) error {
	if len(data) == 0 {
		return ErrEmptyInput
	}
	if len(data) > MaxConfigSize {
		return fmt.Errorf("%w: %d bytes (cap %d)", ErrInputTooBig, len(data), MaxConfigSize)
	}
	if target == nil {
		return ErrNilTarget
	}

	if err := yaml.UnmarshalWithOptions(data, target, yaml.Strict()); err != nil {
		return fmt.Errorf("yaml: %w", err)
	}
	return nil
}
