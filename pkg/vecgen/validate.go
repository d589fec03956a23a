package vecgen

import (
	"fmt"
	"strings"

	"github.com/Stillalive222/parallel-alu-flag-crc32-hamming/pkg/errors"
	"github.com/Stillalive222/parallel-alu-flag-crc32-hamming/pkg/options"
)

func validateOptions(o *options.Options) error {
	if len(o.Inputs) == 0 {
		return errors.NewRequiredFieldError("inputs").WithExpected(">= 1 input word").WithProvided(0)
	}

	if len(o.Inputs) > options.MaxInputs {
		return errors.NewValidationError(
			nil, errors.ErrValidationInvalidData,
			fmt.Sprintf("input count %d exceeds maximum of %d", len(o.Inputs), options.MaxInputs),
		).
			WithField("inputs").
			WithProvided(len(o.Inputs)).
			WithExpected(options.MaxInputs)
	}

	if o.Polynomial == 0 {
		return errors.NewValidationError(
			nil, errors.ErrValidationInvalidData, "polynomial must be nonzero",
		).
			WithField("polynomial").
			WithProvided(o.Polynomial)
	}

	if strings.TrimSpace(o.OutputPath) == "" {
		return errors.NewRequiredFieldError("output path")
	}

	return nil
}
