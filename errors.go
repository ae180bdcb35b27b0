package schnorr

import (
	"errors"

	"github.com/athanorlabs/go-schnorr/types"
)

var (
	ErrRandomnessExhausted = types.ErrRandomnessExhausted
	ErrInvalidInputLength  = types.ErrInvalidInputLength
	ErrScalarOutOfRange    = types.ErrScalarOutOfRange
	ErrInvalidPoint        = types.ErrInvalidPoint

	errNilPrivateKey = errors.New("private key is nil")
)
