package arena

import (
	"errors"

	"github.com/amartos/BFG/translate"
)

var f = translate.From

var (
	// Arena errors
	ErrLimit    = errors.New(f("memory limit exceeded"))
	ErrNegative = errors.New(f("negative cell index"))
)
