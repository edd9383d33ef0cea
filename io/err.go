package io

import (
	"errors"

	"github.com/amartos/BFG/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrChannelReadOnly = errors.New(f("channel read only"))
)
