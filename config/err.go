package config

import (
	"errors"

	"github.com/amartos/BFG/translate"
)

var f = translate.From

var (
	ErrConfigRead  = errors.New(f("cannot read configuration"))
	ErrConfigParse = errors.New(f("cannot parse configuration"))
)
