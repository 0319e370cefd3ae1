package contact

import (
	"errors"
)

var (
	ErrNoIdentity = errors.New("caller identity is missing")
)
