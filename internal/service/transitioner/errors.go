package transitioner

import "errors"

var ErrInternal = errors.New("transitioner: internal error")
