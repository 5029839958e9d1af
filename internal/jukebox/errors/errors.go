package errors

import (
	"fmt"
)

var (
	ErrNotFound     = fmt.Errorf("not found")
	ErrConflict     = fmt.Errorf("conflict")
	ErrInvalidInput = fmt.Errorf("invalid input")
)
