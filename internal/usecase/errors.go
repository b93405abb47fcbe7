package usecase

import "errors"

// ErrNotFound covers both genuinely missing rows and rows owned by someone
// else: the caller must not be able to tell the two apart.
var ErrNotFound = errors.New("not found")
