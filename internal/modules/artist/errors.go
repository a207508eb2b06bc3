package artist

import "errors"

var ErrEmailAlreadyApplied = errors.New("email already applied")
