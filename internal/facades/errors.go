package facades

import "errors"

// ErrSourceFailure means the upstream source answered but reported a failure.
// Callers may retry later.
var ErrSourceFailure = errors.New("rate source failure")
