package availability

import "errors"

// ErrDateRequired is returned when Compute is called without a date. The
// caller must pass the date explicitly; there is no fallback.
var ErrDateRequired = errors.New("date is required")
