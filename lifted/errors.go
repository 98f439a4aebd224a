package lifted

import "errors"

// ErrDeadlineExceeded names a k-clique search that aborted before exhausting
// the candidate space. This package's own functions report that case through
// their ok result rather than returning this error; callers must discard
// partial results when it happens.
var ErrDeadlineExceeded = errors.New("lifted: deadline exceeded")
