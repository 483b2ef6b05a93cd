package merge

import "errors"

// ErrMaxMergeSizeTooSmall indicates a Config was built with a MaxMergeSize
// below 2. This is a configuration error: it is raised at Config
// construction time, never from inside the enumerator or trainer loop.
var ErrMaxMergeSizeTooSmall = errors.New("merge: MaxMergeSize must be >= 2")
