package skiplist

import "errors"

// Internal retry-protocol codes. List.EraseNode returns errBusy,
// errAlreadyRemoved and errAlreadyUnlinked directly to its caller; above it
// they do not surface: errBusy is retried transparently by EraseByKey and by
// the containers' EraseValue/EraseKey, errAlreadyRemoved and
// errAlreadyUnlinked are folded into benign success, and errNotFound
// surfaces to callers as a nil node or an end iterator rather than as an
// error value, except where EraseByKey reports it directly as ErrNotFound.
var (
	errAlreadyRemoved  = errors.New("skiplist: already removed")
	errBusy            = errors.New("skiplist: node busy")
	errAlreadyUnlinked = errors.New("skiplist: already unlinked")
	errNotFound        = errors.New("skiplist: not found")
)

// ErrNotFound is returned by EraseByKey when no node compares equal to the
// query key.
var ErrNotFound = errNotFound
