package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrFetchFailed indicates the catalog endpoint answered with a
	// non-OK status. The text is shown to the user verbatim.
	ErrFetchFailed = errors.New("Failed to fetch movies")

	// ErrCatalogUnreachable indicates the catalog endpoint could not be
	// reached at all.
	ErrCatalogUnreachable = errors.New("catalog is unreachable")
)

// ErrorMessage returns a human-readable message for a terminal fetch
// failure, falling back to a generic message when the error carries no
// text of its own.
func ErrorMessage(err error) string {
	if err == nil || err.Error() == "" {
		return "An error occurred"
	}
	return err.Error()
}
