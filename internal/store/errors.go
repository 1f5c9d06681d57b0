package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when a user with the same login
	// already exists.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when no user matches the login.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrEntryNotFound is returned when no entry with the id exists for the
	// owner. Entries of other owners are reported the same way.
	ErrEntryNotFound = errors.New("entry was not found")

	// ErrEntryAlreadyExists is returned when an entry id is reused.
	ErrEntryAlreadyExists = errors.New("entry already exists")

	// ErrKeyringNotFound is returned when the local vault has not been
	// initialized yet.
	ErrKeyringNotFound = errors.New("keyring was not found")

	// ErrKeyringAlreadyExists is returned when the local vault is initialized
	// twice.
	ErrKeyringAlreadyExists = errors.New("keyring already exists")

	// ErrUnsupportedStorageMode is returned for a storage mode that has no
	// local implementation.
	ErrUnsupportedStorageMode = errors.New("unsupported storage mode")
)

// Low-level operation errors. These are returned (or wrapped) by repository
// methods when a storage operation fails before any domain logic applies.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot build a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a result set fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingRecord is returned when a bolt record cannot be encoded.
	ErrEncodingRecord = errors.New("failed to encode record")

	// ErrDecodingRecord is returned when a bolt record cannot be decoded.
	ErrDecodingRecord = errors.New("failed to decode record")
)
