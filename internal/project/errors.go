package project

import "errors"

// Codec failure modes. Fatal conditions wrap these sentinels with the
// offending screen or file name via fmt.Errorf so callers can match with
// errors.Is while still seeing what broke.
var (
	// ErrInvalidScreenName is returned by Split when a screen name contains
	// characters other than letters, digits, underscore, hyphen, or space.
	ErrInvalidScreenName = errors.New("invalid screen name")

	// ErrDuplicateScreen is returned by Split when two screens resolve to the
	// same file name, which would silently overwrite one of them on disk.
	ErrDuplicateScreen = errors.New("duplicate screen")

	// ErrMetaMissing is returned by Merge when the file set has no meta.json
	// to reconstruct into.
	ErrMetaMissing = errors.New("modular project has no meta.json")

	// ErrUnknownScreen is returned by Merge when a file cannot be matched to
	// any screen stub or blockly entry in the meta document.
	ErrUnknownScreen = errors.New("unexpected file in modular project")

	// ErrInvalidFileType is returned when a file name carries an extension
	// other than .json or .xml.
	ErrInvalidFileType = errors.New("invalid file type in modular project")

	// ErrMalformedDocument is returned when the data.project spine is missing
	// or a file's content has the wrong shape for its extension.
	ErrMalformedDocument = errors.New("malformed project document")
)
