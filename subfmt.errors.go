package subfmt

import (
	"strconv"

	"github.com/itsatony/go-cuserr"
)

// Error message constants - ALL error messages must be constants (NO MAGIC STRINGS)
const (
	// Compile errors
	ErrMsgNoValidCommand    = "no valid command found at position"
	ErrMsgLengthNotInteger  = "length must be a non-negative integer"
	ErrMsgUnknownCommand    = "unrecognized command"
	ErrMsgUnsupportedKind   = "unsupported value kind in structured template"
	ErrMsgNilDocument       = "structured template document cannot be nil"
	ErrMsgDocumentInvalid   = "structured template document is not valid YAML"
	ErrMsgDocumentEmpty     = "structured template document is empty"

	// Registry errors
	ErrMsgNilResolver       = "resolver cannot be nil"
	ErrMsgNilFactory        = "resolver factory cannot be nil"
	ErrMsgEmptyFactory      = "resolver factory name cannot be empty"
	ErrMsgFactoryExists     = "resolver factory already registered"
	ErrMsgFactoryUnknown    = "no resolver factory registered for name"
	ErrMsgFactoryFailed     = "resolver factory failed"
	ErrMsgFactoryNoResolver = "resolver factory produced no resolver"

	// Generic resolver errors
	ErrMsgEmptyFieldName = "field name cannot be empty"
	ErrMsgNilExtractor   = "field extractor cannot be nil"
	ErrMsgFieldExists    = "field already registered"
)

// Error code constants for categorization
const (
	ErrCodeParse    = "SUBFMT_PARSE"
	ErrCodeResolve  = "SUBFMT_RESOLVE"
	ErrCodeDocument = "SUBFMT_DOCUMENT"
	ErrCodeConfig   = "SUBFMT_CONFIG"
	ErrCodeRegistry = "SUBFMT_REGISTRY"
)

// NewTokenError reports a '%' that does not start a valid command token.
// The offending format and byte offset are attached as metadata.
func NewTokenError(format string, offset int) error {
	return cuserr.NewValidationError(ErrCodeParse, ErrMsgNoValidCommand).
		WithMetadata(MetaKeyFormat, format).
		WithMetadata(MetaKeyOffset, strconv.Itoa(offset))
}

// NewLengthError reports a length clause that does not parse as a
// non-negative integer.
func NewLengthError(length string, cause error) error {
	var err *cuserr.CustomError
	if cause != nil {
		err = cuserr.WrapStdError(cause, ErrCodeParse, ErrMsgLengthNotInteger)
	} else {
		err = cuserr.NewValidationError(ErrCodeParse, ErrMsgLengthNotInteger)
	}
	return err.WithMetadata(MetaKeyLength, length)
}

// NewUnknownCommandError reports a command no resolver claimed and no
// fallback accepted.
func NewUnknownCommandError(command string) error {
	return cuserr.NewNotFoundError(MetaKeyCommand, ErrMsgUnknownCommand).
		WithMetadata(MetaKeyCommand, command)
}

// NewDocumentKindError reports an unsupported leaf kind in a structured
// template document.
func NewDocumentKindError(kind string) error {
	return cuserr.NewValidationError(ErrCodeDocument, ErrMsgUnsupportedKind).
		WithMetadata(MetaKeyKind, kind)
}

// NewNilDocumentError reports a nil structured template document.
func NewNilDocumentError() error {
	return cuserr.NewValidationError(ErrCodeDocument, ErrMsgNilDocument)
}

// NewDocumentParseError reports a structured template document that could
// not be decoded.
func NewDocumentParseError(cause error) error {
	if cause != nil {
		return cuserr.WrapStdError(cause, ErrCodeDocument, ErrMsgDocumentInvalid)
	}
	return cuserr.NewValidationError(ErrCodeDocument, ErrMsgDocumentInvalid)
}

// NewFactoryError reports a resolver factory configuration failure. A
// factory that signals "no resolver" for its own configuration is a
// configuration error, not a runtime condition.
func NewFactoryError(msg string, factory string, cause error) error {
	var err *cuserr.CustomError
	if cause != nil {
		err = cuserr.WrapStdError(cause, ErrCodeConfig, msg)
	} else {
		err = cuserr.NewValidationError(ErrCodeConfig, msg)
	}
	return err.WithMetadata(MetaKeyFactory, factory)
}

// NewRegistryError reports a registration failure.
func NewRegistryError(msg string) error {
	return cuserr.NewValidationError(ErrCodeRegistry, msg)
}

// NewFieldError reports a generic-resolver field registration failure.
func NewFieldError(msg string, field string) error {
	return cuserr.NewValidationError(ErrCodeRegistry, msg).
		WithMetadata(MetaKeyFieldName, field)
}
