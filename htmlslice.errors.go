package htmlslice

import (
	"strconv"

	"github.com/itsatony/go-cuserr"
)

// NewNilRendererError reports a nil renderer passed to a render entry point.
func NewNilRendererError() error {
	return cuserr.NewValidationError(ErrCodeArgument, ErrMsgNilRenderer).
		WithMetadata(MetaKeyArgument, "renderer")
}

// NewNilBufferError reports a nil buffer sink passed to Render.
func NewNilBufferError() error {
	return cuserr.NewValidationError(ErrCodeArgument, ErrMsgNilBuffer).
		WithMetadata(MetaKeyArgument, "buffer")
}

// NewNilWriterError reports a nil writer sink passed to RenderWriter.
func NewNilWriterError() error {
	return cuserr.NewValidationError(ErrCodeArgument, ErrMsgNilWriter).
		WithMetadata(MetaKeyArgument, "writer")
}

// NewNilResolverError reports a layout that needs dependency injection being
// instantiated without a service resolver.
func NewNilResolverError(layout string) error {
	return cuserr.NewValidationError(ErrCodeArgument, ErrMsgNilResolver).
		WithMetadata(MetaKeyArgument, "resolver").
		WithMetadata(MetaKeyLayout, layout)
}

// NewDuplicateSectionError reports a section name registered twice in one
// render pass.
func NewDuplicateSectionError(name string) error {
	return cuserr.NewValidationError(ErrCodeState, ErrMsgDuplicateSection).
		WithMetadata(MetaKeySection, name)
}

// NewSectionNotFoundError reports a required section that no content slice
// defined.
func NewSectionNotFoundError(name string) error {
	return cuserr.NewValidationError(ErrCodeArgument, ErrMsgSectionNotFound).
		WithMetadata(MetaKeySection, name)
}

// NewLayoutNotFoundError reports a layout identifier with no registered
// definition. This indicates a broken build, not bad input.
func NewLayoutNotFoundError(identifier string) error {
	return cuserr.NewNotFoundError(MetaKeyLayout, ErrMsgLayoutNotFound).
		WithMetadata(MetaKeyLayout, identifier)
}

// NewLayoutUnsetError reports the layout-composition path being entered with
// an empty layout identifier.
func NewLayoutUnsetError() error {
	return cuserr.NewValidationError(ErrCodeState, ErrMsgLayoutUnset)
}

// NewDuplicateDefinitionError reports a slice identifier registered twice.
func NewDuplicateDefinitionError(identifier string) error {
	return cuserr.NewValidationError(ErrCodeRegistry, ErrMsgDuplicateDefinition).
		WithMetadata(MetaKeyIdentifier, identifier)
}

// NewEmptyIdentifierError reports a definition with an empty identifier.
func NewEmptyIdentifierError() error {
	return cuserr.NewValidationError(ErrCodeRegistry, ErrMsgEmptyIdentifier)
}

// NewNilFactoryError reports a definition whose declared factory is nil.
func NewNilFactoryError(identifier string) error {
	return cuserr.NewValidationError(ErrCodeRegistry, ErrMsgNilFactory).
		WithMetadata(MetaKeyIdentifier, identifier)
}

// NewRuneEncodingError reports a byte count mismatch while encoding a rune.
// This is an internal invariant violation and should never occur in correct
// operation.
func NewRuneEncodingError(expected, actual int) error {
	return cuserr.NewInternalError(ErrCodeInternal, nil).
		WithMetadata(MetaKeyArgument, ErrMsgRuneEncoding).
		WithMetadata(MetaKeyExpected, strconv.Itoa(expected)).
		WithMetadata(MetaKeyActual, strconv.Itoa(actual))
}

// NewSinkWriteError wraps a write failure from a streaming sink.
func NewSinkWriteError(cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeSink, ErrMsgSinkWrite)
}

// NewSanitizeError wraps a failure from the sanitizing write path.
func NewSanitizeError(cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeSink, ErrMsgSanitize)
}

// NewFormatWriteError wraps a failure from the locale-formatted write path.
func NewFormatWriteError(cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeSink, ErrMsgFormatWrite)
}

// NewConfigError wraps a configuration parsing failure.
func NewConfigError(cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeConfig, ErrMsgConfigParse)
}

// NewUnknownSanitizerProfileError reports a sanitizer profile name that
// Config does not recognize.
func NewUnknownSanitizerProfileError(profile string) error {
	return cuserr.NewValidationError(ErrCodeConfig, ErrMsgUnknownSanitizerProfile).
		WithMetadata(MetaKeyArgument, profile)
}
