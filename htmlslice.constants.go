package htmlslice

// Buffer and pool tuning constants
const (
	// DefaultBufferCapacity is the initial capacity of a pooled byte buffer.
	DefaultBufferCapacity = 1024
	// MaxPooledBufferCapacity is the largest byte buffer returned to the
	// pool; bigger buffers are discarded to bound retained memory.
	MaxPooledBufferCapacity = 64 * 1024
	// StringBuilderInitialCapacity is the initial capacity of a pooled
	// string builder used for capture buffers and RenderString.
	StringBuilderInitialCapacity = 256
	// MaxPooledStringBuilderCapacity is the largest string builder returned
	// to the pool.
	MaxPooledStringBuilderCapacity = 4096
)

// Error message constants - ALL error messages must be constants (NO MAGIC STRINGS)
const (
	// Caller contract violations
	ErrMsgNilRenderer = "renderer must not be nil"
	ErrMsgNilBuffer   = "render buffer must not be nil"
	ErrMsgNilWriter   = "render writer must not be nil"
	ErrMsgNilResolver = "layout requires dependency injection but no service resolver was provided"

	// Template-authoring errors
	ErrMsgDuplicateSection = "section already defined for this render pass"
	ErrMsgSectionNotFound  = "required section was not defined"
	ErrMsgLayoutNotFound   = "layout slice is not registered"
	ErrMsgLayoutUnset      = "layout identifier is empty"

	// Registry errors
	ErrMsgDuplicateDefinition = "slice definition already registered"
	ErrMsgEmptyIdentifier     = "slice identifier cannot be empty"
	ErrMsgNilFactory          = "slice definition has no usable factory"

	// Internal invariant violations
	ErrMsgRuneEncoding = "rune encoding byte count mismatch"

	// Environment errors
	ErrMsgSinkWrite   = "sink write failed"
	ErrMsgConfigParse = "config parsing failed"
	ErrMsgSanitize    = "sanitizing write failed"
	ErrMsgFormatWrite = "formatted write failed"

	// Config errors
	ErrMsgUnknownSanitizerProfile = "unknown sanitizer profile"
)

// Error code constants for categorization
const (
	ErrCodeArgument = "HTMLSLICE_ARG"
	ErrCodeState    = "HTMLSLICE_STATE"
	ErrCodeRegistry = "HTMLSLICE_REGISTRY"
	ErrCodeInternal = "HTMLSLICE_INTERNAL"
	ErrCodeSink     = "HTMLSLICE_SINK"
	ErrCodeConfig   = "HTMLSLICE_CONFIG"
)

// Metadata key constants for error context
const (
	MetaKeySection    = "section"
	MetaKeyLayout     = "layout"
	MetaKeyIdentifier = "identifier"
	MetaKeyArgument   = "argument"
	MetaKeyExpected   = "expected_bytes"
	MetaKeyActual     = "actual_bytes"
)

// Log message constants
const (
	LogMsgRenderStart     = "render start"
	LogMsgRenderEnd       = "render complete"
	LogMsgLayoutCapture   = "capturing body for layout composition"
	LogMsgLayoutResolved  = "layout resolved"
	LogMsgSectionDefined  = "section defined"
	LogMsgSectionRendered = "section rendered"
	LogMsgFlushInvoked    = "flush invoked"
	LogMsgSliceRegistered = "slice definition registered"
)

// Log field name constants
const (
	LogFieldLayout     = "layout"
	LogFieldSection    = "section"
	LogFieldSink       = "sink"
	LogFieldIdentifier = "identifier"
	LogFieldRequired   = "required"
	LogFieldInjected   = "requires_injection"
)

// Sanitizer profile names accepted by Config.
const (
	SanitizerProfileUGC    = "ugc"
	SanitizerProfileStrict = "strict"
)
