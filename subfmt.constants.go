package subfmt

// Grammar constants
const (
	// CommandDelimiter opens and closes every command token.
	CommandDelimiter = '%'

	// SubcommandOpen and SubcommandClose wrap the optional subcommand.
	SubcommandOpen  = '('
	SubcommandClose = ')'

	// LengthSeparator introduces the optional length cap.
	LengthSeparator = ':'
)

// Output constants
const (
	// DefaultEmptyValue substitutes for providers that yield no value.
	DefaultEmptyValue = "-"

	// RenderErrorMarker is emitted when the structured render surface
	// cannot encode an evaluated value. Visible but non-fatal.
	RenderErrorMarker = "!RENDER_ERROR!"

	// LineTerminator is appended to every rendered structured record.
	LineTerminator = "\n"
)

// Log message constants
const (
	LogMsgPlanCompiled      = "format plan compiled"
	LogMsgDocumentCompiled  = "structured document compiled"
	LogMsgCommandResolved   = "command resolved"
	LogMsgFallbackResolved  = "command resolved by fallback"
	LogMsgBuiltinRegistered = "builtin resolver registered"
	LogMsgFactoryRegistered = "resolver factory registered"
	LogMsgFieldRegistered   = "generic field registered"
	LogMsgRenderDegraded    = "structured render degraded"
)

// Log field constants
const (
	LogFieldFormat    = "format"
	LogFieldCommand   = "command"
	LogFieldProviders = "providers"
	LogFieldFactory   = "factory"
	LogFieldField     = "field"
	LogFieldKind      = "kind"
	LogFieldCount     = "count"
)

// Metadata key constants for error context
const (
	MetaKeyOffset     = "offset"
	MetaKeyFormat     = "format"
	MetaKeyCommand    = "command"
	MetaKeyLength     = "length"
	MetaKeyKind       = "kind"
	MetaKeyFactory    = "factory"
	MetaKeyFieldName  = "field_name"
	MetaKeyConfigKind = "config_kind"
)
