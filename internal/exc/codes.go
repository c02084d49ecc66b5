package exc

const (
	CodeUnknownFatal                   = "D0000"
	CodeFileNotFound                   = "D0001"
	CodeUnsupportedFileSystemOperation = "D0002"
	CodePermissionDenied               = "D0003"
	CodeUnsupportedFileFormat          = "D0004"
	CodeUnexpectedToken                = "D0100"
	CodeUnsupportedConstruct           = "D0101"
)

var (
	// Syntax diagnostics never stop a compile. The parser recovers and the
	// full set is shown to the user at the end.
	defaultNonFatal = map[string]bool{
		CodeUnexpectedToken:      true,
		CodeUnsupportedConstruct: true,
	}
)
