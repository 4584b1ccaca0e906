package gradle

// BraceDelta exports braceDelta for testing.
var BraceDelta = braceDelta //nolint:gochecknoglobals // test export

// IsKnownSourceSetName exports isKnownSourceSetName for testing.
var IsKnownSourceSetName = isKnownSourceSetName //nolint:gochecknoglobals // test export
