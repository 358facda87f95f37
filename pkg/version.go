package gnfish

var (
	// Version of gnfish.
	Version = "v0.1.0"

	// Build timestamp, set by the linker.
	Build = "n/a"
)
