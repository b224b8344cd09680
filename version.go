package pure

// Set at build time with -ldflags "-X github.com/tmazeika/pure.Version=...".
var (
	Version   = "0.1.0-dev"
	BuildDate = "unknown"
)
