package config

// Version system:
// vMAJOR.MINOR.PATCH

// Centralized version control
const (
	// Executible
	Main_version = "v1.0.0"

	// Components reported by --version
	Sequence_Reader = "v1.0.0"
	Digest_Writer   = "v1.0.0"
	Digest_Report   = "v0.2.0"
	Benchmark       = "v1.0.0"
)
