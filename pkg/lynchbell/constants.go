package lynchbell

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess      = 0  // Scan or check completed successfully
	ExitGeneralError = 1  // Unknown or unclassified error
	ExitUsageError   = 2  // CLI usage error (bad args, invalid flags)
	ExitPanic        = 3  // Internal panic (unexpected crash)
	ExitConfigError  = 10 // Invalid configuration, range or format
)

const (
	// FirstCandidate is the first Lynch-Bell number and the default start of a scan.
	FirstCandidate = 1

	// LastCandidate is the default inclusive end of a scan.
	// No Lynch-Bell number lies above 9867312.
	LastCandidate = 98764321

	// MaxDistinctDigits is the largest integer whose decimal digits are
	// distinct and nonzero. Scans may not extend past it.
	MaxDistinctDigits = 987654321

	// DecimalRadix is the base the digit predicates decompose values in.
	DecimalRadix = 10

	// ConfigFileName is the conventional name of the YAML configuration file.
	ConfigFileName = "lynchbell.yaml"

	// EnvPrefix prefixes every key read from --env-file layers.
	EnvPrefix = "LYNCHBELL_"
)
