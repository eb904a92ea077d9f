package cli

// Error codes reported in CLIError.Code and in text-mode error lines.
const (
	ErrCodeGeneric     = "E001" // Generic/unknown error
	ErrCodeScanError   = "E002" // Directory scan error
	ErrCodeNoFiles     = "E003" // No scenario files found
	ErrCodeNotFound    = "E005" // Path not found or not a regular file
	ErrCodeWriteFailed = "E007" // File write error
	ErrCodeUsage       = "E008" // Wrong number of arguments
	ErrCodeReadFailed  = "E009" // Input unreadable or not UTF-8
	ErrCodeStore       = "E010" // Conversion history error
)

// usageLine is printed when the converter is invoked without exactly one path.
const usageLine = "usage: bbcode2md <path_to_bbcode_file>"
