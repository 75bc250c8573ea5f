// Package cmd provides command implementations for the stanpkg CLI.
package cmd

// Exit codes.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates an invalid name or failed validation.
	ExitValidationError = 2

	// ExitNotFound indicates a model file or skeleton was not found.
	ExitNotFound = 5

	// ExitAlreadyExists indicates the target already exists.
	ExitAlreadyExists = 6

	// ExitWriteFailure indicates an I/O failure while writing.
	ExitWriteFailure = 7
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitNotFound:
		return "Not Found"
	case ExitAlreadyExists:
		return "Already Exists"
	case ExitWriteFailure:
		return "Write Failure"
	default:
		return "Unknown"
	}
}
