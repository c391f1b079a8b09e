package main

const (
	exitCodeSuccess = 0
	exitCodeFailure = 1
)

// exitCode collapses every non-zero status, including kong's usage errors, into a plain failure.
func exitCode(code int) int {
	if code != exitCodeSuccess {
		return exitCodeFailure
	}

	return exitCodeSuccess
}
