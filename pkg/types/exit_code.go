// SPDX-License-Identifier: MPL-2.0

package types

import "strconv"

// ExitCode is the process exit status of the generator.
type ExitCode int

const (
	// ExitSuccess is returned when the package was generated and committed.
	ExitSuccess ExitCode = 0
	// ExitFailure is returned for usage errors and for any pipeline failure.
	// Failure kinds are not distinguished by exit code.
	ExitFailure ExitCode = 1
)

// String returns the decimal form of the code.
func (c ExitCode) String() string { return strconv.Itoa(int(c)) }
