// SPDX-License-Identifier: MPL-2.0

package answers

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	// ErrUnknownSPDXID is returned when an identifier is not in the SPDX set.
	ErrUnknownSPDXID = errors.New("not a known SPDX license identifier")
	// ErrEmpty is returned when a required answer is empty.
	ErrEmpty = errors.New("value must not be empty")
	// ErrContainsWhitespace is returned when an answer that becomes part of the
	// package name contains whitespace.
	ErrContainsWhitespace = errors.New("value must not contain whitespace")
	// ErrWaiverNotAccepted is returned when the operator declined the waiver.
	ErrWaiverNotAccepted = errors.New("the CC0 waiver must be accepted to continue")
)

type (
	// Record is the result of the interview.
	//
	// When IsSPDX is true SPDXID is set and is a member of the SPDX set.
	// Otherwise ShortName and Version are set and contain no whitespace
	// (Version may be empty). LongName is never empty.
	Record struct {
		IsSPDX          bool   `toml:"spdx" yaml:"spdx"`
		SPDXID          string `toml:"spdx_id,omitempty" yaml:"spdx_id,omitempty"`
		ShortName       string `toml:"short_name,omitempty" yaml:"short_name,omitempty"`
		LongName        string `toml:"long_name" yaml:"long_name"`
		Version         string `toml:"version,omitempty" yaml:"version,omitempty"`
		AuthorName      string `toml:"author_name" yaml:"author_name"`
		AuthorEmail     string `toml:"author_email" yaml:"author_email"`
		LicenseAccepted bool   `toml:"accept_waiver" yaml:"accept_waiver"`
	}

	// Membership reports whether an identifier is a known SPDX license id.
	// *spdx.Set satisfies it.
	Membership interface {
		Contains(id string) bool
	}

	// FieldError names the answer that failed validation.
	FieldError struct {
		Field string
		Value string
		Err   error
	}
)

// Error implements the error interface.
func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Field, e.Value, e.Err)
}

// Unwrap returns the underlying validation error.
func (e *FieldError) Unwrap() error { return e.Err }

// Validate checks every invariant of the record and returns all violations joined.
func (r Record) Validate(ids Membership) error {
	var errs []error
	check := func(field, value string, err error) {
		if err != nil {
			errs = append(errs, &FieldError{Field: field, Value: value, Err: err})
		}
	}

	if r.IsSPDX {
		check("spdx_id", r.SPDXID, ValidateSPDXID(ids)(r.SPDXID))
	} else {
		check("short_name", r.ShortName, ValidateShortName(r.ShortName))
		check("version", r.Version, ValidateVersion(r.Version))
	}
	check("long_name", r.LongName, ValidateLongName(r.LongName))
	check("author_name", r.AuthorName, ValidateAuthorName(r.AuthorName))
	check("author_email", r.AuthorEmail, ValidateAuthorEmail(r.AuthorEmail))
	if err := ValidateAcceptance(r.LicenseAccepted); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// ValidateSPDXID returns a validator that accepts only members of ids.
func ValidateSPDXID(ids Membership) func(string) error {
	return func(id string) error {
		if id == "" {
			return ErrEmpty
		}
		if ids == nil || !ids.Contains(id) {
			return ErrUnknownSPDXID
		}
		return nil
	}
}

// ValidateShortName requires a non-empty name without whitespace.
func ValidateShortName(s string) error {
	if s == "" {
		return ErrEmpty
	}
	return noWhitespace(s)
}

// ValidateVersion allows the empty string but rejects whitespace.
func ValidateVersion(s string) error {
	return noWhitespace(s)
}

// ValidateLongName requires a non-blank description.
func ValidateLongName(s string) error {
	if strings.TrimSpace(s) == "" {
		return ErrEmpty
	}
	return nil
}

// ValidateAuthorName requires a non-blank name.
func ValidateAuthorName(s string) error {
	if strings.TrimSpace(s) == "" {
		return ErrEmpty
	}
	return nil
}

// ValidateAuthorEmail requires a non-blank email. Its form is not checked;
// the value is used as-is in the manifest and the commit signature.
func ValidateAuthorEmail(s string) error {
	if strings.TrimSpace(s) == "" {
		return ErrEmpty
	}
	return nil
}

// ValidateAcceptance requires the waiver to be accepted.
func ValidateAcceptance(accepted bool) error {
	if !accepted {
		return ErrWaiverNotAccepted
	}
	return nil
}

func noWhitespace(s string) error {
	if strings.IndexFunc(s, unicode.IsSpace) >= 0 {
		return ErrContainsWhitespace
	}
	return nil
}
