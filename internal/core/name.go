// Package core provides the identifier rules shared by every command tree
// built on cmdkit.
package core

import (
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/NielsdaWheelz/cmdkit/internal/errors"
)

// Rejection reasons reported in the "reason" error detail.
const (
	ReasonNull      = "null"
	ReasonEmpty     = "empty"
	ReasonMalformed = "malformed"
)

const hintEmptyName = "an empty name is only accepted where the caller allows it"

// ValidateName checks that value is an acceptable command or alias name.
// label names the argument being checked and is reported in the error details.
//
// Rules:
//   - Empty is rejected unless allowEmpty is set
//   - Every rune must be a letter, a digit, '-' or '_'
//
// There is no length limit and no leading-character restriction.
func ValidateName(label, value string, allowEmpty bool) error {
	if value == "" {
		if allowEmpty {
			return nil
		}
		return errors.NewWithDetails(
			errors.EInvalidArgument,
			label+" must not be empty",
			map[string]string{"argument": label, "reason": ReasonEmpty, "hint": hintEmptyName},
		)
	}

	if i, r, ok := firstInvalidNameRune(value); ok {
		return errors.NewWithDetails(
			errors.EInvalidArgument,
			label+" must contain only letters, digits, '-' and '_'",
			map[string]string{
				"argument": label,
				"value":    value,
				"reason":   ReasonMalformed,
				"rune":     strconv.QuoteRune(r),
				"offset":   strconv.Itoa(i),
			},
		)
	}
	return nil
}

// ValidateNameRef is ValidateName for callers that distinguish an absent
// name from an empty one. A nil value fails with E_NULL_ARGUMENT unless
// allowEmpty is set.
func ValidateNameRef(label string, value *string, allowEmpty bool) error {
	if value == nil {
		if allowEmpty {
			return nil
		}
		return errors.NewWithDetails(
			errors.ENullArgument,
			label+" is required",
			map[string]string{"argument": label, "reason": ReasonNull},
		)
	}
	return ValidateName(label, *value, allowEmpty)
}

// IsValidName reports whether value is an acceptable name. It returns
// allowEmpty for the empty string and never fails.
func IsValidName(value string, allowEmpty bool) bool {
	if value == "" {
		return allowEmpty
	}
	_, _, bad := firstInvalidNameRune(value)
	return !bad
}

// IsValidNameRune reports whether r may appear in a name.
func IsValidNameRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_'
}

// firstInvalidNameRune returns the byte offset and rune of the first
// character that fails IsValidNameRune. Invalid UTF-8 decodes to
// utf8.RuneError, which is not a letter.
func firstInvalidNameRune(s string) (int, rune, bool) {
	for i, r := range s {
		if r == utf8.RuneError || !IsValidNameRune(r) {
			return i, r, true
		}
	}
	return 0, 0, false
}
