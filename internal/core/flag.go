package core

import (
	"strconv"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/NielsdaWheelz/cmdkit/internal/errors"
)

// ReasonNotUppercaseLetter is reported when a flag name is not an uppercase letter.
const ReasonNotUppercaseLetter = "not_uppercase_letter"

const hintFlagName = "lowercase shorthands are reserved for the framework"

// IsValidFlagName reports whether r may be used as a short flag name.
// Only uppercase letters qualify; lowercase letters and everything else are
// left to the framework (help, version, long-name matching).
func IsValidFlagName(r rune) bool {
	return unicode.IsLetter(r) && unicode.IsUpper(r)
}

// ValidateFlagName returns E_INVALID_ARGUMENT unless r is an uppercase letter.
func ValidateFlagName(label string, r rune) error {
	if IsValidFlagName(r) {
		return nil
	}
	return errors.NewWithDetails(
		errors.EInvalidArgument,
		label+" must be an uppercase letter",
		map[string]string{
			"argument": label,
			"value":    strconv.QuoteRune(r),
			"reason":   ReasonNotUppercaseLetter,
			"hint":     hintFlagName,
		},
	)
}

// IsValidFlagShorthand reports whether s, as stored by pflag, is a single
// uppercase letter. s is NFC-composed first so a letter followed by a
// combining mark counts as one character.
func IsValidFlagShorthand(s string) bool {
	r, ok := shorthandRune(s)
	return ok && IsValidFlagName(r)
}

// ValidateFlagShorthand is the error-returning form of IsValidFlagShorthand.
func ValidateFlagShorthand(label, s string) error {
	r, ok := shorthandRune(s)
	if ok && IsValidFlagName(r) {
		return nil
	}
	return errors.NewWithDetails(
		errors.EInvalidArgument,
		label+" must be a single uppercase letter",
		map[string]string{
			"argument": label,
			"value":    strconv.Quote(s),
			"reason":   ReasonNotUppercaseLetter,
			"hint":     hintFlagName,
		},
	)
}

func shorthandRune(s string) (rune, bool) {
	s = norm.NFC.String(s)
	if utf8.RuneCountInString(s) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, r != utf8.RuneError
}
