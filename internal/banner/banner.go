// Package banner renders the startup banner: title and version, an optional
// copyright line, and a trailing blank line.
package banner

import (
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/NielsdaWheelz/cmdkit/internal/buildinfo"
	"github.com/NielsdaWheelz/cmdkit/internal/errors"
)

// copyrightReplacer writes the © glyph as (c).
var copyrightReplacer = strings.NewReplacer("©", "(c)")

// WriteLogoDefault writes the banner for the running program to stdout.
func WriteLogoDefault() error {
	return WriteLogo(os.Stdout)
}

// WriteLogo writes the banner for the running program to w.
// Program metadata is re-read on every call.
func WriteLogo(w io.Writer) error {
	if isNil(w) {
		return nullOutput()
	}
	return Write(w, buildinfo.Current())
}

// Write writes the banner for d to w. w is neither flushed nor closed.
func Write(w io.Writer, d buildinfo.Descriptor) error {
	if isNil(w) {
		return nullOutput()
	}
	if _, err := io.WriteString(w, Render(d)); err != nil {
		return errors.Wrap(errors.EInternal, "failed to write banner", err)
	}
	return nil
}

// Render returns the banner text for d:
//
//	<title> [Version <version>]
//	<copyright>          (omitted when d.Copyright is empty)
//	<blank line>
func Render(d buildinfo.Descriptor) string {
	var sb strings.Builder
	sb.WriteString(ResolveTitle(d))
	sb.WriteString(" [Version ")
	sb.WriteString(ResolveVersion(d))
	sb.WriteString("]\n")

	if d.Copyright != "" {
		sb.WriteString(copyrightReplacer.Replace(d.Copyright))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	return sb.String()
}

// ResolveTitle returns the declared title, or the program identity when none is declared.
func ResolveTitle(d buildinfo.Descriptor) string {
	if d.Title != "" {
		return d.Title
	}
	return d.Identity.Name
}

// ResolveVersion returns the declared version verbatim, or the identity
// version when none is declared.
func ResolveVersion(d buildinfo.Descriptor) string {
	if d.Version != "" {
		return d.Version
	}
	return d.Identity.Version
}

func nullOutput() error {
	return errors.NewWithDetails(
		errors.ENullArgument,
		"output is required",
		map[string]string{"argument": "output", "reason": "null"},
	)
}

// isNil also catches typed nils such as (*bytes.Buffer)(nil).
func isNil(w io.Writer) bool {
	if w == nil {
		return true
	}
	v := reflect.ValueOf(w)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
