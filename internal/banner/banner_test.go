package banner

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NielsdaWheelz/cmdkit/internal/buildinfo"
	"github.com/NielsdaWheelz/cmdkit/internal/errors"
)

type failingWriter struct{ err error }

// stamp sets the build-time banner values and clears CMDKIT_* overrides for one test.
func stamp(t *testing.T, title, version, copyright string) {
	t.Helper()
	oldTitle, oldVersion, oldCopyright := buildinfo.Title, buildinfo.Version, buildinfo.Copyright
	t.Cleanup(func() {
		buildinfo.Title, buildinfo.Version, buildinfo.Copyright = oldTitle, oldVersion, oldCopyright
	})
	buildinfo.Title, buildinfo.Version, buildinfo.Copyright = title, version, copyright

	// empty overrides are ignored by buildinfo.FromEnv
	t.Setenv("CMDKIT_TITLE", "")
	t.Setenv("CMDKIT_VERSION", "")
	t.Setenv("CMDKIT_COPYRIGHT", "")
}

func (f failingWriter) Write([]byte) (int, error) { return 0, f.err }

func TestRender(t *testing.T) {
	identity := buildinfo.Identity{Name: "github.com/acme/tool", Version: "v0.9.1"}

	tests := []struct {
		name string
		d    buildinfo.Descriptor
		want string
	}{
		{
			name: "all declared",
			d: buildinfo.Descriptor{
				Title:     "Tool",
				Version:   "1.2.3",
				Copyright: "© 2024 Example",
				Identity:  identity,
			},
			want: "Tool [Version 1.2.3]\n(c) 2024 Example\n\n",
		},
		{
			name: "no title no copyright",
			d:    buildinfo.Descriptor{Version: "1.2.3", Identity: identity},
			want: "github.com/acme/tool [Version 1.2.3]\n\n",
		},
		{
			name: "no version",
			d:    buildinfo.Descriptor{Title: "Tool", Identity: identity},
			want: "Tool [Version v0.9.1]\n\n",
		},
		{
			name: "nothing declared",
			d:    buildinfo.Descriptor{Identity: identity},
			want: "github.com/acme/tool [Version v0.9.1]\n\n",
		},
		{
			name: "every glyph replaced",
			d:    buildinfo.Descriptor{Title: "T", Version: "1", Copyright: "©2020 A ©2024 B"},
			want: "T [Version 1]\n(c)2020 A (c)2024 B\n\n",
		},
		{
			name: "version used verbatim",
			d:    buildinfo.Descriptor{Title: "T", Version: " 2.0 beta "},
			want: "T [Version  2.0 beta ]\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(tt.d))
		})
	}
}

func TestWrite_LineCount(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, buildinfo.Descriptor{Title: "T", Version: "1"}))
	assert.Equal(t, 2, strings.Count(buf.String(), "\n"))

	buf.Reset()
	require.NoError(t, Write(&buf, buildinfo.Descriptor{Title: "T", Version: "1", Copyright: "c"}))
	assert.Equal(t, 3, strings.Count(buf.String(), "\n"))
}

func TestWrite_Idempotent(t *testing.T) {
	d := buildinfo.Descriptor{Title: "Tool", Version: "1.2.3", Copyright: "© 2024 Example"}

	var first, second bytes.Buffer
	require.NoError(t, Write(&first, d))
	require.NoError(t, Write(&second, d))

	assert.Equal(t, first.Bytes(), second.Bytes())
}

func TestWrite_AppendsToSink(t *testing.T) {
	buf := bytes.NewBufferString("before\n")
	require.NoError(t, Write(buf, buildinfo.Descriptor{Title: "T", Version: "1"}))
	assert.Equal(t, "before\nT [Version 1]\n\n", buf.String())
}

func TestWrite_NilOutput(t *testing.T) {
	err := Write(nil, buildinfo.Descriptor{})
	require.Error(t, err)
	assert.Equal(t, errors.ENullArgument, errors.GetCode(err))

	var typedNil *bytes.Buffer
	err = Write(typedNil, buildinfo.Descriptor{})
	assert.Equal(t, errors.ENullArgument, errors.GetCode(err))
}

func TestWrite_SinkFailure(t *testing.T) {
	cause := stderrors.New("disk full")

	err := Write(failingWriter{err: cause}, buildinfo.Descriptor{Title: "T", Version: "1"})

	require.Error(t, err)
	assert.Equal(t, errors.EInternal, errors.GetCode(err))
	assert.ErrorIs(t, err, cause)
}

func TestWriteLogo_NilOutput(t *testing.T) {
	err := WriteLogo(nil)
	assert.Equal(t, errors.ENullArgument, errors.GetCode(err))
}

func TestWriteLogo_UsesCurrentDescriptor(t *testing.T) {
	stamp(t, "Tool", "1.2.3", "© 2024 Example")

	var buf bytes.Buffer
	require.NoError(t, WriteLogo(&buf))

	assert.Equal(t, "Tool [Version 1.2.3]\n(c) 2024 Example\n\n", buf.String())
	assert.Equal(t, Render(buildinfo.Current()), buf.String())
}

func TestWriteLogo_IgnoresEmptyEnvOverrides(t *testing.T) {
	stamp(t, "Tool", "1.2.3", "")

	var buf bytes.Buffer
	require.NoError(t, WriteLogo(&buf))

	assert.Equal(t, "Tool [Version 1.2.3]\n\n", buf.String())
}

func TestWriteLogo_FallsBackToIdentity(t *testing.T) {
	stamp(t, "", "dev", "")

	var buf bytes.Buffer
	require.NoError(t, WriteLogo(&buf))

	id := buildinfo.ReadIdentity()
	assert.Equal(t, id.Name+" [Version "+id.Version+"]\n\n", buf.String())
}
