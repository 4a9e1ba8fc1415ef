package setup

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPrompter(input string) (*Prompter, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	errw := &bytes.Buffer{}
	return NewPrompter(strings.NewReader(input), out, errw), out, errw
}

func TestRequiredRetriesUntilNonEmpty(t *testing.T) {
	p, _, errw := testPrompter("\n   \nmatrix.example.com\n")
	v, err := p.Required("server domain", "Domain:")
	require.NoError(t, err)
	assert.Equal(t, "matrix.example.com", v)
	assert.Contains(t, errw.String(), "must not be empty")
}

func TestRequiredErrorsOnExhaustedInput(t *testing.T) {
	p, _, _ := testPrompter("")
	_, err := p.Required("server domain", "Domain:")
	require.Error(t, err)
	assert.ErrorIs(t, err, io.EOF)
}

func TestOptionalEmptyReturnsDefault(t *testing.T) {
	p, _, _ := testPrompter("\n")
	v, err := p.Optional("Cache size", "256")
	require.NoError(t, err)
	assert.Equal(t, "256", v)
}

func TestOptionalKeepsInputVerbatim(t *testing.T) {
	p, _, _ := testPrompter("  512 \n")
	v, err := p.Optional("Cache size", "256")
	require.NoError(t, err)
	assert.Equal(t, "  512 ", v)
}

func TestYesNoClassification(t *testing.T) {
	cases := []struct {
		input string
		def   string
		want  bool
	}{
		{"", "n", false},
		{"", "y", true},
		{"Y", "n", true},
		{"y", "n", true},
		{"yes", "n", true},
		{"no", "y", false},
		{"x", "y", false},
		{"maybe", "y", false},
	}
	for _, tc := range cases {
		p, _, _ := testPrompter(tc.input + "\n")
		got, err := p.YesNo("Allow federation?", tc.def)
		require.NoError(t, err)
		assert.Equalf(t, tc.want, got, "input %q default %q", tc.input, tc.def)
	}
}

func TestBackendChoice(t *testing.T) {
	p, _, _ := testPrompter("2\n")
	b, err := p.BackendChoice()
	require.NoError(t, err)
	assert.Equal(t, BackendSynapse, b)

	p, _, _ = testPrompter("\n")
	b, err = p.BackendChoice()
	require.NoError(t, err)
	assert.Equal(t, BackendConduit, b)
}

func TestBackendChoiceRepromptsOnInvalid(t *testing.T) {
	p, _, errw := testPrompter("7\nx\n2\n")
	b, err := p.BackendChoice()
	require.NoError(t, err)
	assert.Equal(t, BackendSynapse, b)
	assert.Contains(t, errw.String(), "enter 1 or 2")
}

func TestPromptTextGoesToErrStream(t *testing.T) {
	p, out, errw := testPrompter("value\n")
	_, err := p.Required("field", "Enter a value:")
	require.NoError(t, err)
	assert.Contains(t, errw.String(), "Enter a value:")
	assert.Empty(t, out.String())
}
