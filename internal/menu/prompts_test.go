package menu

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPromptMenu(input string) (*Menu, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return New(nil, strings.NewReader(input), out), out
}

func TestReadLineTrimsInput(t *testing.T) {
	m, out := newPromptMenu("  2024001  \n")

	line, err := m.readLine("Code: ")
	require.NoError(t, err)

	assert.Equal(t, "2024001", line)
	assert.Equal(t, "Code: ", out.String())
}

func TestReadLineLastLineWithoutNewline(t *testing.T) {
	m, _ := newPromptMenu("2024001")

	line, err := m.readLine("Code: ")
	require.NoError(t, err)
	assert.Equal(t, "2024001", line)
}

func TestReadLineEOF(t *testing.T) {
	m, _ := newPromptMenu("")

	_, err := m.readLine("Code: ")
	assert.Equal(t, io.EOF, err)
}

func TestReadFloat(t *testing.T) {
	m, _ := newPromptMenu("8.5\n")

	value, err := m.readFloat("Score: ")
	require.NoError(t, err)
	assert.Equal(t, 8.5, value)
}

func TestReadFloatInvalid(t *testing.T) {
	m, _ := newPromptMenu("eight\n")

	_, err := m.readFloat("Score: ")
	assert.EqualError(t, err, `invalid number "eight"`)
}

func TestReadInt(t *testing.T) {
	m, _ := newPromptMenu("4\n")

	value, err := m.readInt("Credit hours: ")
	require.NoError(t, err)
	assert.Equal(t, 4, value)
}

func TestReadIntInvalid(t *testing.T) {
	m, _ := newPromptMenu("4.5\n")

	_, err := m.readInt("Credit hours: ")
	assert.EqualError(t, err, `invalid number "4.5"`)
}
