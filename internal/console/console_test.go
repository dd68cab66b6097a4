package console

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintPlain(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf)

	c.Print(Notice, "Baked path: %s", "/home/u/bin")
	c.Print(Error, "100% literal")
	c.Print(Cmd, "deploy")

	assert.Equal(t, "[notice] Baked path: /home/u/bin\n[error] 100% literal\n[cmd] deploy\n", buf.String())
}

func TestTagColored(t *testing.T) {
	c := &Console{out: io.Discard, colored: true}

	tag := c.Tag(Error)
	assert.True(t, strings.HasPrefix(tag, "["))
	assert.True(t, strings.HasSuffix(tag, "]"))
	assert.Contains(t, tag, "\x1b[31m")
	assert.Contains(t, tag, "error")

	assert.Equal(t, "[symbol]", NewPlain(io.Discard).Tag(Symbol))
}

func TestColorEnabled(t *testing.T) {
	assert.False(t, ColorEnabled(&bytes.Buffer{}))

	t.Setenv("NO_COLOR", "1")
	assert.False(t, ColorEnabled(&bytes.Buffer{}))
}

func TestMessageTypeString(t *testing.T) {
	names := map[MessageType]string{
		Error: "error", Notice: "notice", Cmd: "cmd", Warning: "warning", Baked: "baked",
		Shebang: "shebang", Interpreter: "interpreter", Path: "path", Symbol: "symbol",
	}
	for typ, want := range names {
		assert.Equal(t, want, typ.String())
	}
	assert.Equal(t, "MessageType(99)", MessageType(99).String())
}

func TestFieldAlignment(t *testing.T) {
	var buf bytes.Buffer
	c := NewPlain(&buf)

	c.Field(Shebang, "#!/bin/zsh")
	c.Field(Interpreter, "python3")
	c.Field(Path, "/scripts/deploy.py")
	c.Field(Symbol, "$@")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)

	values := []string{"#!/bin/zsh", "python3", "/scripts/deploy.py", "$@"}
	col := strings.Index(lines[0], values[0])
	require.Greater(t, col, len("[shebang]"))
	for i, line := range lines {
		assert.Equal(t, col, strings.Index(line, values[i]), "line %q", line)
		assert.True(t, strings.HasSuffix(line, values[i]))
	}
	assert.True(t, strings.HasPrefix(lines[1], "[interpreter]"))
}

func TestColumns(t *testing.T) {
	var buf bytes.Buffer
	c := NewPlain(&buf)

	c.Columns([][]string{
		{"deploy", "/home/u/bin/deploy", "2024-01-02"},
		{"db", "/home/u/bin/db", "2024-03-04"},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, strings.Index(lines[0], "/home"), strings.Index(lines[1], "/home"))
	assert.Equal(t, strings.Index(lines[0], "2024"), strings.Index(lines[1], "2024"))
	assert.True(t, strings.HasSuffix(lines[1], "2024-03-04"))
}

func TestReaderPrompter(t *testing.T) {
	var out bytes.Buffer
	p := NewReaderPrompter(strings.NewReader("first\r\nsecond\nlast"), &out)

	got, err := p.Prompt("a: ")
	require.NoError(t, err)
	assert.Equal(t, "first", got)

	got, err = p.Prompt("b: ")
	require.NoError(t, err)
	assert.Equal(t, "second", got)

	got, err = p.Prompt("c: ")
	require.NoError(t, err)
	assert.Equal(t, "last", got)

	_, err = p.Prompt("d: ")
	assert.ErrorIs(t, err, io.EOF)

	assert.Equal(t, "a: b: c: d: ", out.String())
	assert.NoError(t, p.Close())
}

func TestNewPrompterNonTerminal(t *testing.T) {
	p := NewPrompter(strings.NewReader(""), io.Discard)
	_, ok := p.(*ReaderPrompter)
	assert.True(t, ok)
}

// scriptedPrompter 按顺序返回预设结果
type scriptedPrompter struct {
	answers []string
	err     error
	prompts []string
}

func (s *scriptedPrompter) Prompt(prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if len(s.answers) == 0 {
		if s.err != nil {
			return "", s.err
		}
		return "", io.EOF
	}
	a := s.answers[0]
	s.answers = s.answers[1:]
	return a, nil
}

func (s *scriptedPrompter) Close() error { return nil }

func TestConfirm(t *testing.T) {
	tests := []struct {
		name    string
		answers []string
		err     error
		def     Default
		want    bool
		prompts int
	}{
		{"yes", []string{"y"}, nil, DefaultNone, true, 1},
		{"YES uppercase", []string{" YES "}, nil, DefaultNo, true, 1},
		{"no", []string{"no"}, nil, DefaultYes, false, 1},
		{"empty takes default yes", []string{""}, nil, DefaultYes, true, 1},
		{"empty takes default no", []string{""}, nil, DefaultNo, false, 1},
		{"empty without default asks again", []string{"", "maybe", "y"}, nil, DefaultNone, true, 3},
		{"eof with default yes", nil, nil, DefaultYes, true, 1},
		{"eof without default", nil, nil, DefaultNone, false, 1},
		{"aborted ignores default", nil, ErrAborted, DefaultYes, false, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &scriptedPrompter{answers: tt.answers, err: tt.err}
			got, err := Confirm(p, "Continue?", tt.def)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Len(t, p.prompts, tt.prompts)
		})
	}
}

func TestConfirmSuffix(t *testing.T) {
	for def, want := range map[Default]string{
		DefaultNone: "Continue? [y/n] ",
		DefaultYes:  "Continue? [Y/n] ",
		DefaultNo:   "Continue? [y/N] ",
	} {
		p := &scriptedPrompter{answers: []string{"y"}}
		_, err := Confirm(p, "Continue?", def)
		require.NoError(t, err)
		assert.Equal(t, []string{want}, p.prompts)
	}
}

func TestConfirmPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	p := &scriptedPrompter{err: boom}

	_, err := Confirm(p, "Continue?", DefaultYes)
	assert.ErrorIs(t, err, boom)
}
