package baker

import (
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name)
	}
	return out
}

func TestListSkipsHidden(t *testing.T) {
	h, fs := newTestHandler(t)
	for _, name := range []string{"deploy", "backup", ".DS_Store", ".hidden"} {
		require.NoError(t, afero.WriteFile(fs, h.Path(name), []byte("x"), 0755))
	}

	entries, err := h.List("")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"deploy", "backup"}, names(entries))

	for _, e := range entries {
		assert.Equal(t, h.Path(e.Name), e.Path)
		assert.False(t, e.ModTime.IsZero())
	}
}

func TestListFilter(t *testing.T) {
	h, fs := newTestHandler(t)
	for _, name := range []string{"deploy", "deploy-staging", "backup", "db-dump"} {
		require.NoError(t, afero.WriteFile(fs, h.Path(name), []byte("x"), 0755))
	}

	entries, err := h.List("deploy*")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"deploy", "deploy-staging"}, names(entries))

	entries, err = h.List("{backup,db-*}")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"backup", "db-dump"}, names(entries))

	_, err = h.List("[unclosed")
	require.Error(t, err)
}

func TestListMissingDirectory(t *testing.T) {
	h := New(afero.NewMemMapFs(), "/nowhere")

	_, err := h.List("")
	require.Error(t, err)
	assert.True(t, IsIOFailure(err))
}

func TestDuplicates(t *testing.T) {
	h, _ := newTestHandler(t)
	same := Bake("/a.py", "#!/bin/zsh", "python3")
	require.NoError(t, h.Create("one", same, ""))
	require.NoError(t, h.Create("two", same+"\n", ""))
	require.NoError(t, h.Create("three", Bake("/b.py", "#!/bin/zsh", "python3"), ""))
	require.NoError(t, h.Create("broken", "garbage", ""))
	require.NoError(t, h.Create("broken2", "#!/bin/sh\n", ""))

	dups, err := h.Duplicates()
	assert.Equal(t, [][]string{{"one", "two"}}, dups)

	require.Error(t, err)
	merr, ok := err.(*multierror.Error)
	require.True(t, ok)
	assert.Len(t, merr.Errors, 2)
	for _, e := range merr.Errors {
		assert.ErrorIs(t, e, ErrMalformedContent)
	}
}

func TestDuplicatesNone(t *testing.T) {
	h, _ := newTestHandler(t)
	require.NoError(t, h.Create("one", Bake("/a.py", "#!/bin/zsh", "python3"), ""))

	dups, err := h.Duplicates()
	require.NoError(t, err)
	assert.Empty(t, dups)
}

func TestSuggest(t *testing.T) {
	h, fs := newTestHandler(t)
	for _, name := range []string{"deploy", "backup", "serve"} {
		require.NoError(t, afero.WriteFile(fs, h.Path(name), []byte("x"), 0755))
	}

	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"deplyo", "deploy", true},
		{"backp", "backup", true},
		{"serv", "serve", true},
		{"completely-different", "", false},
		{"deploy", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := h.Suggest(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
