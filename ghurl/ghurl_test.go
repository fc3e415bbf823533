package ghurl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darkit/uniqueid/ghurl"
)

func TestParse(t *testing.T) {
	want := ghurl.Repo{Owner: "darkit", Name: "uniqueid"}

	accepted := []string{
		"darkit/uniqueid",
		"github.com/darkit/uniqueid",
		"www.github.com/darkit/uniqueid",
		"http://github.com/darkit/uniqueid",
		"https://github.com/darkit/uniqueid",
		"https://github.com/darkit/uniqueid.git",
		"https://github.com/darkit/uniqueid/",
		"https://www.github.com/darkit/uniqueid",
		"git@github.com:darkit/uniqueid",
		"git@github.com:darkit/uniqueid.git",
		"ssh://git@github.com/darkit/uniqueid.git",
		"git://github.com/darkit/uniqueid.git",
		"  https://github.com/darkit/uniqueid  ",
	}

	for _, raw := range accepted {
		repo, err := ghurl.Parse(raw)
		require.NoError(t, err, "Parse(%q)", raw)
		assert.Equal(t, want, repo, "Parse(%q)", raw)
	}
}

func TestParsePreservesCase(t *testing.T) {
	repo, err := ghurl.Parse("https://github.com/DarkIT/UniqueID.git")
	require.NoError(t, err)
	assert.Equal(t, ghurl.Repo{Owner: "DarkIT", Name: "UniqueID"}, repo)
}

func TestParseRejections(t *testing.T) {
	tests := []struct {
		raw     string
		wantErr error
	}{
		{"https://gitlab.com/darkit/uniqueid", ghurl.ErrNotGitHub},
		{"git@bitbucket.org:darkit/uniqueid.git", ghurl.ErrNotGitHub},
		{"ssh://git@codeberg.org/darkit/uniqueid", ghurl.ErrNotGitHub},
		{"", ghurl.ErrInvalidRepo},
		{"darkit", ghurl.ErrInvalidRepo},
		{"darkit/uniqueid/extra", ghurl.ErrInvalidRepo},
		{"https://github.com/darkit", ghurl.ErrInvalidRepo},
		{"-darkit/uniqueid", ghurl.ErrInvalidRepo},
		{"darkit/unique id", ghurl.ErrInvalidRepo},
	}

	for _, tt := range tests {
		_, err := ghurl.Parse(tt.raw)
		assert.ErrorIs(t, err, tt.wantErr, "Parse(%q)", tt.raw)
	}
}

func TestNormalize(t *testing.T) {
	got, err := ghurl.Normalize("git@github.com:darkit/uniqueid.git")
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/darkit/uniqueid", got)

	_, err = ghurl.Normalize("https://example.com/x/y")
	assert.ErrorIs(t, err, ghurl.ErrNotGitHub)
}

func TestRepoURLs(t *testing.T) {
	repo := ghurl.Repo{Owner: "darkit", Name: "uniqueid"}

	assert.Equal(t, "darkit/uniqueid", repo.String())
	assert.Equal(t, "https://github.com/darkit/uniqueid", repo.HTTPSURL())
	assert.Equal(t, "git@github.com:darkit/uniqueid.git", repo.SSHURL())
	assert.Equal(t, "git://github.com/darkit/uniqueid.git", repo.GitURL())
}
