package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	for _, tc := range []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{in: "advisor", want: RoleAdvisor},
		{in: "student", want: RoleStudent},
		{in: " Advisor ", want: RoleAdvisor},
		{in: "STUDENT", want: RoleStudent},
		{in: "", wantErr: true},
		{in: "professor", wantErr: true},
	} {
		got, err := ParseRole(tc.in)
		if tc.wantErr {
			assert.Error(t, err, "input %q", tc.in)
			continue
		}
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got)
	}
}

func TestNewBranch(t *testing.T) {
	b, err := NewBranch("alice")
	require.NoError(t, err)
	assert.Equal(t, Branch("alice"), b)

	_, err = NewBranch("")
	assert.Error(t, err)
	_, err = NewBranch("* alice")
	assert.Error(t, err)
	_, err = NewBranch("with space")
	assert.Error(t, err)
}

func TestParseRemotePath(t *testing.T) {
	p, err := ParseRemotePath("/srv/theses/alice.git")
	require.NoError(t, err)
	assert.Equal(t, "alice.git", p.Leaf())
	assert.False(t, p.IsFigures())

	fig, err := ParseRemotePath("/srv/theses/figures/")
	require.NoError(t, err)
	assert.Equal(t, "figures", fig.Leaf())
	assert.True(t, fig.IsFigures())
	assert.Equal(t, "/srv/theses/figures", fig.String())

	_, err = ParseRemotePath("relative/path")
	assert.Error(t, err)
	_, err = ParseRemotePath("")
	assert.Error(t, err)
}

func TestRemotePathJoinDir(t *testing.T) {
	base, err := ParseRemotePath("/srv/theses")
	require.NoError(t, err)

	fig, err := base.Join("figures")
	require.NoError(t, err)
	assert.True(t, fig.IsFigures())

	parent, err := fig.Dir()
	require.NoError(t, err)
	assert.Equal(t, "/srv/theses", parent.String())
}
