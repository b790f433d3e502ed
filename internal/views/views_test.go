package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for _, valid := range []string{"LANDING", "RESEARCH", "ANALYTICS", "DOCUMENTS", "COMMUNICATION", "MARKET", "ROADMAP"} {
		mode, err := Parse(valid)
		require.NoError(t, err, valid)
		assert.Equal(t, ViewMode(valid), mode)
	}

	for _, invalid := range []string{"", "AUTH", "research", "SETTINGS"} {
		_, err := Parse(invalid)
		assert.Error(t, err, invalid)
	}
}

func TestResolve(t *testing.T) {
	cases := []struct {
		name       string
		hasSession bool
		mode       ViewMode
		want       ViewMode
	}{
		{"гость на лендинге", false, Landing, Landing},
		{"гость просит research", false, Research, Auth},
		{"гость просит market", false, Market, Auth},
		{"сессия research", true, Research, Research},
		{"сессия landing", true, Landing, Landing},
		{"сессия roadmap", true, Roadmap, Roadmap},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Resolve(tc.hasSession, tc.mode))
		})
	}
}

func TestDefaultAfterLogin(t *testing.T) {
	assert.Equal(t, Research, DefaultAfterLogin)
}
