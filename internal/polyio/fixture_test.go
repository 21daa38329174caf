package polyio

import (
	"embed"
	"testing"

	"github.com/stretchr/testify/require"
)

// Fixtures are available by name in the fixtures/ directory, with extension.

//go:embed fixtures
var fixtures embed.FS

func loadSVGFixture(t *testing.T, name string) ([]Shape, error) {
	t.Helper()
	fixture, err := fixtures.Open("fixtures/" + name)
	require.NoError(t, err)
	defer fixture.Close()
	return ReadSVG(fixture)
}
