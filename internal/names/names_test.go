package names

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabel(t *testing.T) {
	a := Label("a")
	assert.NotEmpty(t, a)
	assert.Equal(t, a, Label("a"))
	assert.Equal(t, Index(3), Index(3))

	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		label := Label(fmt.Sprintf("key-%d", i))
		assert.False(t, seen[label], "duplicate label %q", label)
		seen[label] = true
	}
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Otter", title("otter"))
	assert.Equal(t, "", title(""))
}
