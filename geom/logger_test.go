package geom

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	GenerateSmoothCurve([]float64{1, 2}, DefaultTension, false, DefaultSegments)
	assert.Contains(t, buf.String(), "curve input too short to smooth")
	assert.Contains(t, buf.String(), "coords=2")

	SetLogger(nil)
	buf.Reset()
	GenerateSmoothCurve([]float64{1, 2}, DefaultTension, false, DefaultSegments)
	assert.Empty(t, buf.String())
	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError))
}
