package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/lixenwraith/farmstead/vmath"
)

func TestSessionSpans(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))

	s, err := New(millDefinition(), Options{Tracer: tp.Tracer("test")})
	require.NoError(t, err)

	require.NoError(t, s.BeginDrag(1, vmath.V2(0, 0)))
	require.NoError(t, s.UpdateDrag(1, vmath.V2(10, 0)))
	require.NoError(t, s.EndDrag(1))
	s.Tick(step)
	require.NoError(t, s.BeginDrag(2, vmath.V2(0, 5)))
	require.NoError(t, s.UpdateDrag(2, vmath.V2(20, 0)))
	require.NoError(t, s.EndDrag(2))
	s.Tick(step)

	s.Reset()
	ended := rec.Ended()
	require.Len(t, ended, 1, "reset ends the previous session span")

	span := ended[0]
	assert.Equal(t, "puzzle.session", span.Name())
	var names []string
	for _, ev := range span.Events() {
		names = append(names, ev.Name)
	}
	assert.Equal(t, []string{"entity.locked", "entity.locked", "puzzle.completed"}, names)

	s.Close()
	assert.Len(t, rec.Ended(), 2)
}
