package generator

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemplateBufferCapacityTracksEndpointCount(t *testing.T) {
	for _, tc := range []struct {
		name      string
		endpoints int
		wantCap   int
	}{
		{"fixed fragment", 0, fragmentBufferSize},
		{"small client", 2, fragmentBufferSize},
		{"midsize client", 16, clientBufferSize},
		{"module assembly", 41, moduleBufferSize},
	} {
		t.Run(tc.name, func(t *testing.T) {
			buf := getTemplateBuffer(tc.endpoints)
			assert.GreaterOrEqual(t, buf.Cap(), tc.wantCap)
			assert.Zero(t, buf.Len())
			putTemplateBuffer(buf, tc.endpoints)
		})
	}
}

func TestPutTemplateBufferSkipsOversized(t *testing.T) {
	assert.NotPanics(t, func() { putTemplateBuffer(nil, 0) })

	huge := bytes.NewBuffer(make([]byte, 0, maxPooledBufferCap+1))
	putTemplateBuffer(huge, 0)

	got := getTemplateBuffer(0)
	assert.NotSame(t, huge, got)
	putTemplateBuffer(got, 0)
}
