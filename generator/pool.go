package generator

import (
	"bytes"
	"sync"
)

// A rendered wrapper (struct, constructor, Build, and the Do helper) runs
// about 2KB of source, so buffer demand scales with the endpoint count.
// Pools are split into three classes: fixed fragments (enum, package doc,
// shared runtime, README), single clients with up to ~16 endpoints, and
// full module assembly for the largest catalog definitions.
const (
	wrapperSourceEstimate = 2 * 1024
	fragmentBufferSize    = 4 * 1024
	clientBufferSize      = 32 * 1024
	moduleBufferSize      = 128 * 1024
	maxPooledBufferCap    = 1 << 20 // let GC collect oversized buffers
)

var fragmentBufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, fragmentBufferSize))
	},
}

var clientBufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, clientBufferSize))
	},
}

var moduleBufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, moduleBufferSize))
	},
}

// bufferClass picks the pool whose buffers fit the estimated output for
// endpointCount rendered wrappers.
func bufferClass(endpointCount int) *sync.Pool {
	switch est := endpointCount * wrapperSourceEstimate; {
	case est <= fragmentBufferSize:
		return &fragmentBufferPool
	case est <= clientBufferSize:
		return &clientBufferPool
	default:
		return &moduleBufferPool
	}
}

// getTemplateBuffer returns a reset buffer sized for the endpoint count.
func getTemplateBuffer(endpointCount int) *bytes.Buffer {
	buf := bufferClass(endpointCount).Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// putTemplateBuffer returns a buffer to its class pool.
func putTemplateBuffer(buf *bytes.Buffer, endpointCount int) {
	if buf == nil || buf.Cap() > maxPooledBufferCap {
		return
	}
	bufferClass(endpointCount).Put(buf)
}
