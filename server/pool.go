package server

import (
	"bytes"
	"sync"
)

// responseBufferPool holds bytes.Buffer for building responses
var responseBufferPool = sync.Pool{
	New: func() interface{} {
		return new(bytes.Buffer)
	},
}

// Pool size limits - buffers larger than this are discarded
const (
	maxPoolBufferSize = 16384 // 16KB
)
