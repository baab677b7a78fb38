package internal

import (
	"bytes"
	"sync"
)

// BufferPool holds reusable byte buffers for the replay event encoder.
var BufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer([]byte{})
	},
}
