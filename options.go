package pinto

import (
	"io"
	"log"

	"github.com/GeekHorse/Pinto/utilities/text"
)

// AllocFunc allocates `size` bytes for a text buffer or an image's pixels. An
// error aborts the operation with a MemoryAllocationFailed error.
type AllocFunc = text.AllocFunc

// Options configures a [Codec]. The zero value is ready to use.
type Options struct {
	// Logger receives a line for every failed operation and a summary of every
	// successful one. Defaults to discarding everything.
	Logger *log.Logger
	// TextGrowth is how many characters a text buffer grows by when it's full.
	// Defaults to [text.DefaultGrowth].
	TextGrowth int
	// Alloc provides memory for text buffers and decoded images. Defaults to
	// make().
	Alloc AllocFunc
}

// Codec encodes and decodes images. It holds no state besides its
// configuration, so one codec can be shared between goroutines.
type Codec struct {
	logger *log.Logger
	growth int
	alloc  AllocFunc
}

// New creates a codec, filling in defaults for anything `options` leaves
// unset.
func New(options Options) *Codec {
	codec := &Codec{
		logger: options.Logger,
		growth: options.TextGrowth,
		alloc:  options.Alloc,
	}

	if codec.logger == nil {
		codec.logger = log.New(io.Discard, "", 0)
	}
	if codec.growth < 1 {
		codec.growth = text.DefaultGrowth
	}
	if codec.alloc == nil {
		codec.alloc = text.DefaultAlloc
	}
	return codec
}

var defaultCodec = New(Options{})

func (c *Codec) newText() (*text.Buffer, error) {
	return text.New(c.growth, c.alloc)
}
