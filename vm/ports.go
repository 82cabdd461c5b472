package vm

import (
	"bufio"
	"fmt"
	"io"

	"github.com/helix-lang/helix/codon"
)

// InputPort is a lazy finite sequence of 6-bit unsigned values.
type InputPort interface {
	// Read returns the next value in [0,63], or an error on exhaustion or an
	// out-of-range source value.
	Read() (int, error)
}

// OutputPort is a sink accepting printable characters.
type OutputPort interface {
	Write(ch byte) error
}

// ReaderInputPort adapts an io.Reader of printable characters (per the §6
// encoding) into an InputPort, consuming one character per Read.
type ReaderInputPort struct {
	r *bufio.Reader
}

// NewReaderInputPort wraps r as an InputPort.
func NewReaderInputPort(r io.Reader) *ReaderInputPort {
	return &ReaderInputPort{r: bufio.NewReader(r)}
}

func (p *ReaderInputPort) Read() (int, error) {
	b, err := p.r.ReadByte()
	if err != nil {
		return 0, fmt.Errorf("input exhausted: %w", err)
	}
	v, err := codon.CharToValue(b)
	if err != nil {
		return 0, err
	}
	return v, nil
}

// WriterOutputPort adapts an io.Writer into an OutputPort.
type WriterOutputPort struct {
	w io.Writer
}

// NewWriterOutputPort wraps w as an OutputPort.
func NewWriterOutputPort(w io.Writer) *WriterOutputPort {
	return &WriterOutputPort{w: w}
}

func (p *WriterOutputPort) Write(ch byte) error {
	_, err := p.w.Write([]byte{ch})
	return err
}

// SliceInputPort is an InputPort backed by a fixed slice of 6-bit values,
// convenient for tests.
type SliceInputPort struct {
	values []int
	pos    int
}

// NewSliceInputPort returns an InputPort that yields values in order.
func NewSliceInputPort(values []int) *SliceInputPort {
	return &SliceInputPort{values: values}
}

func (p *SliceInputPort) Read() (int, error) {
	if p.pos >= len(p.values) {
		return 0, fmt.Errorf("input exhausted")
	}
	v := p.values[p.pos]
	p.pos++
	if v < 0 || v > 63 {
		return 0, fmt.Errorf("input value %d outside [0,63]", v)
	}
	return v, nil
}

// BufferOutputPort is an OutputPort that accumulates characters in memory,
// convenient for tests.
type BufferOutputPort struct {
	buf []byte
}

func (p *BufferOutputPort) Write(ch byte) error {
	p.buf = append(p.buf, ch)
	return nil
}

// String returns the accumulated output.
func (p *BufferOutputPort) String() string {
	return string(p.buf)
}
