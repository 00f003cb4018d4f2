// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package layout reads and writes the fixed-size little-endian records
// and instruction payloads of the protocol.
package layout

import (
	"encoding/binary"

	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"

	"github.com/oreprotocol/ore/ore"
)

// ErrShort is returned when a buffer ends before the layout does.
var ErrShort = errors.New("layout: buffer too short")

// Writer fills a preallocated buffer front to back.
type Writer struct {
	b   []byte
	off int
}

// NewWriter returns a writer over a zeroed buffer of size bytes.
func NewWriter(size int) *Writer {
	return &Writer{b: make([]byte, size)}
}

func (w *Writer) U8(v uint8) *Writer {
	w.b[w.off] = v
	w.off++
	return w
}

func (w *Writer) Bool(v bool) *Writer {
	if v {
		return w.U8(1)
	}
	return w.U8(0)
}

func (w *Writer) U64(v uint64) *Writer {
	binary.LittleEndian.PutUint64(w.b[w.off:], v)
	w.off += 8
	return w
}

func (w *Writer) I64(v int64) *Writer {
	return w.U64(uint64(v))
}

func (w *Writer) Key(k solana.PublicKey) *Writer {
	return w.Bytes(k[:])
}

func (w *Writer) Bytes(v []byte) *Writer {
	w.off += copy(w.b[w.off:], v)
	return w
}

// Skip leaves n zero bytes.
func (w *Writer) Skip(n int) *Writer {
	w.off += n
	return w
}

// Finish returns the buffer. It panics if the layout did not fill it,
// which is a programming error.
func (w *Writer) Finish() []byte {
	if w.off != len(w.b) {
		panic(errors.Errorf("layout: wrote %d of %d bytes", w.off, len(w.b)))
	}
	return w.b
}

// Reader consumes a buffer front to back. The first short read sets a
// sticky error and every later read returns zero.
type Reader struct {
	b   []byte
	off int
	err error
}

func NewReader(b []byte) *Reader {
	return &Reader{b: b}
}

func (r *Reader) take(n int) []byte {
	if r.err != nil {
		return nil
	}
	if len(r.b)-r.off < n {
		r.err = ErrShort
		return nil
	}
	v := r.b[r.off : r.off+n]
	r.off += n
	return v
}

func (r *Reader) U8() uint8 {
	if v := r.take(1); v != nil {
		return v[0]
	}
	return 0
}

// Bool reads a flag byte. Values other than 0 and 1 are an error.
func (r *Reader) Bool() bool {
	switch v := r.U8(); v {
	case 0:
		return false
	case 1:
		return true
	default:
		if r.err == nil {
			r.err = errors.Errorf("layout: invalid flag byte %d", v)
		}
		return false
	}
}

func (r *Reader) U64() uint64 {
	if v := r.take(8); v != nil {
		return binary.LittleEndian.Uint64(v)
	}
	return 0
}

func (r *Reader) I64() int64 {
	return int64(r.U64())
}

func (r *Reader) Key() solana.PublicKey {
	if v := r.take(32); v != nil {
		return solana.PublicKeyFromBytes(v)
	}
	return solana.PublicKey{}
}

// Bytes returns the next n bytes without copying.
func (r *Reader) Bytes(n int) []byte {
	return r.take(n)
}

func (r *Reader) Skip(n int) {
	r.take(n)
}

// Remaining is the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.b) - r.off
}

func (r *Reader) Err() error {
	return r.err
}

// Done returns the sticky error, or an error if bytes remain unread.
func (r *Reader) Done() error {
	if r.err != nil {
		return r.err
	}
	if r.off != len(r.b) {
		return errors.Errorf("layout: %d trailing bytes", len(r.b)-r.off)
	}
	return nil
}

// Header writes the record header: the discriminator padded with zeros.
func (w *Writer) Header(disc uint8) *Writer {
	return w.U8(disc).Skip(ore.RecordHeaderSize - 1)
}

// Header reads the record header and returns its discriminator.
func (r *Reader) Header() uint8 {
	disc := r.U8()
	r.Skip(ore.RecordHeaderSize - 1)
	return disc
}
