// Package boardfile round-trips a filled board to and from a compact
// binary format: a fixed-width header followed by a flat row-major array
// of cell-kind bytes. Used by the batch CLI to persist generated boards
// across process boundaries.
package boardfile

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/dimaq12/noguess-mines/internal/board"
)

// magic identifies the format; version allows the layout to change later
// without silently misreading older files.
var magic = [4]byte{'N', 'G', 'M', 'S'}

const version = uint8(1)

// ErrBadMagic is returned when a stream does not start with the expected
// magic bytes or carries an unsupported version.
var ErrBadMagic = errors.New("boardfile: bad magic or unsupported version")

// ErrShortRead is returned when a stream ends before a complete board was
// read.
var ErrShortRead = errors.New("boardfile: short read")

const mineByte = 0xFF

// Write encodes b to w: 4 magic bytes, 1 version byte, width/height/mines
// as uint16, start (x,y) as a uint16 pair, then width*height cell-kind
// bytes in row-major order (0=Empty, 1..8=Number, 0xFF=Mine).
func Write(w io.Writer, b *board.Board) error {
	if _, err := w.Write(magic[:]); err != nil {
		return fmt.Errorf("boardfile: write magic: %w", err)
	}
	if err := binary.Write(w, binary.BigEndian, version); err != nil {
		return fmt.Errorf("boardfile: write version: %w", err)
	}

	header := []uint16{
		uint16(b.Width), uint16(b.Height), uint16(b.Mines),
		uint16(b.Start.X), uint16(b.Start.Y),
	}
	if err := binary.Write(w, binary.BigEndian, header); err != nil {
		return fmt.Errorf("boardfile: write header: %w", err)
	}

	cells := make([]byte, 0, b.Width*b.Height)
	for _, c := range board.AllCells(b) {
		cells = append(cells, encodeCell(b.Cell(c)))
	}
	if _, err := w.Write(cells); err != nil {
		return fmt.Errorf("boardfile: write cells: %w", err)
	}
	return nil
}

func encodeCell(cell board.Cell) byte {
	switch cell.Kind {
	case board.Mine:
		return mineByte
	case board.Number:
		return byte(cell.Value)
	default:
		return 0
	}
}

func decodeCell(b byte) board.Cell {
	switch {
	case b == mineByte:
		return board.Cell{Kind: board.Mine}
	case b == 0:
		return board.Cell{Kind: board.Empty}
	default:
		return board.Cell{Kind: board.Number, Value: int(b)}
	}
}

// Read decodes a board previously written by Write. The returned board's
// clues are taken verbatim from the stream, not recomputed.
func Read(r io.Reader) (*board.Board, error) {
	var gotMagic [4]byte
	if _, err := io.ReadFull(r, gotMagic[:]); err != nil {
		return nil, shortOrWrap(err)
	}
	if gotMagic != magic {
		return nil, ErrBadMagic
	}

	var gotVersion uint8
	if err := binary.Read(r, binary.BigEndian, &gotVersion); err != nil {
		return nil, shortOrWrap(err)
	}
	if gotVersion != version {
		return nil, ErrBadMagic
	}

	var header [5]uint16
	if err := binary.Read(r, binary.BigEndian, &header); err != nil {
		return nil, shortOrWrap(err)
	}
	width, height, mines := int(header[0]), int(header[1]), int(header[2])
	start := board.Coord{X: int(header[3]), Y: int(header[4])}

	b, err := board.NewBoard(width, height, mines)
	if err != nil {
		return nil, fmt.Errorf("boardfile: decoded header invalid: %w", err)
	}
	b.Start = start

	cells := make([]byte, width*height)
	if _, err := io.ReadFull(r, cells); err != nil {
		return nil, shortOrWrap(err)
	}
	for i, c := range board.AllCells(b) {
		b.SetCell(c, decodeCell(cells[i]))
	}
	return b, nil
}

func shortOrWrap(err error) error {
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %v", ErrShortRead, err)
	}
	return fmt.Errorf("boardfile: %w", err)
}
