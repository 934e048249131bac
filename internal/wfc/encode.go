package wfc

import (
	"encoding/binary"
	"fmt"
	"io"
)

// EncodeModel writes m in the reference binary format: N as a varint, P
// as a varint, then P patterns of N*N varint tile ids, then P varint
// weights, then 4*P adjacency bitmasks each written as ceil(P/64)
// little-endian 64-bit words. Decoding with DecodeModel reproduces m
// exactly; the format carries no checksum or version tag, matching the
// minimal framing spec.md §6 describes.
func EncodeModel(w io.Writer, m *LearnedModel) error {
	buf := make([]byte, binary.MaxVarintLen64)

	writeVarint := func(v int64) error {
		n := binary.PutVarint(buf, v)
		_, err := w.Write(buf[:n])
		return err
	}

	p := m.P()
	if err := writeVarint(int64(m.N)); err != nil {
		return err
	}
	if err := writeVarint(int64(p)); err != nil {
		return err
	}

	for _, pat := range m.Patterns {
		for _, t := range pat.Tiles {
			if err := writeVarint(int64(t)); err != nil {
				return err
			}
		}
	}

	for _, wt := range m.Weights {
		if err := writeVarint(int64(wt)); err != nil {
			return err
		}
	}

	for i := 0; i < p; i++ {
		for d := 0; d < numDirections; d++ {
			for _, word := range m.Adjacency[i][d].words {
				if err := binary.Write(w, binary.LittleEndian, word); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// DecodeModel reads the format written by EncodeModel. It validates N
// and P for basic sanity but trusts tile ids and adjacency bits as-is;
// callers that load untrusted data should treat a successfully decoded
// model as no more trustworthy than the bytes it came from.
func DecodeModel(r io.Reader) (*LearnedModel, error) {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = &byteReaderAdapter{r: r}
	}

	readVarint := func() (int64, error) {
		return binary.ReadVarint(br)
	}

	n, err := readVarint()
	if err != nil {
		return nil, fmt.Errorf("%w: reading N: %v", ErrInvalidInput, err)
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: decoded N=%d is not positive", ErrInvalidInput, n)
	}

	p64, err := readVarint()
	if err != nil {
		return nil, fmt.Errorf("%w: reading P: %v", ErrInvalidInput, err)
	}
	if p64 < 1 {
		return nil, fmt.Errorf("%w: decoded P=%d is not positive", ErrInvalidInput, p64)
	}
	p := int(p64)
	nn := int(n) * int(n)

	patterns := make([]Pattern, p)
	for i := 0; i < p; i++ {
		tiles := make([]int, nn)
		for j := 0; j < nn; j++ {
			t, err := readVarint()
			if err != nil {
				return nil, fmt.Errorf("%w: reading pattern %d tile %d: %v", ErrInvalidInput, i, j, err)
			}
			tiles[j] = int(t)
		}
		patterns[i] = Pattern{N: int(n), Tiles: tiles}
	}

	weights := make([]int, p)
	for i := 0; i < p; i++ {
		wt, err := readVarint()
		if err != nil {
			return nil, fmt.Errorf("%w: reading weight %d: %v", ErrInvalidInput, i, err)
		}
		weights[i] = int(wt)
	}

	wordCount := (p + 63) / 64
	adjacency := make([][numDirections]Bitmask, p)
	for i := 0; i < p; i++ {
		for d := 0; d < numDirections; d++ {
			mask := newBitmask(p)
			for wi := 0; wi < wordCount; wi++ {
				var word uint64
				if err := binary.Read(r, binary.LittleEndian, &word); err != nil {
					return nil, fmt.Errorf("%w: reading adjacency[%d][%d] word %d: %v", ErrInvalidInput, i, d, wi, err)
				}
				mask.words[wi] = word
			}
			mask.maskTrailingBits()
			adjacency[i][d] = mask
		}
	}

	return &LearnedModel{N: int(n), Patterns: patterns, Weights: weights, Adjacency: adjacency}, nil
}

// byteReaderAdapter lets DecodeModel accept any io.Reader even though
// binary.ReadVarint requires io.ByteReader.
type byteReaderAdapter struct {
	r   io.Reader
	buf [1]byte
}

func (a *byteReaderAdapter) ReadByte() (byte, error) {
	_, err := io.ReadFull(a.r, a.buf[:])
	return a.buf[0], err
}
