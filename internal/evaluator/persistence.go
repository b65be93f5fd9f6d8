package evaluator

import (
	"bufio"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Table file header layout (spec.md §6), all multi-byte fields
// little-endian:
//
//	4 bytes  magic "PKJT"
//	2 bytes  major version
//	2 bytes  minor version
//	8 bytes  Level-5 entry count
//	8 bytes  Level-6 entry count
//	8 bytes  Level-7 entry count
//	32 bytes SHA-256 of the body
//
// The body is the Level-5, Level-6, and Level-7 value arrays (u32 each,
// little-endian) in that order, followed by the three levels'
// count-prefixed perfect-hash metadata, also in 5/6/7 order.
const (
	tableMagic        = "PKJT"
	tableVersionMajor = uint16(1)
	tableVersionMinor = uint16(0)
	headerSize        = 4 + 2 + 2 + 8 + 8 + 8 + sha256.Size
)

// writeTables serializes j to path atomically: the encoding is written
// to a temp file in the same directory, fsynced, then renamed over the
// destination, so a reader never observes a partially-written file
// (spec.md §6, §7).
func writeTables(path string, j *jumpTable) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".pokerjump-tables-*.tmp")
	if err != nil {
		return fmt.Errorf("evaluator: create temp table file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			os.Remove(tmpPath)
		}
	}()

	body, encodeErr := encodeBody(j)
	if encodeErr != nil {
		tmp.Close()
		return fmt.Errorf("evaluator: encode tables: %w", encodeErr)
	}
	sum := sha256.Sum256(body)

	buf := bufio.NewWriter(tmp)
	if err = writeHeader(buf, j, sum); err != nil {
		tmp.Close()
		return fmt.Errorf("evaluator: write table header: %w", err)
	}
	if _, err = buf.Write(body); err != nil {
		tmp.Close()
		return fmt.Errorf("evaluator: write table body: %w", err)
	}
	if err = buf.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("evaluator: flush table file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("evaluator: sync table file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("evaluator: close table file: %w", err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("evaluator: rename table file into place: %w", err)
	}
	return nil
}

func writeHeader(w io.Writer, j *jumpTable, sum [sha256.Size]byte) error {
	var hdr [headerSize]byte
	copy(hdr[0:4], tableMagic)
	binary.LittleEndian.PutUint16(hdr[4:6], tableVersionMajor)
	binary.LittleEndian.PutUint16(hdr[6:8], tableVersionMinor)
	binary.LittleEndian.PutUint64(hdr[8:16], uint64(len(j.level5.values)))
	binary.LittleEndian.PutUint64(hdr[16:24], uint64(len(j.level6.values)))
	binary.LittleEndian.PutUint64(hdr[24:32], uint64(len(j.level7.values)))
	copy(hdr[32:], sum[:])
	_, err := w.Write(hdr[:])
	return err
}

// readTables loads and validates a jump-table file written by
// writeTables. A short or unreadable header or body, a bad magic, a
// checksum mismatch, or a body that does not decode to exactly the three
// levels returns ErrCorruptTables; a file that cannot be opened or has an
// unsupported major version returns ErrTablesUnavailable.
func readTables(path string) (*jumpTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTablesUnavailable, err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	var hdr [headerSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, fmt.Errorf("%w: reading header: %v", ErrCorruptTables, err)
	}
	if string(hdr[0:4]) != tableMagic {
		return nil, fmt.Errorf("%w: bad magic", ErrCorruptTables)
	}
	major := binary.LittleEndian.Uint16(hdr[4:6])
	if major != tableVersionMajor {
		return nil, fmt.Errorf("%w: unsupported major version %d", ErrTablesUnavailable, major)
	}
	count5 := int(binary.LittleEndian.Uint64(hdr[8:16]))
	count6 := int(binary.LittleEndian.Uint64(hdr[16:24]))
	count7 := int(binary.LittleEndian.Uint64(hdr[24:32]))
	wantSum := hdr[32:]

	body, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrCorruptTables, err)
	}
	gotSum := sha256.Sum256(body)
	if !bytesEqual(gotSum[:], wantSum) {
		return nil, fmt.Errorf("%w: checksum mismatch", ErrCorruptTables)
	}

	j, err := decodeBody(body, count5, count6, count7)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptTables, err)
	}
	return j, nil
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// encodeBody writes the three value arrays followed by the three
// count-prefixed perfect-hash blobs, in Level-5, 6, 7 order (spec.md §6).
func encodeBody(j *jumpTable) ([]byte, error) {
	levels := []*jumpLevel{j.level5, j.level6, j.level7}

	var out []byte
	for _, lvl := range levels {
		out = appendValues(out, lvl.values)
	}
	for _, lvl := range levels {
		hashBytes, err := lvl.hash.MarshalBinary()
		if err != nil {
			return nil, fmt.Errorf("marshal perfect hash: %w", err)
		}
		out = appendUint64(out, uint64(len(hashBytes)))
		out = append(out, hashBytes...)
	}
	return out, nil
}

// decodeBody is the inverse of encodeBody. The three entry counts come
// from the already-validated header, not from the body itself, matching
// the wire format's "counts live in the header" layout.
func decodeBody(body []byte, count5, count6, count7 int) (*jumpTable, error) {
	counts := []int{count5, count6, count7}
	rest := body

	values := make([][]uint32, 3)
	for i, n := range counts {
		v, next, err := readValues(rest, n)
		if err != nil {
			return nil, fmt.Errorf("level %d values: %w", i+5, err)
		}
		values[i] = v
		rest = next
	}

	levels := make([]*jumpLevel, 3)
	for i, n := range counts {
		hashBytes, next, err := readLengthPrefixed(rest)
		if err != nil {
			return nil, fmt.Errorf("level %d hash: %w", i+5, err)
		}
		hash, err := unmarshalPerfectHash(hashBytes, n)
		if err != nil {
			return nil, fmt.Errorf("level %d hash: %w", i+5, err)
		}
		levels[i] = &jumpLevel{hash: hash, values: values[i]}
		rest = next
	}
	if len(rest) != 0 {
		return nil, errors.New("trailing bytes after decoding all levels")
	}

	return &jumpTable{level5: levels[0], level6: levels[1], level7: levels[2]}, nil
}

func appendUint64(out []byte, v uint64) []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return append(out, b[:]...)
}

func appendValues(out []byte, values []uint32) []byte {
	for _, v := range values {
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], v)
		out = append(out, b[:]...)
	}
	return out
}

func readValues(data []byte, n int) ([]uint32, []byte, error) {
	if len(data) < n*4 {
		return nil, nil, errors.New("truncated values")
	}
	values := make([]uint32, n)
	for i := range values {
		values[i] = binary.LittleEndian.Uint32(data[i*4 : i*4+4])
	}
	return values, data[n*4:], nil
}

func readLengthPrefixed(data []byte) ([]byte, []byte, error) {
	if len(data) < 8 {
		return nil, nil, errors.New("truncated length prefix")
	}
	n := int(binary.LittleEndian.Uint64(data[:8]))
	data = data[8:]
	if len(data) < n {
		return nil, nil, errors.New("truncated length-prefixed block")
	}
	return data[:n], data[n:], nil
}
