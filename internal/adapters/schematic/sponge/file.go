package sponge

import (
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/Tnze/go-mc/nbt"
	"github.com/bnema/voxel-schematics/internal/domain"
)

const schematicFileMode = 0o644

// WriteTo serializes doc as gzip-compressed NBT.
func WriteTo(w io.Writer, doc Document) error {
	zw := gzip.NewWriter(w)
	if err := nbt.NewEncoder(zw).Encode(doc, rootTagName); err != nil {
		_ = zw.Close()
		return fmt.Errorf("encode schematic nbt: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("flush schematic gzip stream: %w", err)
	}

	return nil
}

// ReadFrom parses a gzip-compressed NBT schematic. The whole gzip stream is
// consumed so a truncated or tampered file fails its checksum.
func ReadFrom(r io.Reader) (Document, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return Document{}, fmt.Errorf("open schematic gzip stream: %w", err)
	}
	defer zr.Close()

	var doc Document
	if _, err := nbt.NewDecoder(zr).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("decode schematic nbt: %w", err)
	}
	if _, err := io.Copy(io.Discard, zr); err != nil {
		return Document{}, fmt.Errorf("read schematic gzip trailer: %w", err)
	}

	return doc, nil
}

// Marshal returns the compressed file form of doc.
func Marshal(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteTo(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func Unmarshal(data []byte) (Document, error) {
	doc, err := ReadFrom(bytes.NewReader(data))
	if err != nil {
		return Document{}, fmt.Errorf("%w: %w", domain.ErrCorruptData, err)
	}
	return doc, nil
}

// WriteCompressed creates path and writes doc into it. It never replaces an
// existing file. A failed write leaves the partial file in place.
func WriteCompressed(doc Document, path string) error {
	info, err := os.Stat(path)
	switch {
	case err == nil && info.IsDir():
		return fmt.Errorf("%w: %s", domain.ErrIsDirectory, path)
	case err == nil:
		return fmt.Errorf("%w: %s", domain.ErrAlreadyExists, path)
	case !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: stat %s: %w", domain.ErrIoFailure, path, err)
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, schematicFileMode)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", domain.ErrAlreadyExists, path)
		}
		return fmt.Errorf("%w: create %s: %w", domain.ErrIoFailure, path, err)
	}

	if err := WriteTo(file, doc); err != nil {
		_ = file.Close()
		return fmt.Errorf("%w: write %s: %w", domain.ErrIoFailure, path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %w", domain.ErrIoFailure, path, err)
	}

	return nil
}

// ReadCompressed reads the schematic document stored at path.
func ReadCompressed(path string) (Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Document{}, fmt.Errorf("%w: %s", domain.ErrNotFound, path)
		}
		return Document{}, fmt.Errorf("%w: stat %s: %w", domain.ErrIoFailure, path, err)
	}
	if !info.Mode().IsRegular() {
		return Document{}, fmt.Errorf("%w: %s is not a regular file", domain.ErrNotFound, path)
	}

	file, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("%w: open %s: %w", domain.ErrIoFailure, path, err)
	}
	defer file.Close()

	source := &readErrorRecorder{r: file}
	doc, err := ReadFrom(source)
	if err != nil {
		if source.err != nil {
			return Document{}, fmt.Errorf("%w: read %s: %w", domain.ErrIoFailure, path, source.err)
		}
		return Document{}, fmt.Errorf("%w: %s: %w", domain.ErrCorruptData, path, err)
	}

	return doc, nil
}

// readErrorRecorder separates filesystem read failures from malformed
// content when both surface through the decoder as one error.
type readErrorRecorder struct {
	r   io.Reader
	err error
}

func (r *readErrorRecorder) Read(p []byte) (int, error) {
	n, err := r.r.Read(p)
	if err != nil && !errors.Is(err, io.EOF) {
		r.err = err
	}
	return n, err
}
