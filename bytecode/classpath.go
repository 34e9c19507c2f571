package bytecode

import (
	"archive/zip"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/cpovirk/turbine/lookup"
	"github.com/cpovirk/turbine/sym"
)

const recordSuffix = ".classinfo.json"

// ClassPathBinder scans classpath and bootclasspath archives, registers
// every class it finds with a TopLevelIndex, and holds the raw records
// so that each BytecodeBoundClass view can decode its record lazily.
type ClassPathBinder struct {
	records map[sym.ClassSymbol]classRecord
}

// NewClassPathBinder scans archives in priority order: callers should
// pass bootclasspath entries ahead of classpath entries, since
// TopLevelIndex.Insert keeps the first registration of a given name.
func NewClassPathBinder(archivePaths []string) (*ClassPathBinder, error) {
	b := &ClassPathBinder{records: map[sym.ClassSymbol]classRecord{}}
	for _, path := range archivePaths {
		if err := b.scan(path); err != nil {
			return nil, fmt.Errorf("scanning classpath archive %s: %w", path, err)
		}
	}
	return b, nil
}

func (b *ClassPathBinder) scan(path string) error {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return err
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.FileInfo().IsDir() || !strings.HasSuffix(f.Name, recordSuffix) {
			continue
		}
		binaryName := strings.TrimSuffix(f.Name, recordSuffix)
		s := sym.NewClassSymbol(binaryName)
		if _, already := b.records[s]; already {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return fmt.Errorf("opening %s: %w", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return fmt.Errorf("reading %s: %w", f.Name, err)
		}

		var rec classRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return fmt.Errorf("decoding %s: %w", f.Name, err)
		}
		b.records[s] = rec
	}
	return nil
}

// Register inserts every scanned class into tli. Call once per binder,
// after all archives at this priority tier have been scanned and before
// any archive at a lower-priority tier is scanned into a different
// binder sharing the same index.
func (b *ClassPathBinder) Register(tli *lookup.TopLevelIndex) {
	for s := range b.records {
		tli.Insert(s)
	}
}

// Has reports whether s was found while scanning.
func (b *ClassPathBinder) Has(s sym.ClassSymbol) bool {
	_, ok := b.records[s]
	return ok
}

// Symbols returns every class symbol this binder scanned.
func (b *ClassPathBinder) Symbols() []sym.ClassSymbol {
	out := make([]sym.ClassSymbol, 0, len(b.records))
	for s := range b.records {
		out = append(out, s)
	}
	return out
}
