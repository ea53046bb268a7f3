package dictionary

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// FileFormat represents the supported word file encodings
type FileFormat int

const (
	FormatUnknown FileFormat = iota
	FormatText               // whitespace separated plain text
	FormatGzip               // gzip compressed plain text
)

func (f FileFormat) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatGzip:
		return "gzip"
	default:
		return "unknown"
	}
}

// DetectFileFormat picks the format from the file extension.
// Anything that is not .gz is read as plain text.
func DetectFileFormat(filename string) FileFormat {
	if strings.ToLower(filepath.Ext(filename)) == ".gz" {
		return FormatGzip
	}
	return FormatText
}

// ValidateTextFile checks that filename is a readable, non-empty regular file.
func ValidateTextFile(filename string) error {
	info, err := os.Stat(filename)
	if err != nil {
		return fmt.Errorf("failed to stat file %s: %w", filename, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", filename)
	}
	if info.Size() == 0 {
		return fmt.Errorf("file %s is empty", filename)
	}
	log.Debugf("Word file %s validated (%d bytes, %s)", filename, info.Size(), DetectFileFormat(filename))
	return nil
}

// openWordFile validates and opens filename, decompressing when needed.
func openWordFile(filename string) (io.ReadCloser, error) {
	if err := ValidateTextFile(filename); err != nil {
		return nil, err
	}
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", filename, err)
	}
	if DetectFileFormat(filename) != FormatGzip {
		return file, nil
	}
	zr, err := gzip.NewReader(file)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to read gzip header of %s: %w", filename, err)
	}
	return &gzipFile{Reader: zr, file: file}, nil
}

type gzipFile struct {
	*gzip.Reader
	file *os.File
}

func (g *gzipFile) Close() error {
	zerr := g.Reader.Close()
	if err := g.file.Close(); err != nil {
		return err
	}
	return zerr
}
