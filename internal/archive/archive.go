// Package archive lists and extracts image entries from zip archives.
//
// Every call reads the whole archive from disk and parses it again. No
// handle or index survives between a listing and a later extraction; the
// caller re-supplies the exact entry name it got from the listing.
package archive

import (
	"archive/zip"
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/taigrr/gallery-mcp/internal/mediatype"
	"github.com/taigrr/gallery-mcp/internal/types"
)

const (
	opListArchive = "list archive"
	opReadArchive = "read archive"
)

// PathResolver validates and normalizes a caller-supplied path.
type PathResolver interface {
	ResolvePath(op, path string) (string, error)
}

// Service lists and extracts zip archive entries.
type Service struct {
	resolver PathResolver
}

// New creates a new Service. A nil resolver reads paths as given.
func New(resolver PathResolver) *Service {
	return &Service{resolver: resolver}
}

// List returns the names of the non-directory entries whose extension is a
// recognized image extension. Names keep their original case and internal
// separators. They are sorted ordinally unless params.Natural is set.
func (s *Service) List(params types.ArchiveListParams) (types.ArchiveListing, error) {
	zr, err := s.open(opListArchive, params.Path)
	if err != nil {
		return types.ArchiveListing{}, err
	}

	names := []string{}
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if mediatype.IsImageEntry(f.Name) {
			names = append(names, f.Name)
		}
	}

	if params.Natural {
		slices.SortStableFunc(names, NaturalCompare)
	} else {
		slices.Sort(names)
	}

	return types.ArchiveListing{Archive: params.Path, Entries: names}, nil
}

// Extract returns the decompressed bytes of the entry named exactly name,
// with its MIME type inferred from the name's extension.
func (s *Service) Extract(path, name string) (string, []byte, error) {
	zr, err := s.open(opReadArchive, path)
	if err != nil {
		return "", nil, err
	}

	f := findEntry(zr, name)
	if f == nil {
		return "", nil, types.NewError(types.KindEntryNotFound, opReadArchive, path, fmt.Errorf("no entry named %q", name))
	}

	rc, err := f.Open()
	if err != nil {
		return "", nil, types.NewError(types.KindArchiveFormat, opReadArchive, path, fmt.Errorf("open %q: %w", name, err))
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return "", nil, types.NewError(types.KindArchiveFormat, opReadArchive, path, fmt.Errorf("decompress %q: %w", name, err))
	}

	return mediatype.MIMETypeForEntry(name), data, nil
}

// Read is Extract with the bytes encoded as standard, padded base64.
func (s *Service) Read(path, name string) (types.Payload, error) {
	mimeType, data, err := s.Extract(path, name)
	if err != nil {
		return types.Payload{}, err
	}

	return types.Payload{
		MIMEType: mimeType,
		Data:     base64.StdEncoding.EncodeToString(data),
	}, nil
}

// open reads the archive at path fully into memory and parses it.
func (s *Service) open(op, path string) (*zip.Reader, error) {
	resolved := path
	if s.resolver != nil {
		var err error
		resolved, err = s.resolver.ResolvePath(op, path)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		return nil, types.NewError(types.KindIO, op, path, err)
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil && !errors.Is(err, zip.ErrInsecurePath) {
		return nil, types.NewError(types.KindArchiveFormat, op, path, err)
	}

	return zr, nil
}

// findEntry returns the first entry whose name equals name exactly.
func findEntry(zr *zip.Reader, name string) *zip.File {
	for _, f := range zr.File {
		if f.Name == name {
			return f
		}
	}
	return nil
}
