package question

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

//go:embed questions.json
var builtinQuestions []byte

// maxDocumentSize caps how much of a question document is read.
const maxDocumentSize = 8 << 20

// Source fetches a raw question document.
type Source interface {
	// Fetch returns the document bytes and the format they are encoded in.
	Fetch(ctx context.Context) ([]byte, Format, error)

	// String describes the source for logs and error messages.
	String() string
}

// NewSource picks a Source for ref: the built-in set for "", an HTTPSource
// for http(s) URLs, and a FileSource otherwise.
func NewSource(ref string) Source {
	switch {
	case ref == "":
		return EmbeddedSource{}
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		return &HTTPSource{URL: ref}
	default:
		return FileSource{Path: ref}
	}
}

// EmbeddedSource serves the sample question set compiled into the binary.
type EmbeddedSource struct{}

func (EmbeddedSource) Fetch(context.Context) ([]byte, Format, error) {
	return builtinQuestions, FormatJSON, nil
}

func (EmbeddedSource) String() string { return "builtin:questions.json" }

// FileSource reads a question document from the local filesystem.
type FileSource struct {
	Path string
}

func (s FileSource) Fetch(ctx context.Context) ([]byte, Format, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, "", fmt.Errorf("open %s: %w", s.Path, err)
	}
	defer f.Close()

	data, err := readDocument(f)
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", s.Path, err)
	}
	return data, formatFromPath(s.Path), nil
}

func (s FileSource) String() string { return s.Path }

// HTTPSource issues a single GET against URL. There is no retry.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

func (s *HTTPSource) Fetch(ctx context.Context) ([]byte, Format, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json, application/yaml;q=0.9")

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("fetch %s: %w", s.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", &FetchError{URL: s.URL, Status: resp.StatusCode}
	}

	data, err := readDocument(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", s.URL, err)
	}

	format := formatFromPath(req.URL.Path)
	if strings.Contains(resp.Header.Get("Content-Type"), "yaml") {
		format = FormatYAML
	}
	return data, format, nil
}

func (s *HTTPSource) String() string { return s.URL }

// readDocument reads r up to maxDocumentSize. Anything longer is rejected
// rather than truncated.
func readDocument(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxDocumentSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxDocumentSize {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrDocumentTooLarge, maxDocumentSize)
	}
	return data, nil
}

// formatFromPath infers the document format from a file extension,
// defaulting to JSON.
func formatFromPath(p string) Format {
	switch strings.ToLower(filepath.Ext(p)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}
