package dimacs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"

	"github.com/mholt/archives"
	"github.com/sirupsen/logrus"
	"github.com/vertexlab/vertex/pkg/graph"
)

// Getter fetches the raw bytes behind a location.
type Getter interface {
	Get(ctx context.Context, rawURL string) (io.ReadCloser, error)
}

type getterImpl struct {
	client *http.Client
}

// DefaultGetter reads file:// URLs and plain paths from disk and everything
// else over http.
var DefaultGetter Getter = &getterImpl{client: http.DefaultClient}

func (g *getterImpl) Get(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" {
		// not a URL, so a local path
		return os.Open(rawURL)
	}
	switch u.Scheme {
	case "file":
		return os.Open(u.Path)
	case "http", "https":
	default:
		return nil, fmt.Errorf("unsupported scheme %q in %s", u.Scheme, rawURL)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", rawURL, err)
	}
	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", rawURL, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("failed to fetch %s: %s", rawURL, resp.Status)
	}
	return resp.Body, nil
}

// Load reads a graph from a path, a file:// URL or an http(s):// URL.
// Compressed input is decompressed based on its content and file name.
func Load(ctx context.Context, location string) (*graph.Graph, error) {
	return LoadWith(ctx, DefaultGetter, location)
}

func LoadWith(ctx context.Context, getter Getter, location string) (*graph.Graph, error) {
	logrus.Debugf("Loading graph from %s", location)
	body, err := getter.Get(ctx, location)
	if err != nil {
		return nil, err
	}
	defer body.Close()
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", location, err)
	}

	r, closer, err := decompress(ctx, location, data)
	if err != nil {
		return nil, err
	}
	if closer != nil {
		defer closer.Close()
	}
	g, err := Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", location, err)
	}
	return g, nil
}

func decompress(ctx context.Context, location string, data []byte) (io.Reader, io.Closer, error) {
	if plain(data) {
		return bytes.NewReader(data), nil, nil
	}
	name := location
	if u, err := url.Parse(location); err == nil && u.Path != "" {
		name = u.Path
	}
	format, _, err := archives.Identify(ctx, path.Base(name), bytes.NewReader(data))
	if errors.Is(err, archives.NoMatch) {
		return bytes.NewReader(data), nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to identify format of %s: %w", location, err)
	}
	dec, ok := format.(archives.Decompressor)
	if !ok {
		return nil, nil, fmt.Errorf("unsupported format %s for %s", format.Extension(), location)
	}
	logrus.Debugf("Decompressing %s as %s", location, format.Extension())
	rc, err := dec.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decompress %s: %w", location, err)
	}
	return rc, rc, nil
}

// plain reports whether data starts like a DIMACS text file. Brotli streams
// carry no magic number, so text must not be handed to format detection.
func plain(data []byte) bool {
	data = bytes.TrimLeft(data, " \t\r\n")
	if len(data) == 0 {
		return true
	}
	switch data[0] {
	case 'c', 'p', 'e':
		return len(data) == 1 || data[1] == ' ' || data[1] == '\t' || data[1] == '\n' || data[1] == '\r'
	}
	return false
}
