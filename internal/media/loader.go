package media

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoding
	_ "image/jpeg" // register JPEG decoding
	_ "image/png"  // register PNG decoding
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "golang.org/x/image/webp" // register WebP decoding

	"github.com/alexisbeaulieu97/reveal/pkg/errors"
)

// ErrNoLoader is returned when no loader accepts a source.
var ErrNoLoader = stderrors.New("no loader accepts source")

// ErrRemoteDisabled is returned for http sources while remote fetching is off.
var ErrRemoteDisabled = stderrors.New("remote images are disabled")

// ErrImageTooLarge is returned for images whose dimensions exceed the
// decode limits.
var ErrImageTooLarge = stderrors.New("image too large")

const (
	// maxImageBytes caps how much of a file or response is read.
	maxImageBytes = 20 << 20
	// maxImagePixels caps width×height of a decoded image.
	maxImagePixels = 4096 * 4096
)

// Loader fetches and decodes an image source.
type Loader interface {
	Accepts(src string) bool
	Load(ctx context.Context, src string) (image.Image, error)
}

// ChainLoader asks each loader in order and uses the first that accepts.
type ChainLoader []Loader

// NewChainLoader builds the standard chain: placeholders, files, then http.
func NewChainLoader(placeholderBase, root string, remote bool, timeout time.Duration) ChainLoader {
	return ChainLoader{
		PlaceholderLoader{Base: placeholderBase},
		FileLoader{Root: root},
		NewHTTPLoader(remote, timeout),
	}
}

// Accepts reports whether any loader accepts src.
func (c ChainLoader) Accepts(src string) bool {
	for _, l := range c {
		if l.Accepts(src) {
			return true
		}
	}
	return false
}

// Load delegates to the first accepting loader.
func (c ChainLoader) Load(ctx context.Context, src string) (image.Image, error) {
	for _, l := range c {
		if l.Accepts(src) {
			return l.Load(ctx, src)
		}
	}
	if isRemote(src) {
		return nil, errors.NewImageError(src, ErrRemoteDisabled)
	}
	return nil, errors.NewImageError(src, ErrNoLoader)
}

// FileLoader reads local paths and file:// URLs. Relative paths resolve
// against Root.
type FileLoader struct {
	Root string
}

// Accepts reports whether src names a local file.
func (f FileLoader) Accepts(src string) bool {
	if src == "" {
		return false
	}
	if strings.HasPrefix(src, "file://") {
		return true
	}
	return !strings.Contains(src, "://")
}

// Load opens and decodes the file.
func (f FileLoader) Load(ctx context.Context, src string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.NewImageError(src, err)
	}
	path := strings.TrimPrefix(src, "file://")
	if !filepath.IsAbs(path) && f.Root != "" {
		path = filepath.Join(f.Root, path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, errors.NewImageError(src, err)
	}
	defer file.Close()

	return decode(io.LimitReader(file, maxImageBytes), src)
}

// HTTPLoader fetches http and https sources when Enabled.
type HTTPLoader struct {
	Enabled  bool
	Client   *http.Client
	MaxBytes int64
}

// NewHTTPLoader creates a loader with its own client and timeout.
func NewHTTPLoader(enabled bool, timeout time.Duration) HTTPLoader {
	return HTTPLoader{
		Enabled:  enabled,
		Client:   &http.Client{Timeout: timeout},
		MaxBytes: maxImageBytes,
	}
}

// Accepts reports whether src is remote and fetching is enabled.
func (h HTTPLoader) Accepts(src string) bool {
	return h.Enabled && isRemote(src)
}

// Load fetches and decodes src.
func (h HTTPLoader) Load(ctx context.Context, src string) (image.Image, error) {
	if !h.Enabled {
		return nil, errors.NewImageError(src, ErrRemoteDisabled)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return nil, errors.NewImageError(src, err)
	}

	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.NewImageError(src, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewImageError(src, fmt.Errorf("unexpected status %s", resp.Status))
	}

	limit := h.MaxBytes
	if limit <= 0 {
		limit = maxImageBytes
	}
	return decode(io.LimitReader(resp.Body, limit), src)
}

// decode reads the header first and refuses images whose pixel count is
// over maxImagePixels, so a small file cannot force a huge allocation.
func decode(r io.Reader, src string) (image.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.NewImageError(src, fmt.Errorf("read: %w", err))
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, errors.NewImageError(src, fmt.Errorf("decode: %w", err))
	}
	if int64(cfg.Width)*int64(cfg.Height) > maxImagePixels {
		return nil, errors.NewImageError(src, fmt.Errorf("%w: %dx%d", ErrImageTooLarge, cfg.Width, cfg.Height))
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.NewImageError(src, fmt.Errorf("decode: %w", err))
	}
	return img, nil
}

func isRemote(src string) bool {
	u, err := url.Parse(src)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}
