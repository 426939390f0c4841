// Package assets resolves image URIs for the widget layer. Local files load
// synchronously; http(s) images are fetched in the background and reported as
// pending until they arrive.
package assets

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "golang.org/x/image/bmp"  // register decoder
	_ "golang.org/x/image/tiff" // register decoder
	_ "golang.org/x/image/webp" // register decoder
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/hubastard/frameui/engine/toolkit"
)

const (
	defaultCacheSize = 64
	maxImageBytes    = 32 << 20
	prefetchLimit    = 4
)

// Options configure a Loader.
type Options struct {
	// Root is the directory relative paths resolve against.
	Root string
	// CacheSize bounds the number of decoded images kept. Zero means 64.
	CacheSize int
	// Client fetches remote images. Nil means a client with a 30s timeout.
	Client *http.Client
	Logger *slog.Logger
}

type entry struct {
	img image.Image
	err error
}

// Loader is a toolkit.ImageLoader with a bounded cache. It is safe for
// concurrent use.
type Loader struct {
	root   string
	max    int
	client *http.Client
	log    *slog.Logger
	group  singleflight.Group

	mu       sync.Mutex
	cache    map[string]entry
	order    []string
	inflight map[string]bool
}

var _ toolkit.ImageLoader = (*Loader)(nil)

func NewLoader(opts Options) *Loader {
	l := &Loader{
		root:     opts.Root,
		max:      opts.CacheSize,
		client:   opts.Client,
		log:      opts.Logger,
		cache:    make(map[string]entry),
		inflight: make(map[string]bool),
	}
	if l.max <= 0 {
		l.max = defaultCacheSize
	}
	if l.client == nil {
		l.client = &http.Client{Timeout: 30 * time.Second}
	}
	if l.log == nil {
		l.log = slog.Default()
	}
	return l
}

// Load returns the decoded image at uri. Remote images return
// toolkit.ErrImagePending until the background fetch completes. Failures are
// cached like images; Forget clears them.
func (l *Loader) Load(uri string) (image.Image, error) {
	if e, ok := l.cached(uri); ok {
		return e.img, e.err
	}
	if isRemote(uri) {
		l.startFetch(uri)
		return nil, toolkit.ErrImagePending
	}
	return l.get(context.Background(), uri)
}

// Prefetch loads uris concurrently and waits for them. It returns the first
// failure; the other results are cached regardless. One failing uri does not
// cancel its siblings; only ctx does.
func (l *Loader) Prefetch(ctx context.Context, uris ...string) error {
	var g errgroup.Group
	g.SetLimit(prefetchLimit)
	for _, uri := range uris {
		g.Go(func() error {
			if e, ok := l.cached(uri); ok {
				return e.err
			}
			_, err := l.get(ctx, uri)
			return err
		})
	}
	return g.Wait()
}

// Forget drops uri from the cache.
func (l *Loader) Forget(uri string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.cache, uri)
	for i, k := range l.order {
		if k == uri {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
}

// Len reports the number of cached entries.
func (l *Loader) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.cache)
}

func (l *Loader) cached(uri string) (entry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, ok := l.cache[uri]
	return e, ok
}

func (l *Loader) store(uri string, img image.Image, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.cache[uri]; !ok {
		l.order = append(l.order, uri)
	}
	l.cache[uri] = entry{img: img, err: err}
	for len(l.order) > l.max {
		delete(l.cache, l.order[0])
		l.order = l.order[1:]
	}
}

// get loads uri once no matter how many callers ask for it concurrently.
func (l *Loader) get(ctx context.Context, uri string) (image.Image, error) {
	v, err, _ := l.group.Do(uri, func() (any, error) {
		img, err := l.read(ctx, uri)
		if err != nil && ctx.Err() != nil {
			// Cancelled, not failed: leave uri uncached so a later Load retries.
			return nil, err
		}
		if err != nil {
			l.log.Warn("image load failed", "uri", uri, "err", err)
		}
		l.store(uri, img, err)
		return img, err
	})
	img, _ := v.(image.Image)
	return img, err
}

func (l *Loader) startFetch(uri string) {
	l.mu.Lock()
	if l.inflight[uri] {
		l.mu.Unlock()
		return
	}
	l.inflight[uri] = true
	l.mu.Unlock()

	go func() {
		defer func() {
			l.mu.Lock()
			delete(l.inflight, uri)
			l.mu.Unlock()
		}()
		_, _ = l.get(context.Background(), uri)
	}()
}

func (l *Loader) read(ctx context.Context, uri string) (image.Image, error) {
	if isRemote(uri) {
		return l.fetch(ctx, uri)
	}
	path := l.resolve(uri)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()
	return decode(f, path)
}

func (l *Loader) fetch(ctx context.Context, uri string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %q: %w", uri, err)
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %q: %w", uri, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %q: %s", uri, resp.Status)
	}
	return decode(io.LimitReader(resp.Body, maxImageBytes), uri)
}

func (l *Loader) resolve(uri string) string {
	path := strings.TrimPrefix(uri, "file://")
	if !filepath.IsAbs(path) && l.root != "" {
		path = filepath.Join(l.root, path)
	}
	return path
}

func decode(r io.Reader, name string) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", name, err)
	}
	return img, nil
}

func isRemote(uri string) bool {
	return strings.HasPrefix(uri, "http://") || strings.HasPrefix(uri, "https://")
}
