// Package favicon fetches site icons into a local cache directory. It is
// pure decoration: the collection never depends on it, and a failed fetch
// only leaves an item's icon hint empty.
package favicon

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/net/html"

	"github.com/shelftools/shelf/internal/config"
	"github.com/shelftools/shelf/internal/logger"
)

// maxIconBytes caps how much of an icon response is read.
const maxIconBytes = 1 << 20

// Fetcher downloads favicons into a cache directory.
type Fetcher struct {
	client   *http.Client
	cacheDir string
	log      logger.Logger
	workers  int
}

// New builds a Fetcher from the favicon config. The HTTP client retries
// transient failures a couple of times and never logs; icon fetching is
// not worth noise.
func New(cfg config.Favicon, log logger.Logger) *Fetcher {
	if log == nil {
		log = logger.Nop()
	}

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 2
	retryClient.RetryWaitMin = 500 * time.Millisecond
	retryClient.RetryWaitMax = 2 * time.Second
	retryClient.Logger = nil
	retryClient.HTTPClient.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second

	workers := cfg.Concurrency
	if workers < 1 {
		workers = 1
	}

	return &Fetcher{
		client:   retryClient.StandardClient(),
		cacheDir: cfg.CacheDir,
		log:      log,
		workers:  workers,
	}
}

// Fetch resolves and downloads the favicon for siteURL, returning the
// local path of the cached file. The page is scanned for icon links
// first; /favicon.ico is the fallback.
func (f *Fetcher) Fetch(ctx context.Context, siteURL string) (string, error) {
	base, err := url.Parse(siteURL)
	if err != nil || base.Host == "" {
		return "", fmt.Errorf("favicon: bad site url %q", siteURL)
	}

	candidates := f.scanPage(ctx, base)
	candidates = append(candidates, base.ResolveReference(&url.URL{Path: "/favicon.ico"}).String())

	var lastErr error
	for _, candidate := range candidates {
		local, err := f.download(ctx, candidate)
		if err != nil {
			lastErr = err
			continue
		}
		return local, nil
	}
	return "", fmt.Errorf("favicon: no icon for %s: %w", base.Host, lastErr)
}

// scanPage fetches the page and collects icon link hrefs in document
// order. Any failure just means no candidates beyond the fallback.
func (f *Fetcher) scanPage(ctx context.Context, base *url.URL) []string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base.String(), nil)
	if err != nil {
		return nil
	}

	resp, err := f.client.Do(req)
	if err != nil {
		f.log.Debug("favicon page fetch failed", logger.String("url", base.String()), logger.Error(err))
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil
	}

	doc, err := html.Parse(io.LimitReader(resp.Body, maxIconBytes))
	if err != nil {
		return nil
	}

	var hrefs []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && strings.EqualFold(n.Data, "link") && isIconRel(getAttr(n, "rel")) {
			if href := getAttr(n, "href"); href != "" {
				if ref, err := url.Parse(href); err == nil {
					hrefs = append(hrefs, base.ResolveReference(ref).String())
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return hrefs
}

// isIconRel matches the rel values browsers treat as icon links.
func isIconRel(rel string) bool {
	for _, part := range strings.Fields(strings.ToLower(rel)) {
		switch part {
		case "icon", "shortcut", "apple-touch-icon", "apple-touch-icon-precomposed", "mask-icon":
			return true
		}
	}
	return false
}

func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if strings.EqualFold(attr.Key, key) {
			return attr.Val
		}
	}
	return ""
}

// download stores the icon in the cache dir, keyed by a hash of its URL
// so repeated refreshes overwrite in place.
func (f *Fetcher) download(ctx context.Context, iconURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, iconURL, nil)
	if err != nil {
		return "", err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("icon %s: %s", iconURL, http.StatusText(resp.StatusCode))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxIconBytes))
	if err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", fmt.Errorf("icon %s: empty response", iconURL)
	}

	if err := os.MkdirAll(f.cacheDir, 0755); err != nil {
		return "", err
	}

	local := filepath.Join(f.cacheDir, cacheName(iconURL))
	if err := os.WriteFile(local, data, 0644); err != nil {
		return "", err
	}
	return local, nil
}

// cacheName derives a stable filename from the icon URL, keeping the
// original extension when it has one.
func cacheName(iconURL string) string {
	sum := sha256.Sum256([]byte(iconURL))
	name := hex.EncodeToString(sum[:8])

	ext := ".ico"
	if u, err := url.Parse(iconURL); err == nil {
		if e := path.Ext(u.Path); e != "" && len(e) <= 5 {
			ext = e
		}
	}
	return name + ext
}

// Result is the outcome of one batch fetch.
type Result struct {
	URL      string
	IconPath string // empty when the fetch failed
	Err      string // normalized error message, empty on success
}

// ProgressFunc is called after each URL finishes, with the number done so
// far and the total.
type ProgressFunc func(completed, total int)

// FetchAll fetches icons for every URL concurrently. Results come back in
// input order regardless of completion order.
func (f *Fetcher) FetchAll(ctx context.Context, urls []string, onProgress ProgressFunc) []Result {
	if len(urls) == 0 {
		return nil
	}

	results := make([]Result, len(urls))
	jobs := make(chan int, len(urls))
	var wg sync.WaitGroup

	var progressMu sync.Mutex
	completed := 0

	for w := 0; w < f.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				result := Result{URL: urls[idx]}
				local, err := f.Fetch(ctx, urls[idx])
				if err != nil {
					result.Err = normalizeError(err.Error())
				} else {
					result.IconPath = local
				}
				results[idx] = result

				if onProgress != nil {
					progressMu.Lock()
					completed++
					onProgress(completed, len(urls))
					progressMu.Unlock()
				}
			}
		}()
	}

	for i := range urls {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// normalizeError folds verbose transport errors into readable categories.
func normalizeError(errStr string) string {
	lower := strings.ToLower(errStr)

	switch {
	case strings.Contains(lower, "no such host"):
		return "DNS failure"
	case strings.Contains(lower, "context deadline exceeded"),
		strings.Contains(lower, "timeout"):
		return "Timeout"
	case strings.Contains(lower, "connection refused"):
		return "Connection refused"
	case strings.Contains(lower, "certificate"), strings.Contains(lower, "tls"):
		return "TLS error"
	case strings.Contains(lower, "network is unreachable"):
		return "Network unreachable"
	default:
		return errStr
	}
}
