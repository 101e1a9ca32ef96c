package fetch

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/arthur-debert/spacefeeder/pkg/errors"
	"github.com/arthur-debert/spacefeeder/pkg/logging"
)

// likelyFeedPaths are probed in order against a site's base URL.
var likelyFeedPaths = []string{
	"",
	"/feed",
	"/rss",
	"feed.xml",
	"rss.xml",
	"atom.xml",
	"index.xml",
	"blog.rss",
	".atom",
}

var feedContentTypes = []string{
	"application/rss+xml",
	"application/atom+xml",
	"application/xml",
	"text/xml",
}

// DiscoverFeedURL probes well-known feed locations under baseURL and
// returns the first one that answers with a feed content type.
func DiscoverFeedURL(ctx context.Context, baseURL string) (string, error) {
	logger := logging.GetLogger("discover")

	base, err := url.Parse(baseURL)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "invalid base url %s", baseURL)
	}

	client := &http.Client{Timeout: 3 * time.Second}
	for _, path := range likelyFeedPaths {
		candidate, err := base.Parse(path)
		if err != nil {
			continue
		}
		logger.Debug().Str("url", candidate.String()).Msg("Probing for feed")

		req, err := http.NewRequestWithContext(ctx, http.MethodHead, candidate.String(), nil)
		if err != nil {
			continue
		}
		res, err := client.Do(req)
		if err != nil {
			continue
		}
		res.Body.Close()

		if res.StatusCode < 400 && isFeedContentType(res.Header.Get("Content-Type")) {
			return candidate.String(), nil
		}
	}

	return "", errors.Newf(errors.ErrFeedNotFound, "no feed found under %s", baseURL)
}

func isFeedContentType(contentType string) bool {
	for _, feedType := range feedContentTypes {
		if strings.HasPrefix(contentType, feedType) {
			return true
		}
	}
	return false
}
