package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/yungbote/recordvault-backend/internal/pkg/logger"
	"github.com/yungbote/recordvault-backend/internal/platform/apierr"
	"github.com/yungbote/recordvault-backend/internal/types"
	"github.com/yungbote/recordvault-backend/internal/utils"
)

// Client fetches a record from a remote catalog. One attempt per call:
// retries and caching are left to callers that want them.
type Client interface {
	FindRecord(ctx context.Context, url string) (*types.Record, error)
}

type client struct {
	log        *logger.Logger
	httpClient *http.Client
}

func NewClient(log *logger.Logger) Client {
	timeoutSec := utils.GetEnvAsInt("LOOKUP_TIMEOUT_SECONDS", 10, log)
	return &client{
		log:        log.With("client", "LookupClient"),
		httpClient: &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
	}
}

// volumeList mirrors the remote catalog response shape.
type volumeList struct {
	Items []volumeItem `json:"items"`
}

type volumeItem struct {
	ID         string     `json:"id"`
	VolumeInfo volumeInfo `json:"volumeInfo"`
}

type volumeInfo struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	PageCount   int    `json:"pageCount"`
}

func (c *client) FindRecord(ctx context.Context, url string) (*types.Record, error) {
	doc, err := FetchJSON[volumeList](ctx, c.httpClient, url)
	if err != nil {
		return nil, err
	}
	if len(doc.Items) == 0 {
		return nil, apierr.NotFound(fmt.Errorf("remote catalog returned no matches"))
	}
	first := doc.Items[0]
	return &types.Record{
		ID:          first.ID,
		Name:        first.VolumeInfo.Title,
		Description: first.VolumeInfo.Description,
		PageCount:   first.VolumeInfo.PageCount,
	}, nil
}

// FetchJSON issues a single GET and decodes the body into T. Network
// and non-2xx failures classify as upstream_failure, undecodable bodies
// as decode_failure.
func FetchJSON[T any](ctx context.Context, hc *http.Client, url string) (T, error) {
	var decoded T

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return decoded, apierr.Upstream(fmt.Errorf("build request for %s: %w", url, err))
	}
	resp, err := hc.Do(req)
	if err != nil {
		return decoded, apierr.Upstream(fmt.Errorf("fetch %s: %w", url, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decoded, apierr.Upstream(fmt.Errorf("fetch %s: upstream status %d", url, resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return decoded, apierr.Upstream(fmt.Errorf("read response from %s: %w", url, err))
	}
	if err := json.Unmarshal(body, &decoded); err != nil {
		return decoded, apierr.Decode(fmt.Errorf("decode response from %s: %w", url, err))
	}
	return decoded, nil
}
