// Package instagram provides the adapter for the third-party Instagram data
// provider. It translates abstract lookups into parameterized HTTP calls and
// normalizes provider-specific JSON shapes into the stable internal types, so
// the rest of the system never depends on the provider's schema.
package instagram

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jonathan/instagrowth/internal/store"
	"github.com/jonathan/instagrowth/internal/types"
)

// Defaults for the RapidAPI-hosted provider.
const (
	DefaultBaseURL = "https://instagram-looter2.p.rapidapi.com"
	DefaultHost    = "instagram-looter2.p.rapidapi.com"

	// DefaultTimeout is the HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// pageSize caps every media listing request at one page.
	pageSize = 24
)

// Client issues read requests against the data provider. Every operation
// requires a credential in the injected store and fails with
// MissingCredentialError before any network I/O when it is absent.
type Client struct {
	baseURL    string
	host       string
	store      store.Store
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the provider base URL (used by tests).
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithHost overrides the host identifier header.
func WithHost(host string) Option {
	return func(c *Client) { c.host = host }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// NewClient returns a Client reading its credential from s.
func NewClient(s store.Store, opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		host:       DefaultHost,
		store:      s,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// get performs a credentialed GET against endpoint and decodes the 2xx body
// into out. Failures map onto the adapter error taxonomy; none are retried.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	credential, ok, err := c.store.Get(store.KeyCredential)
	if err != nil {
		return err
	}
	if !ok || credential == "" {
		return &MissingCredentialError{}
	}

	reqURL := c.baseURL + "/" + endpoint
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return &ProviderError{Message: "failed to create request", Cause: err}
	}
	req.Header.Set("x-rapidapi-key", credential)
	req.Header.Set("x-rapidapi-host", c.host)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &ProviderError{Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &ProviderError{StatusCode: resp.StatusCode, Message: "failed to read response body", Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &ProviderError{StatusCode: resp.StatusCode, Message: providerMessage(body, resp)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &MalformedResponseError{Endpoint: endpoint, Cause: err}
	}
	return nil
}

// providerMessage extracts the optional message field from an error body,
// falling back to the transport status text.
func providerMessage(body []byte, resp *http.Response) string {
	var errBody struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &errBody); err == nil && errBody.Message != "" {
		return errBody.Message
	}
	return http.StatusText(resp.StatusCode)
}

// webProfileResponse is the provider shape for the web-profile endpoint.
type webProfileResponse struct {
	Data struct {
		User *struct {
			ID             string `json:"id"`
			Username       string `json:"username"`
			FullName       string `json:"full_name"`
			Biography      string `json:"biography"`
			ProfilePicURL  string `json:"profile_pic_url"`
			ExternalURL    string `json:"external_url"`
			IsPrivate      bool   `json:"is_private"`
			IsVerified     bool   `json:"is_verified"`
			EdgeFollowedBy struct {
				Count int64 `json:"count"`
			} `json:"edge_followed_by"`
			EdgeFollow struct {
				Count int64 `json:"count"`
			} `json:"edge_follow"`
			EdgeOwnerToTimelineMedia struct {
				Count int64 `json:"count"`
			} `json:"edge_owner_to_timeline_media"`
		} `json:"user"`
	} `json:"data"`
}

// SearchUser fetches the profile for username and maps it onto the stable
// UserProfile shape. A payload without the nested user object is NotFound.
func (c *Client) SearchUser(ctx context.Context, username string) (*types.UserProfile, error) {
	var resp webProfileResponse
	if err := c.get(ctx, "web-profile", url.Values{"username": {username}}, &resp); err != nil {
		return nil, err
	}

	raw := resp.Data.User
	if raw == nil {
		return nil, &NotFoundError{Username: username}
	}

	return &types.UserProfile{
		ID:             raw.ID,
		Username:       raw.Username,
		FullName:       raw.FullName,
		Biography:      raw.Biography,
		ProfilePicURL:  raw.ProfilePicURL,
		ExternalURL:    raw.ExternalURL,
		FollowerCount:  raw.EdgeFollowedBy.Count,
		FollowingCount: raw.EdgeFollow.Count,
		MediaCount:     raw.EdgeOwnerToTimelineMedia.Count,
		IsPrivate:      raw.IsPrivate,
		IsVerified:     raw.IsVerified,
	}, nil
}

// mediaFeedResponse is the provider shape shared by the media listing
// endpoints.
type mediaFeedResponse struct {
	Items  []types.MediaItem `json:"items"`
	Status string            `json:"status"`
}

// getMediaFeed requests one capped page from a media listing endpoint.
// A 2xx payload without the items field yields an empty list with a logged
// warning, since "no posts" is a legitimate state.
func (c *Client) getMediaFeed(ctx context.Context, endpoint string, params url.Values) ([]types.MediaItem, error) {
	var resp mediaFeedResponse
	if err := c.get(ctx, endpoint, params, &resp); err != nil {
		return nil, err
	}
	if resp.Items == nil {
		log.Warn().Str("endpoint", endpoint).Msg("media feed response has no items field")
		return []types.MediaItem{}, nil
	}
	return resp.Items, nil
}

func userPageParams(userID string) url.Values {
	return url.Values{
		"id":    {userID},
		"count": {strconv.Itoa(pageSize)},
	}
}

// GetUserMedia returns one page of the user's feed posts.
func (c *Client) GetUserMedia(ctx context.Context, userID string) ([]types.MediaItem, error) {
	return c.getMediaFeed(ctx, "user-feeds", userPageParams(userID))
}

// GetUserReels returns one page of the user's Reels.
func (c *Client) GetUserReels(ctx context.Context, userID string) ([]types.MediaItem, error) {
	return c.getMediaFeed(ctx, "reels", userPageParams(userID))
}

// GetTaggedMedia returns one page of media the user is tagged in.
func (c *Client) GetTaggedMedia(ctx context.Context, userID string) ([]types.MediaItem, error) {
	return c.getMediaFeed(ctx, "user-tags", userPageParams(userID))
}

// GetMediaByHashtag returns the media feed for a hashtag.
func (c *Client) GetMediaByHashtag(ctx context.Context, tag string) ([]types.MediaItem, error) {
	return c.getMediaFeed(ctx, "tag-feeds", url.Values{"query": {tag}})
}

// SearchHashtags returns hashtag search results for query.
func (c *Client) SearchHashtags(ctx context.Context, query string) ([]types.Hashtag, error) {
	var resp struct {
		Hashtags []types.Hashtag `json:"hashtags"`
	}
	params := url.Values{"query": {query}, "select": {"hashtags"}}
	if err := c.get(ctx, "search", params, &resp); err != nil {
		return nil, err
	}
	if resp.Hashtags == nil {
		return []types.Hashtag{}, nil
	}
	return resp.Hashtags, nil
}

// rawDiscoveredUser is the provider shape for user search entries.
type rawDiscoveredUser struct {
	PK            string `json:"pk"`
	Username      string `json:"username"`
	FullName      string `json:"full_name"`
	ProfilePicURL string `json:"profile_pic_url"`
	FollowerCount int64  `json:"follower_count"`
	IsPrivate     bool   `json:"is_private"`
	IsVerified    bool   `json:"is_verified"`
}

// DiscoverInfluencers searches public profiles matching query. Private
// accounts are filtered here, at the adapter, because they are never
// actionable for any downstream workflow.
func (c *Client) DiscoverInfluencers(ctx context.Context, query string) ([]types.DiscoveredUser, error) {
	var resp struct {
		Users []rawDiscoveredUser `json:"users"`
	}
	params := url.Values{"query": {query}, "select": {"users"}}
	if err := c.get(ctx, "search", params, &resp); err != nil {
		return nil, err
	}

	users := make([]types.DiscoveredUser, 0, len(resp.Users))
	for _, raw := range resp.Users {
		if raw.IsPrivate {
			continue
		}
		users = append(users, types.DiscoveredUser{
			ID:            raw.PK,
			Username:      raw.Username,
			FullName:      raw.FullName,
			ProfilePicURL: raw.ProfilePicURL,
			FollowerCount: raw.FollowerCount,
			IsVerified:    raw.IsVerified,
		})
	}
	return users, nil
}
