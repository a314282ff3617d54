package twitter

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dghubble/oauth1"
)

const (
	defaultUploadBaseURL = "https://upload.twitter.com/1.1"
	defaultAPIBaseURL    = "https://api.twitter.com/1.1"
)

// Credentials holds the OAuth1 consumer and access token pair used to sign
// every API call.
type Credentials struct {
	ConsumerKey    string
	ConsumerSecret string
	AccessToken    string
	AccessSecret   string
}

// Options configure a Client. Unset base URLs fall back to the production
// endpoints; an unset HTTPClient is replaced with an OAuth1-signing client.
type Options struct {
	Credentials   Credentials
	UploadBaseURL string
	APIBaseURL    string
	HTTPClient    *http.Client
	Timeout       time.Duration
}

// Client talks to the Twitter v1.1 media and statuses endpoints.
type Client struct {
	httpClient *http.Client
	uploadBase string
	apiBase    string
}

func NewClient(opts Options) *Client {
	uploadBase := strings.TrimRight(opts.UploadBaseURL, "/")
	if uploadBase == "" {
		uploadBase = defaultUploadBaseURL
	}
	apiBase := strings.TrimRight(opts.APIBaseURL, "/")
	if apiBase == "" {
		apiBase = defaultAPIBaseURL
	}
	client := opts.HTTPClient
	if client == nil {
		config := oauth1.NewConfig(opts.Credentials.ConsumerKey, opts.Credentials.ConsumerSecret)
		token := oauth1.NewToken(opts.Credentials.AccessToken, opts.Credentials.AccessSecret)
		client = config.Client(oauth1.NoContext, token)
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		client.Timeout = timeout
	}
	return &Client{httpClient: client, uploadBase: uploadBase, apiBase: apiBase}
}

type mediaUploadResp struct {
	MediaIDString string `json:"media_id_string"`
	Errors        []struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"errors"`
}

// UploadMedia submits one image as base64 media_data and returns the
// platform's opaque media identifier.
func (c *Client) UploadMedia(ctx context.Context, data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.New("twitter: empty media payload")
	}
	form := url.Values{}
	form.Set("media_data", base64.StdEncoding.EncodeToString(data))

	var out mediaUploadResp
	if err := c.postForm(ctx, c.uploadBase+"/media/upload.json", form, &out); err != nil {
		return "", err
	}
	if out.MediaIDString == "" {
		if len(out.Errors) > 0 {
			return "", fmt.Errorf("twitter: media upload rejected: %s (%d)", out.Errors[0].Message, out.Errors[0].Code)
		}
		return "", errors.New("twitter: media upload returned no id")
	}
	return out.MediaIDString, nil
}

// CreatePost publishes one status carrying the given text and referencing
// the media identifiers, comma-joined in the order provided.
func (c *Client) CreatePost(ctx context.Context, text string, mediaIDs []string) error {
	if len(mediaIDs) == 0 {
		return errors.New("twitter: no media ids to attach")
	}
	form := url.Values{}
	form.Set("status", text)
	form.Set("media_ids", strings.Join(mediaIDs, ","))
	return c.postForm(ctx, c.apiBase+"/statuses/update.json", form, nil)
}

func (c *Client) postForm(ctx context.Context, endpoint string, form url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("twitter: http %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
