package dashsdk

import (
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"
)

// SDKClient is a client for the OpsBoard dashboard API. The session cookies
// live in the HTTP client's jar; the SDK stores and transmits them but never
// reads their contents.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a client with its own cookie jar.
func NewSDKClient(baseURL string) (*SDKClient, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Jar:     jar,
			Timeout: 10 * time.Second,
		},
	}, nil
}

// NewSession creates an uninitialized session bound to this client. Call
// Restore before evaluating any route.
func (c *SDKClient) NewSession() *Session {
	return &Session{client: c, state: StateUninitialized}
}
