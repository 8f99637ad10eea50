package httpclient

import "net/http"

// SDKClient adapts Client to the Do(*http.Request) interface expected by
// third-party SDKs such as aws-sdk-go-v2.
type SDKClient struct {
	c *Client
}

// SDK returns an SDKClient that routes requests through c.
func (c *Client) SDK() *SDKClient {
	return &SDKClient{c: c}
}

// Do executes req through the full pipeline. When a response exists it is
// returned without an error, even after retries are exhausted on a 5xx, so
// the SDK can decode the service's error body itself.
func (s *SDKClient) Do(req *http.Request) (*http.Response, error) {
	resp, err := s.c.Do(req.Context(), req)
	if resp != nil {
		return resp, nil
	}
	return nil, err
}
