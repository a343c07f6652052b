package detect

import (
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/celarium/celarium/internal"
)

// NewRetryableHTTPClient returns a new retryable HTTP client with the given
// retryMax and timeout.
func NewRetryableHTTPClient(retryMax int, timeout time.Duration) *http.Client {
	retryableHTTPClient := retryablehttp.NewClient()
	retryableHTTPClient.RetryMax = retryMax
	retryableHTTPClient.HTTPClient.Timeout = timeout
	retryableHTTPClient.Logger = internal.NewLeveledLogrus(log)
	retryableHTTPClient.Backoff = retryablehttp.DefaultBackoff
	retryableHTTPClient.CheckRetry = retryablehttp.DefaultRetryPolicy

	return retryableHTTPClient.StandardClient()
}
