package integration

import (
	"net/http"
	"os"
	"testing"
	"time"
)

// BaseURL points at a running api server. Override with API_BASE_URL.
var BaseURL = "http://localhost:8080"

var serverUp bool

func TestMain(m *testing.M) {
	if url := os.Getenv("API_BASE_URL"); url != "" {
		BaseURL = url
	}

	client := &http.Client{Timeout: 2 * time.Second}
	for i := 0; i < 5; i++ {
		resp, err := client.Get(BaseURL + "/health")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				serverUp = true
			}
			break
		}
		time.Sleep(time.Second)
	}

	os.Exit(m.Run())
}

// requireServer skips the test when no api server is reachable.
func requireServer(t *testing.T) {
	t.Helper()
	if !serverUp {
		t.Skipf("api server not reachable at %s, skipping integration test", BaseURL)
	}
}
