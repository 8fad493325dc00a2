package integration_test

import (
	"os"
	"sync"
	"testing"

	"jobboard_backend/test/helpers"
)

var (
	globalTestServer *helpers.TestServer
	serverOnce       sync.Once
)

// GetTestServer returns the shared test server, creating it on first use.
func GetTestServer(t *testing.T) *helpers.TestServer {
	serverOnce.Do(func() {
		// DATABASE_URL switches config loading to env mode; the value is
		// unused because the helpers open an in-memory sqlite database.
		os.Setenv("DATABASE_URL", "file::memory:?cache=shared")
		os.Setenv("SERVER_ENV", "test")
		os.Setenv("JWT_SECRET", "integration_test_secret_12345")
		// Unreachable on purpose; the feed endpoint must degrade, not fail.
		os.Setenv("FEED_URL", "http://127.0.0.1:1/api/remote-jobs")
		os.Setenv("FEED_TIMEOUT_SECONDS", "1")

		globalTestServer = helpers.NewTestServer(t)
	})
	return globalTestServer
}

func TestMain(m *testing.M) {
	code := m.Run()

	if globalTestServer != nil {
		globalTestServer.Close()
	}

	os.Exit(code)
}
