//go:build integration

package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"
)

var (
	sharedContainer    *MongoDBContainer
	sharedContainerErr error
	sharedOnce         sync.Once
)

// GetSharedMongoDB returns the package-wide MongoDB container, starting it
// on first use. Pair with CleanupSharedMongoDB in TestMain.
func GetSharedMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	sharedOnce.Do(func() {
		sharedContainer, sharedContainerErr = SetupMongoDB(ctx)
	})
	return sharedContainer, sharedContainerErr
}

// CleanupSharedMongoDB terminates the shared container.
func CleanupSharedMongoDB(ctx context.Context) error {
	return sharedContainer.Cleanup(ctx)
}

// SetupTestMainWithMongoDB boots the shared container, runs the package's
// tests, and tears the container down. Usage:
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
//	}
func SetupTestMainWithMongoDB(ctx context.Context, m *testing.M) int {
	if _, err := GetSharedMongoDB(ctx); err != nil {
		panic(err)
	}

	code := m.Run()

	if err := CleanupSharedMongoDB(ctx); err != nil {
		// Docker reaps the container eventually; warn and move on.
		fmt.Fprintf(os.Stderr, "warning: cleanup of shared MongoDB container failed: %v\n", err)
	}

	return code
}

// GetSharedContainerURI returns the URI of the shared MongoDB container.
// Panics if the container was never started.
func GetSharedContainerURI() string {
	if sharedContainer == nil {
		panic("shared MongoDB container not initialized - call GetSharedMongoDB first")
	}
	return sharedContainer.URI
}

// SanitizeDBName turns a test name into a valid, unique MongoDB database
// name: path separators become underscores, the result is capped at 50
// characters, and a timestamp suffix keeps parallel runs apart.
func SanitizeDBName(testName string) string {
	sanitized := strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' {
			return '_'
		}
		return r
	}, testName)

	if len(sanitized) > 50 {
		sanitized = sanitized[:50]
	}

	return fmt.Sprintf("%s_%d", sanitized, time.Now().UnixNano()%1000000)
}
