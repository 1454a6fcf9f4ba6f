package panel_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/aussiebroadwan/pandda/pkg/panelsdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for panel end-to-end tests.
 * This includes container setup, session handling, and assertions.
 */

const (
	testImageName = "pandda-panel-test:latest"

	masterEmail    = "admin@pandda.com"
	masterPassword = "master"
	comumEmail     = "user@pandda.com"
	comumPassword  = "comum"
	issuer         = "pandda-e2e"
)

// TestMain builds the Docker image once before all tests and removes it
// after they complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building Pandda Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Pandda Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/pandda/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // image might not exist
}

// setupPanelContainer starts the panel on the sqlite store with the demo
// data set and returns its base URL.
func setupPanelContainer(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"PANDDA_STORE":    "sqlite",
			"PANDDA_SEED":     "true",
			"PANDDA_ISSUER":   issuer,
			"PANDDA_TIMEZONE": "UTC",
			"ENV":             "test",
			"LOG_LEVEL":       "info",
			"LOG_FORMAT":      "json",
		},
		WaitingFor: wait.ForHTTP("/readyz").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// performLogin signs in through an AuthAdapter backed by a temporary
// storage file.
func performLogin(t *testing.T, baseURL, email, password, role string) (*panelsdk.AuthAdapter, *panelsdk.Session) {
	t.Helper()

	ls, err := panelsdk.OpenLocalStorage(t.TempDir() + "/storage.json")
	require.NoError(t, err)

	adapter := &panelsdk.AuthAdapter{Client: panelsdk.NewClient(baseURL), Storage: ls}
	session, err := adapter.Login(t.Context(), email, password, role)
	require.NoError(t, err, "login as %s should succeed", email)
	require.Equal(t, role, session.User().Role)

	return adapter, session
}

func assertHealthy(t *testing.T, health *panelsdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}

// assertAPIError verifies err is an *APIError with the given status.
func assertAPIError(t *testing.T, err error, status int, context string) {
	t.Helper()
	require.Error(t, err, context)
	var apiErr *panelsdk.APIError
	require.True(t, errors.As(err, &apiErr), "%s: expected APIError, got %T", context, err)
	require.Equal(t, status, apiErr.StatusCode, context)
}
