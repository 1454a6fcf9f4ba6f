package cli

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aussiebroadwan/pandda/internal/panel/app"
	"github.com/aussiebroadwan/pandda/pkg/panelsdk"
	"github.com/stretchr/testify/require"
)

type harness struct {
	server  string
	storage string
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	cfg := app.DefaultConfig()
	cfg.Store = app.StoreMemory
	cfg.Timezone = "UTC"
	cfg.LogLevel = "error"

	application, err := app.New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.Close() })

	srv := httptest.NewServer(application.Handler())
	t.Cleanup(srv.Close)

	return &harness{server: srv.URL, storage: filepath.Join(t.TempDir(), "storage.json")}
}

func (h *harness) run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--server", h.server, "--storage", h.storage}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestLoginWhoamiLogout(t *testing.T) {
	h := newHarness(t)

	_, err := h.run(t, "whoami")
	require.ErrorIs(t, err, panelsdk.ErrNotLoggedIn)

	_, err = h.run(t, "login", "admin@pandda.com", "master", "--role", "comum")
	require.Error(t, err)

	out, err := h.run(t, "login", "admin@pandda.com", "master")
	require.NoError(t, err)
	var u panelsdk.CurrentUser
	require.NoError(t, json.Unmarshal([]byte(out), &u))
	require.Equal(t, "master", u.Role)

	out, err = h.run(t, "whoami", "--remote")
	require.NoError(t, err)
	require.Contains(t, out, "admin@pandda.com")

	_, err = h.run(t, "logout")
	require.NoError(t, err)
	_, err = h.run(t, "whoami")
	require.ErrorIs(t, err, panelsdk.ErrNotLoggedIn)
}

func TestThemeSurvivesLogout(t *testing.T) {
	h := newHarness(t)

	out, err := h.run(t, "theme")
	require.NoError(t, err)
	require.Equal(t, "light", strings.TrimSpace(out))

	out, err = h.run(t, "theme", "toggle")
	require.NoError(t, err)
	require.Equal(t, "dark", strings.TrimSpace(out))

	_, err = h.run(t, "theme", "sepia")
	require.Error(t, err)

	_, err = h.run(t, "logout")
	require.NoError(t, err)
	out, err = h.run(t, "theme")
	require.NoError(t, err)
	require.Equal(t, "dark", strings.TrimSpace(out))
}

func TestRecordsCommands(t *testing.T) {
	h := newHarness(t)

	_, err := h.run(t, "clients", "list")
	require.ErrorIs(t, err, panelsdk.ErrNotLoggedIn)

	_, err = h.run(t, "login", "admin@pandda.com", "master")
	require.NoError(t, err)

	out, err := h.run(t, "clients", "list")
	require.NoError(t, err)
	var view struct {
		Rows []struct {
			ID string `json:"id"`
		} `json:"rows"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	require.NotEmpty(t, view.Rows)

	_, err = h.run(t, "clients", "list", "--filter", "amanha")
	require.Error(t, err)

	_, err = h.run(t, "clients", "delete", view.Rows[0].ID)
	require.NoError(t, err)
	_, err = h.run(t, "clients", "delete", view.Rows[0].ID)
	require.ErrorIs(t, err, panelsdk.ErrNotFound)

	out, err = h.run(t, "plans", "list")
	require.NoError(t, err)
	var plans []panelsdk.Plan
	require.NoError(t, json.Unmarshal([]byte(out), &plans))
	require.NotEmpty(t, plans)
}

func TestComumCannotDeleteClients(t *testing.T) {
	h := newHarness(t)

	_, err := h.run(t, "login", "user@pandda.com", "comum", "--role", "comum")
	require.NoError(t, err)

	out, err := h.run(t, "clients", "list")
	require.NoError(t, err)
	require.NotContains(t, out, `"delete"`)
}

func TestMigrateCreatesDatabase(t *testing.T) {
	t.Setenv("PANDDA_STORE", "")
	t.Setenv("PANDDA_DATABASE_FILE", "")
	t.Setenv("LOG_LEVEL", "error")

	dir := t.TempDir()
	db := filepath.Join(dir, "pandda.db")
	cfg := filepath.Join(dir, "pandda.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("store: sqlite\ndatabase_file: "+db+"\n"), 0o600))

	h := &harness{storage: filepath.Join(dir, "storage.json")}
	_, err := h.run(t, "--config", cfg, "migrate")
	require.NoError(t, err)
	require.FileExists(t, db)

	// second run finds the schema current
	_, err = h.run(t, "--config", cfg, "migrate")
	require.NoError(t, err)
}

func TestServeRejectsBadConfig(t *testing.T) {
	t.Setenv("PANDDA_STORE", "redis")

	h := &harness{storage: filepath.Join(t.TempDir(), "storage.json")}
	_, err := h.run(t, "serve")
	require.ErrorContains(t, err, "unknown store")
}
