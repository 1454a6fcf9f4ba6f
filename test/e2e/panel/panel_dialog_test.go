package panel_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/aussiebroadwan/pandda/pkg/panelsdk"
	"github.com/stretchr/testify/require"
)

// TestServerDialogSaveFlow opens the server dialog, fails a save, fixes the
// name and saves again.
func TestServerDialogSaveFlow(t *testing.T) {
	baseURL, cleanup := setupPanelContainer(t)
	defer cleanup()

	_, session := performLogin(t, baseURL, masterEmail, masterPassword, "master")
	ctx := t.Context()

	_, err := session.ActiveDialog(ctx)
	require.True(t, errors.Is(err, panelsdk.ErrNoDialog))

	st, err := session.OpenDialog(ctx, "server", "")
	require.NoError(t, err)
	require.True(t, st.Open)

	_, err = session.SaveDialog(ctx)
	assertAPIError(t, err, http.StatusUnprocessableEntity, "empty name")
	var apiErr *panelsdk.APIError
	require.True(t, errors.As(err, &apiErr))
	require.NotNil(t, apiErr.Dialog)
	require.True(t, apiErr.Dialog.Open)
	require.NotEmpty(t, apiErr.Dialog.Error)

	st, err = session.Dispatch(ctx, panelsdk.DialogEvent{Type: "input", Field: "name", Value: "Servidor E2E"})
	require.NoError(t, err)
	require.Empty(t, st.Error)

	saved, err := session.SaveDialog(ctx)
	require.NoError(t, err)
	require.False(t, saved.Dialog.Open)

	servers, err := session.ListServers(ctx)
	require.NoError(t, err)
	var names []string
	for _, s := range servers {
		names = append(names, s.Name)
	}
	require.Contains(t, names, "Servidor E2E")

	_, err = session.ActiveDialog(ctx)
	require.True(t, errors.Is(err, panelsdk.ErrNoDialog))
}

// TestDialogCancelDiscards verifies cancelling leaves no dialog behind.
func TestDialogCancelDiscards(t *testing.T) {
	baseURL, cleanup := setupPanelContainer(t)
	defer cleanup()

	_, session := performLogin(t, baseURL, masterEmail, masterPassword, "master")
	ctx := t.Context()

	_, err := session.OpenDialog(ctx, "plan", "")
	require.NoError(t, err)
	_, err = session.Dispatch(ctx, panelsdk.DialogEvent{Type: "input", Field: "name", Value: "Descartado"})
	require.NoError(t, err)

	require.NoError(t, session.CancelDialog(ctx))
	_, err = session.ActiveDialog(ctx)
	require.True(t, errors.Is(err, panelsdk.ErrNoDialog))

	plans, err := session.ListPlans(ctx)
	require.NoError(t, err)
	for _, p := range plans {
		require.NotEqual(t, "Descartado", p.Name)
	}
}
