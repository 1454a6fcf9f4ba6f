package dialog_test

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/pandda/pkg/dialog"
	"github.com/stretchr/testify/require"
)

func TestFocusTrap(t *testing.T) {
	ctx := context.Background()
	d := dialog.NewManager().Open(ctx, planConfig(nil))

	ring := []string{dialog.FocusClose, "name", "price", dialog.FocusCancel, dialog.FocusSave}
	require.Equal(t, ring, d.FocusRing(), "disabled fields are skipped")
	require.Equal(t, dialog.FocusClose, d.Focused())

	t.Run("tab walks forward and wraps", func(t *testing.T) {
		for i := 1; i <= len(ring); i++ {
			require.NoError(t, d.Key("", "Tab", false))
			require.Equal(t, ring[i%len(ring)], d.Focused())
		}
	})

	t.Run("shift tab at the first stop wraps to the last", func(t *testing.T) {
		require.Equal(t, dialog.FocusClose, d.Focused())
		require.NoError(t, d.Key("", "Tab", true))
		require.Equal(t, dialog.FocusSave, d.Focused())
	})

	t.Run("tabbing through a currency field touches and formats it", func(t *testing.T) {
		d := dialog.NewManager().Open(ctx, planConfig(nil))
		require.NoError(t, d.Key("", "Tab", false))
		require.NoError(t, d.Key("", "Tab", false))
		require.Equal(t, "price", d.Focused())
		require.NoError(t, d.Dispatch(ctx, dialog.Event{Type: dialog.EventInput, Field: "price", Value: "1234,5"}))
		require.NoError(t, d.Key("", "Tab", false))

		for _, f := range d.Snapshot().Fields {
			if f.Name == "price" {
				require.True(t, f.Touched)
				require.Equal(t, "1.234,50", f.Value)
			}
		}
	})

	t.Run("currency mask rejects letters", func(t *testing.T) {
		require.ErrorIs(t, d.Key("price", "a", false), dialog.ErrKeyRejected)
		require.NoError(t, d.Key("price", "5", false))
		require.NoError(t, d.Key("name", "a", false))
	})
}
