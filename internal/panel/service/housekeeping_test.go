package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/pandda/internal/panel/service"
	"github.com/aussiebroadwan/pandda/pkg/dialog"
	"github.com/aussiebroadwan/pandda/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func TestHousekeepingSweep(t *testing.T) {
	ctx := context.Background()
	reg := dialog.NewRegistry()

	d := reg.For("u_1").Open(ctx, dialog.Config{Title: "Novo servidor"})
	require.True(t, d.IsOpen())

	hk := service.NewHousekeepingService(reg, slogx.Discard(), time.Hour, time.Hour)
	require.Equal(t, 0, hk.Sweep())
	require.True(t, d.IsOpen())

	hk.IdleTTL = -time.Second
	require.Equal(t, 1, hk.Sweep())
	require.False(t, d.IsOpen())
	require.Equal(t, 0, reg.Len())
}

func TestHousekeepingLifecycle(t *testing.T) {
	hk := service.NewHousekeepingService(dialog.NewRegistry(), slogx.Discard(), 0, 0)
	require.Equal(t, time.Minute, hk.Interval)
	require.Equal(t, 30*time.Minute, hk.IdleTTL)

	hk.Start()
	hk.Stop()
}
