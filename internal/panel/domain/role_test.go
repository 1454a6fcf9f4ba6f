package domain_test

import (
	"testing"

	"github.com/aussiebroadwan/pandda/internal/panel/domain"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	r, err := domain.ParseRole(" Master ")
	require.NoError(t, err)
	require.Equal(t, domain.RoleMaster, r)

	_, err = domain.ParseRole("admin")
	require.ErrorIs(t, err, domain.ErrUnknownRole)
}

func TestRoleGating(t *testing.T) {
	require.True(t, domain.RoleMaster.CanDelete())
	require.False(t, domain.RoleComum.CanDelete())

	require.Contains(t, domain.RoleMaster.Scopes(), domain.ScopeDelete)
	require.NotContains(t, domain.RoleComum.Scopes(), domain.ScopeDelete)
	require.Empty(t, domain.Role("guest").Scopes())
}

func TestClampValidity(t *testing.T) {
	require.Equal(t, 1, domain.ClampValidity(0))
	require.Equal(t, 6, domain.ClampValidity(6))
	require.Equal(t, 12, domain.ClampValidity(36))
}

func TestTotalConnections(t *testing.T) {
	c := domain.Client{AccessPoints: []domain.AccessPoint{{Connections: 2}, {Connections: 1}}}
	require.Equal(t, 3, c.TotalConnections())
}

func TestNormalizeConnections(t *testing.T) {
	single := domain.App{MultipleAccess: false}
	multi := domain.App{MultipleAccess: true}

	tests := []struct {
		name       string
		app        domain.App
		requested  int
		wantN      int
		wantForced bool
	}{
		{"single keeps one", single, 1, 1, false},
		{"single empty becomes one", single, 0, 1, false},
		{"single overrides three", single, 3, 1, true},
		{"multi keeps three", multi, 3, 3, false},
		{"multi empty becomes one", multi, 0, 1, false},
		{"multi negative becomes one", multi, -2, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, forced := tt.app.NormalizeConnections(tt.requested)
			require.Equal(t, tt.wantN, n)
			require.Equal(t, tt.wantForced, forced)
		})
	}
}
