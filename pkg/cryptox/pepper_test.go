package cryptox

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPepper(t *testing.T) {
	prev := pepperFile
	t.Cleanup(func() { SetPepperPath(prev) })

	t.Run("persists to file and reloads", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "pepper")
		SetPepperPath(path)

		first := GetPepper()
		require.NotEmpty(t, first)

		b, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Equal(t, first, string(b))

		SetPepperPath(path)
		require.Equal(t, first, GetPepper())
	})

	t.Run("empty path stays in memory", func(t *testing.T) {
		SetPepperPath("")
		p := GetPepper()
		require.NotEmpty(t, p)
		require.Equal(t, p, GetPepper())
	})
}
