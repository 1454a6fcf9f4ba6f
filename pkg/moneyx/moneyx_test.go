package moneyx_test

import (
	"testing"

	"github.com/aussiebroadwan/pandda/pkg/moneyx"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"1.234,56", 1234.56},
		{"39,90", 39.90},
		{"29.9", 29.90},
		{"  199,9 ", 199.90},
		{"1.000.000,00", 1000000},
		{"R$ 49,90", 49.90},
		{"0", 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := moneyx.Parse(tt.in)
			require.NoError(t, err)
			require.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestParseRejects(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		_, err := moneyx.Parse("   ")
		require.ErrorIs(t, err, moneyx.ErrEmpty)
	})

	for _, in := range []string{"abc", "1,2,3", "--5", "1.2.3", ",", "1-2"} {
		t.Run(in, func(t *testing.T) {
			_, err := moneyx.Parse(in)
			require.ErrorIs(t, err, moneyx.ErrMalformed)
		})
	}
}

func TestFormat(t *testing.T) {
	require.Equal(t, "1.234,56", moneyx.Format(1234.56))
	require.Equal(t, "39,90", moneyx.Format(39.9))
	require.Equal(t, "0,00", moneyx.Format(0))
	require.Equal(t, "1.234,50", moneyx.Format(1234.499999))
	require.Equal(t, "R$ 29,90", moneyx.FormatBRL(29.9))
}

func TestSanitizeAndAllowKey(t *testing.T) {
	require.Equal(t, "1.234,56", moneyx.Sanitize("R$ 1.234,56"))
	require.Equal(t, "-10", moneyx.Sanitize("- 10 reais"))

	for _, k := range []string{"0", "9", ",", ".", "Backspace", "Tab", "ArrowLeft", "End"} {
		require.True(t, moneyx.AllowKey(k), k)
	}
	for _, k := range []string{"a", "-", " ", "F5", "Shift"} {
		require.False(t, moneyx.AllowKey(k), k)
	}
}

func TestInput(t *testing.T) {
	t.Run("blank field starts untouched", func(t *testing.T) {
		in := moneyx.NewInput("")
		require.False(t, in.Touched())

		_, err := in.Validate(true)
		require.ErrorIs(t, err, moneyx.ErrUntouched)
	})

	t.Run("focus then type then blur formats", func(t *testing.T) {
		in := moneyx.NewInput("")
		in.Focus()
		in.Type("R$1234,5")
		require.Equal(t, "1234,5", in.Value())

		in.Blur()
		require.Equal(t, "1.234,50", in.Value())

		v, err := in.Validate(true)
		require.NoError(t, err)
		require.InDelta(t, 1234.50, v, 1e-9)
	})

	t.Run("blur clears unparseable text", func(t *testing.T) {
		in := moneyx.NewInput("")
		in.Type("1,2,3")
		in.Blur()
		require.Empty(t, in.Value())

		_, ok := in.NumericValue()
		require.False(t, ok)

		_, err := in.Validate(true)
		require.ErrorIs(t, err, moneyx.ErrEmpty)
	})

	t.Run("paste sanitises and formats", func(t *testing.T) {
		in := moneyx.NewInput("")
		in.Paste("valor: 69.9")
		require.Equal(t, "69,90", in.Value())
		require.True(t, in.Touched())
	})

	t.Run("prefilled field counts as touched", func(t *testing.T) {
		in := moneyx.NewInputFromValue(29.9)
		require.True(t, in.Touched())
		require.Equal(t, "29,90", in.Value())

		v, ok := in.NumericValue()
		require.True(t, ok)
		require.InDelta(t, 29.9, v, 1e-9)
	})
}
