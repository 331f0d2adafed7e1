package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDepend(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		args, err := ParseDepend(nil)
		require.NoError(t, err)
		assert.Equal(t, DefaultItems, args.Items)
	})

	t.Run("explicit items", func(t *testing.T) {
		args, err := ParseDepend([]string{"12"})
		require.NoError(t, err)
		assert.Equal(t, 12, args.Items)
	})

	t.Run("rejects bad values", func(t *testing.T) {
		for _, argv := range [][]string{{"0"}, {"-4"}, {"abc"}, {"3.5"}, {""}} {
			_, err := ParseDepend(argv)
			assert.Error(t, err, "argv=%v", argv)
		}
	})
}

func TestParseOverlap(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		args, err := ParseOverlap(nil)
		require.NoError(t, err)
		assert.Equal(t, DefaultItems, args.Items)
		assert.Equal(t, DefaultVerbosity, args.Verbosity)
	})

	t.Run("explicit arguments", func(t *testing.T) {
		args, err := ParseOverlap([]string{"16", "0"})
		require.NoError(t, err)
		assert.Equal(t, 16, args.Items)
		assert.Equal(t, 0, args.Verbosity)
	})

	t.Run("rejects bad values", func(t *testing.T) {
		cases := [][]string{
			{"0"},
			{"-1"},
			{"x"},
			{"8", "2"},
			{"8", "-1"},
			{"8", "yes"},
		}
		for _, argv := range cases {
			_, err := ParseOverlap(argv)
			assert.Error(t, err, "argv=%v", argv)
		}
	})
}

func TestParseGantt(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		args, err := ParseGantt(nil)
		require.NoError(t, err)
		assert.Equal(t, DefaultItems, args.Items)
		assert.Equal(t, DefaultWidth, args.Width)
		assert.Equal(t, DefaultPrintEvents, args.PrintEvents)
	})

	t.Run("explicit arguments", func(t *testing.T) {
		args, err := ParseGantt([]string{"12", "100", "1"})
		require.NoError(t, err)
		assert.Equal(t, 12, args.Items)
		assert.Equal(t, 100, args.Width)
		assert.Equal(t, 1, args.PrintEvents)
	})

	t.Run("minimum width accepted", func(t *testing.T) {
		args, err := ParseGantt([]string{"8", "40"})
		require.NoError(t, err)
		assert.Equal(t, 40, args.Width)
	})

	t.Run("rejects bad values", func(t *testing.T) {
		cases := [][]string{
			{"0"},
			{"8", "10"},
			{"8", "39"},
			{"8", "80", "2"},
			{"8", "80", "-1"},
			{"8", "eighty"},
			{"nope"},
		}
		for _, argv := range cases {
			_, err := ParseGantt(argv)
			assert.Error(t, err, "argv=%v", argv)
		}
	})
}
