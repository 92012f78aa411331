package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Run("should drop the label line and join sequence lines", func(t *testing.T) {
		desc, seq := Normalize(">ITS1 partial\nACTG\nttga\n", true)

		assert.Equal(t, "ITS1 partial", desc)
		assert.Equal(t, "ACTGttga", seq)
	})

	t.Run("should strip both gap symbols when cleaning", func(t *testing.T) {
		_, seq := Normalize("AC-TG..A-\nG.T", true)

		assert.Equal(t, "ACTGAGT", seq)
		assert.True(t, IsClean(seq))
	})

	t.Run("should keep gaps when cleaning is disabled", func(t *testing.T) {
		_, seq := Normalize("AC-TG.A", false)

		assert.Equal(t, "AC-TG.A", seq)
	})

	t.Run("should only use the first label as description", func(t *testing.T) {
		desc, seq := Normalize(">first\r\nAAA\r\n>second\r\nCCC", true)

		assert.Equal(t, "first", desc)
		assert.Equal(t, "AAACCC", seq)
	})

	t.Run("should return an empty description without a label", func(t *testing.T) {
		desc, seq := Normalize("ACGT", true)

		assert.Empty(t, desc)
		assert.Equal(t, "ACGT", seq)
	})
}

func TestClean(t *testing.T) {
	t.Run("should preserve relative order of remaining symbols", func(t *testing.T) {
		in := "a-C.g--T.n"
		out := Clean(in, true)

		assert.Equal(t, "aCgTn", out)
	})

	t.Run("should be a no-op on an already clean sequence", func(t *testing.T) {
		in := "ACGTacgtNN"

		assert.Equal(t, in, Clean(in, true))
		assert.Equal(t, Clean(in, true), Clean(Clean(in, true), true))
	})
}
