package asmfmt_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mipsfmt/pkg/asmfmt"
)

// Golden files pair each testdata/*.s input with the exact canonical
// output in *.s.golden. Regenerate by hand when the layout policy
// changes; the files double as end-to-end documentation.
func TestGolden(t *testing.T) {
	t.Parallel()

	inputs, err := filepath.Glob(filepath.Join("testdata", "*.s"))
	require.NoError(t, err)
	require.NotEmpty(t, inputs, "no golden inputs found")

	for _, input := range inputs {
		t.Run(filepath.Base(input), func(t *testing.T) {
			t.Parallel()

			source, err := os.ReadFile(input)
			require.NoError(t, err)

			golden, err := os.ReadFile(input + ".golden")
			require.NoError(t, err)

			got, err := asmfmt.Format(string(source))
			require.NoError(t, err)
			require.Equal(t, string(golden), got)

			// The canonical form is a fixed point.
			again, err := asmfmt.Format(got)
			require.NoError(t, err)
			require.Equal(t, got, again)
		})
	}
}
