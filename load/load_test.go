package load

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"svm"
	"svm/types"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const vectors = `# alpha beta [udc]
0 0
8 0 12   # 沿 100

-3.5 2 24
`

func TestLoadString(t *testing.T) {
	base := types.DefaultRenderParameters()
	list, err := LoadString(vectors, base)
	require.NoError(t, err)

	want := []types.RenderParameters{base, base, base}
	want[1].Vector = types.VoltageVector{Alpha: 8}
	want[1].Udc = 12
	want[2].Vector = types.VoltageVector{Alpha: -3.5, Beta: 2}
	want[2].Udc = 24
	if diff := cmp.Diff(want, list); diff != "" {
		t.Errorf("加载结果不一致 (-want +got):\n%s", diff)
	}
}

func TestLoadErrors(t *testing.T) {
	base := types.DefaultRenderParameters()
	tests := []struct {
		name string
		text string
		line string
	}{
		{"字段过少", "1 2\n3\n", "第 2 行"},
		{"字段过多", "1 2 3 4\n", "第 1 行"},
		{"非法分量", "0 0\n\n1 x\n", "第 3 行"},
		{"非正电压", "1 1 0\n", "第 1 行"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadString(tt.text, base)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.line)
		})
	}
}

func TestLoadFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "vectors.txt")
	require.NoError(t, os.WriteFile(filename, []byte(vectors), 0o644))
	list, err := LoadFile(filename, types.DefaultRenderParameters())
	require.NoError(t, err)
	assert.Len(t, list, 3)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.txt"), types.DefaultRenderParameters())
	assert.Error(t, err)
}

func TestExport(t *testing.T) {
	list, err := LoadString(vectors, types.DefaultRenderParameters())
	require.NoError(t, err)
	results := make([]svm.Result, len(list))
	for i, p := range list {
		results[i] = svm.Compute(p)
	}

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, results))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "#"))
	assert.Equal(t, "0 0 12 1 0.000000 0.000000 1.000000 50 50 50", lines[1])
	fields := strings.Fields(lines[2])
	require.Len(t, fields, 10)
	assert.Equal(t, []string{"8", "0", "12", "1"}, fields[:4])
	assert.Equal(t, []string{"100", "0", "0"}, fields[7:])
}
