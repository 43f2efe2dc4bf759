package yaml_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/fwojciec/ldraw"
	ldyaml "github.com/fwojciec/ldraw/yaml"
	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDocument() *ldraw.Document {
	return &ldraw.Document{
		PartType: "Model",
		Comments: []string{"Car"},
		Subparts: []*ldraw.PartReference{{
			Color:  ldraw.Int(4),
			Matrix: ldraw.Identity,
			PartID: "3001.dat",
		}},
		Parts: map[string]*ldraw.Document{
			"3001.dat": {
				PartType: "Part",
				Tris: []*ldraw.Tri{{
					Color: ldraw.Text("blue"),
					Pos1:  ldraw.Vector{0, 0, 0},
					Pos2:  ldraw.Vector{1, 0, 0},
					Pos3:  ldraw.Vector{0, 1.5, 0},
				}},
			},
		},
	}
}

func TestEncoder_Encode(t *testing.T) {
	t.Parallel()

	t.Run("writes the document graph", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		err := ldyaml.NewEncoder(false).Encode(&buf, testDocument())

		require.NoError(t, err)
		var got map[string]any
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, "Model", got["partType"])
		assert.Equal(t, []any{"Car"}, got["comments"])

		ref := got["subparts"].([]any)[0].(map[string]any)
		assert.Equal(t, "4", fmt.Sprint(ref["color"]))
		assert.Equal(t, "3001.dat", ref["partId"])
		assert.Len(t, ref["matrix"], 16)

		part := got["parts"].(map[string]any)["3001.dat"].(map[string]any)
		assert.Equal(t, "Part", part["partType"])
		tri := part["tris"].([]any)[0].(map[string]any)
		assert.Equal(t, "blue", tri["color"])
		assert.Equal(t, "1.5", fmt.Sprint(tri["pos3"].([]any)[1]))
		assert.NotContains(t, part, "parts")
	})

	t.Run("keeps field order", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		err := ldyaml.NewEncoder(false).Encode(&buf, testDocument())

		require.NoError(t, err)
		output := buf.String()
		assert.Less(t, strings.Index(output, "partType:"), strings.Index(output, "comments:"))
		assert.Less(t, strings.Index(output, "comments:"), strings.Index(output, "subparts:"))
		assert.Less(t, strings.Index(output, "subparts:"), strings.Index(output, "\nparts:\n"))
	})

	t.Run("always writes parts on the root", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		err := ldyaml.NewEncoder(false).Encode(&buf, &ldraw.Document{Comments: []string{"Brick"}})

		require.NoError(t, err)
		var got map[string]any
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
		assert.Contains(t, got, "parts")
		assert.NotContains(t, got, "tris")
	})

	t.Run("uses flow style when minified", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		err := ldyaml.NewEncoder(true).Encode(&buf, testDocument())

		require.NoError(t, err)
		output := strings.TrimSpace(buf.String())
		assert.True(t, strings.HasPrefix(output, "{"), "got %q", output)

		var got map[string]any
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, "Model", got["partType"])
	})

	t.Run("rejects a nil document", func(t *testing.T) {
		t.Parallel()

		err := ldyaml.NewEncoder(false).Encode(&bytes.Buffer{}, nil)

		assert.Equal(t, ldraw.EINVALID, ldraw.ErrorCode(err))
	})
}
