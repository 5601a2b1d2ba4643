package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractArray_CleanJSON(t *testing.T) {
	elems, err := ExtractArray(`[{"a":1},{"a":2}]`)
	require.NoError(t, err)
	assert.Len(t, elems, 2)
}

func TestExtractArray_SurroundingProse(t *testing.T) {
	raw := "Sure! Here are your tasks:\n[{\"task_type\":\"meditation\"}]\nLet me know if you need more."
	elems, err := ExtractArray(raw)
	require.NoError(t, err)
	require.Len(t, elems, 1)
}

func TestExtractArray_CodeFences(t *testing.T) {
	raw := "```json\n[{\"task_type\": \"exercise\"}]\n```"
	elems, err := ExtractArray(raw)
	require.NoError(t, err)
	assert.Len(t, elems, 1)
}

func TestExtractArray_TrailingCommas(t *testing.T) {
	raw := `[{"task_type":"meditation","title":"T",},]`
	elems, err := ExtractArray(raw)
	require.NoError(t, err)
	require.Len(t, elems, 1)

	var obj map[string]string
	require.NoError(t, json.Unmarshal(elems[0], &obj))
	assert.Equal(t, "meditation", obj["task_type"])
}

func TestExtractArray_EmbeddedNewlines(t *testing.T) {
	raw := "[\n  {\"title\": \"Walk\n in the park\"}\n]"
	elems, err := ExtractArray(raw)
	require.NoError(t, err)
	require.Len(t, elems, 1)
}

func TestExtractArray_NoArray(t *testing.T) {
	_, err := ExtractArray("I could not generate any tasks, sorry.")
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractArray_CommaInsideStringPreserved(t *testing.T) {
	raw := `[{"title":"Breathe, then rest"}]`
	elems, err := ExtractArray(raw)
	require.NoError(t, err)

	var obj map[string]string
	require.NoError(t, json.Unmarshal(elems[0], &obj))
	assert.Equal(t, "Breathe, then rest", obj["title"])
}

func TestRecoverObjects_SalvagesFromBrokenArray(t *testing.T) {
	raw := `[{"task_type":"meditation","title":"A"}, {"task_type":"exercise","title":"B"} oops {"note":"no key"}`
	objects := RecoverObjects(raw, "task_type")
	require.Len(t, objects, 2)

	var first map[string]string
	require.NoError(t, json.Unmarshal(objects[0], &first))
	assert.Equal(t, "meditation", first["task_type"])
}

func TestRecoverObjects_DiscardsUnparseable(t *testing.T) {
	raw := `{"task_type": broken} {"task_type":"journaling","title":"J"}`
	objects := RecoverObjects(raw, "task_type")
	require.Len(t, objects, 1)
}

func TestRecoverObjects_NoMatches(t *testing.T) {
	assert.Empty(t, RecoverObjects("no json here", "task_type"))
}
