package export

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/todos/internal/model"
)

var sample = []model.Task{
	{ID: 1, Text: "Buy milk"},
	{ID: 2, Done: true, Text: "a|b\\c\nline two"},
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sample, "json"))
	assert.Contains(t, buf.String(), `"text": "Buy milk"`)

	var got []model.Task
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sample, got)
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sample, "yaml"))
	assert.Contains(t, buf.String(), "text: Buy milk")

	var got []model.Task
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sample, got)
}

func TestWrite_EmptyListIsEmptyArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil, "json"))
	assert.Equal(t, "[]\n", buf.String())
}

func TestWrite_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Write(&buf, sample, "xml"))
	assert.Empty(t, buf.String())
}
