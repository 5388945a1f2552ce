package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"
)

func TestTrainingRecordImport_ValidJSON(t *testing.T) {
	var v interface{}
	err := json.Unmarshal([]byte(TrainingRecordImport), &v)
	assert.NoError(t, err, "schema should be valid JSON")
}

func TestTrainingRecordImport_LoadsAsSchema(t *testing.T) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(TrainingRecordImport))
	require.NoError(t, err)

	valid := `[{"job":{"title":"Engineer","description":"Build things"},"resume":{"skills":["go"]}}]`
	result, err := schema.Validate(gojsonschema.NewStringLoader(valid))
	require.NoError(t, err)
	assert.True(t, result.Valid())

	invalid := `[{"resume":{}}]`
	result, err = schema.Validate(gojsonschema.NewStringLoader(invalid))
	require.NoError(t, err)
	assert.False(t, result.Valid())
}
