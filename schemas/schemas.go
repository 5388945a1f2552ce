// Package schemas embeds the JSON Schemas that validate data crossing the
// library boundary.
package schemas

import _ "embed"

// TrainingRecordImport is the schema for training-record import documents.
//
//go:embed training_record.schema.json
var TrainingRecordImport string
