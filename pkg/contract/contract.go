// Package contract embeds the OpenAPI description of the remote prediction
// service. The request schema doubles as the form definition: field order,
// labels, input hints and option labels travel as x-heartform extensions.
package contract

import (
	"embed"
	"io/fs"
)

// FileName is the embedded contract location inside FS.
const FileName = "predict.yaml"

// OperationID identifies the prediction operation inside the contract.
const OperationID = "predictHeartDisease"

//go:embed predict.yaml
var files embed.FS

// FS exposes the embedded contract bundle.
func FS() fs.FS {
	return files
}

// Raw returns the embedded contract bytes.
func Raw() []byte {
	data, err := fs.ReadFile(files, FileName)
	if err != nil {
		return nil
	}
	return data
}
