package model

import internalmodel "github.com/goliatone/go-heartform/internal/model"

// FieldType re-exports the internal FieldType enumeration.
type FieldType = internalmodel.FieldType

const (
	FieldTypeString  = internalmodel.FieldTypeString
	FieldTypeInteger = internalmodel.FieldTypeInteger
	FieldTypeNumber  = internalmodel.FieldTypeNumber
	FieldTypeBoolean = internalmodel.FieldTypeBoolean
)

// InputKind re-exports the internal InputKind enumeration.
type InputKind = internalmodel.InputKind

const (
	InputNumber = internalmodel.InputNumber
	InputSelect = internalmodel.InputSelect
	InputText   = internalmodel.InputText
)

type Option = internalmodel.Option
type Field = internalmodel.Field
type FormModel = internalmodel.FormModel
