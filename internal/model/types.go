package model

// FieldType mirrors the JSON schema type declared for a field. Every field of
// the prediction form travels as a string on the wire.
type FieldType string

const (
	FieldTypeString  FieldType = "string"
	FieldTypeInteger FieldType = "integer"
	FieldTypeNumber  FieldType = "number"
	FieldTypeBoolean FieldType = "boolean"
)

// InputKind selects the control a renderer should emit for a field.
type InputKind string

const (
	// InputNumber is a free numeric entry. Browsers treat it as a hint only.
	InputNumber InputKind = "number"
	// InputSelect is a single choice from Field.Options.
	InputSelect InputKind = "select"
	// InputText is the fallback for fields without hints.
	InputText InputKind = "text"
)

// Option is one selectable value of an enumerated field.
type Option struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// Field models an individual input inside the form. Struct fields are
// annotated so renderers and the CLI can serialise them directly.
type Field struct {
	Name        string            `json:"name" yaml:"name"`
	Type        FieldType         `json:"type" yaml:"type"`
	Input       InputKind         `json:"input" yaml:"input"`
	Required    bool              `json:"required" yaml:"required"`
	Label       string            `json:"label,omitempty" yaml:"label,omitempty"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	Step        string            `json:"step,omitempty" yaml:"step,omitempty"`
	Options     []Option          `json:"options,omitempty" yaml:"options,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// OptionLabel resolves the display label for value, falling back to the value
// itself when the field has no matching option.
func (f Field) OptionLabel(value string) string {
	for _, option := range f.Options {
		if option.Value == value {
			return option.Label
		}
	}
	return value
}

// OptionValues returns the raw option values in declaration order.
func (f Field) OptionValues() []string {
	if len(f.Options) == 0 {
		return nil
	}
	out := make([]string, 0, len(f.Options))
	for _, option := range f.Options {
		out = append(out, option.Value)
	}
	return out
}

// FormModel is the top-level representation renderers consume.
type FormModel struct {
	OperationID string            `json:"operationId" yaml:"operationId"`
	Endpoint    string            `json:"endpoint" yaml:"endpoint"`
	Method      string            `json:"method" yaml:"method"`
	Title       string            `json:"title,omitempty" yaml:"title,omitempty"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	SubmitLabel string            `json:"submitLabel,omitempty" yaml:"submitLabel,omitempty"`
	Fields      []Field           `json:"fields" yaml:"fields"`
	Metadata    map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// FieldNames returns the field names in form order.
func (f FormModel) FieldNames() []string {
	names := make([]string, 0, len(f.Fields))
	for _, field := range f.Fields {
		names = append(names, field.Name)
	}
	return names
}

// Field looks up a field by name.
func (f FormModel) Field(name string) (Field, bool) {
	for _, field := range f.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}
