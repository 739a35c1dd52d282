// Package model defines the typed form model consumed by renderers. Builders
// reside in internal/model but return the types defined here. The builder reads
// the request body of an OpenAPI operation and honours the x-heartform
// extensions used by the prediction contract: x-heartform-order fixes field
// order, x-heartform-label and x-heartform-option-labels carry display text,
// x-heartform-input and x-heartform-step hint numeric inputs, and
// x-heartform-submit-label names the submit action.
package model
