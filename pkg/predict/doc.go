// Package predict talks to the remote heart disease classifier. The service
// accepts the thirteen form measurements as a flat JSON object of strings and
// answers with {"prediction": 0|1, "probability": float}. Failures surface as
// *ServerError when the body carries an "error" string and *TransportError
// otherwise; Message turns either into the text shown to the user.
package predict
