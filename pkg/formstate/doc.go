// Package formstate holds the in-memory mapping from form field name to its
// current string value. Values stay plain text; no coercion or range checks
// happen here.
package formstate
