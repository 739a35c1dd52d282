// Package submission owns the submit lifecycle of the prediction form. A
// Controller keeps two mutually exclusive display slots, the last
// classification and the last error message, and resets both at the start of
// every submission.
package submission
