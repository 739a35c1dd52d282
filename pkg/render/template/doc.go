// Package template defines the template engine contract used by the HTML
// renderer.
package template
