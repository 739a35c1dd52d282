// Package render defines the renderer contract shared by the HTML and terminal
// front ends together with the display mapping from submission state to the
// risk banner.
package render
