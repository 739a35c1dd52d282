// Package web serves the prediction form as a server-rendered HTML page. A
// POST runs the submission on the server with a controller scoped to that
// request and re-renders the page with the outcome.
package web
