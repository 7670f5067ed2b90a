// Package server exposes the raylayout pipeline over HTTP.
//
// # Endpoints
//
//	GET  /healthz                  build info and status
//	POST /v1/layout?format=toml    scene in, laid-out tree document out
//	POST /v1/render?format=svg     scene or tree document in, artifact out
//
// /v1/render accepts the same query options as the CLI render command:
// input (toml, json or tree; detected when absent), labels, outlines,
// detailed, scale, background and measurer.
//
// Every response carries an X-Request-ID header, copied from the request
// or generated. Failures are answered with a JSON body of the form
//
//	{"code": "INVALID_OP", "message": "...", "request_id": "..."}
//
// and the status from [errors.HTTPStatus].
//
// The handler is safe for concurrent use; each request lays out its own
// copy of the tree.
package server
