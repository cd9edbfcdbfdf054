// Package http implements the REST transport of the credential service.
//
// It wires the chi router, the register/login/lookup handlers and the
// middleware chain (trace id, access logging, per-IP rate limiting and the
// 405 to 404 method check) in front of the service layer.
package http
