// Package api handles incoming HTTP requests and response formatting. It
// adapts the image index and selector to HTTP, translating their errors into
// status codes and safe client messages.
package api
