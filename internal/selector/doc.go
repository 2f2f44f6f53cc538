// Package selector filters an image index by a token and draws one entry
// uniformly at random from the result.
package selector
