// Package gallery builds the immutable index of servable images from a root
// directory and reads selected images back from disk.
//
// The index is built once at startup. Files added or removed afterwards are
// not seen until the process restarts.
package gallery
