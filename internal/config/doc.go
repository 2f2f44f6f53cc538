// Package config handles loading, validating and persisting the server's
// configuration document. The document lives on disk as JSON with exactly
// three fields (host, port, image_root); a missing document is replaced by
// defaults that are written back before use.
package config
