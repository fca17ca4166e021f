// Package fs abstracts the file system operations used by the local blob
// store, so tests can inject I/O failures with [FaultyFS].
//
// Production code uses [Default]:
//
//	f, err := fs.Default.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
//
// Local file operations are not interruptible, so there is no context
// parameter. Callers check their context between calls.
package fs
