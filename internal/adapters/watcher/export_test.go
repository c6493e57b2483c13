package watcher

// IsChange exposes isChange for testing.
var IsChange = isChange

// FileHash exposes fileHash for testing.
var FileHash = fileHash
