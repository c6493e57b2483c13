package telemetry

// FormatSpan exposes formatSpan for testing.
var FormatSpan = formatSpan
