package domain

import "go.trai.ch/zerr"

var (
	// ErrSpawnFailed is returned when the process could not be started at all.
	ErrSpawnFailed = zerr.New("process could not be spawned")

	// ErrExitWait is returned when collecting the exit status failed for a
	// reason other than the process exiting unsuccessfully.
	ErrExitWait = zerr.New("failed to collect exit status")

	// ErrSinkClosed is returned by sinks that can no longer accept lines.
	ErrSinkClosed = zerr.New("sink is closed")

	// ErrInvalidQuality is returned when the quality level is outside 1..100.
	ErrInvalidQuality = zerr.New("quality out of range")

	// ErrScriptNotConfigured is returned when the configuration names no script.
	ErrScriptNotConfigured = zerr.New("no script configured")

	// ErrRunFailed is returned when the supervised process exited unsuccessfully.
	ErrRunFailed = zerr.New("process exited with failure")
)
