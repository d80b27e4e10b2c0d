package driver

import "time"

// Stage describes a per-file pipeline phase.
type Stage string

const (
	// StageRead loads and normalizes the file.
	StageRead Stage = "read"
	// StageUnformat runs the core rewrite (or the cache lookup).
	StageUnformat Stage = "unformat"
	// StageVerify re-parses the output.
	StageVerify Stage = "verify"
	// StageWrite writes the result back to disk.
	StageWrite Stage = "write"
	// StageFinish is the last event of a successful file; Elapsed is the total.
	StageFinish Stage = "finish"
)

// Status captures progress state within a stage.
type Status string

const (
	// StatusQueued indicates the file is waiting for a worker.
	StatusQueued Status = "queued"
	// StatusWorking indicates the stage is running.
	StatusWorking Status = "working"
	// StatusDone indicates the stage finished.
	StatusDone Status = "done"
	// StatusCached indicates the result came from the disk cache.
	StatusCached Status = "cached"
	// StatusError indicates the stage failed; Err is set.
	StatusError Status = "error"
)

// Event reports progress for a file.
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// ProgressSink consumes progress events. Implementations must be safe for
// concurrent use: events arrive from every worker.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

func emit(sink ProgressSink, evt Event) {
	if sink == nil {
		return
	}
	sink.OnEvent(evt)
}
