package domain

// DrainStats counts what happened on the two drain tasks during a run.
// Non-fatal conditions (read errors, sink delivery failures) are tolerated
// but must stay observable; they surface here.
type DrainStats struct {
	StdoutLines int `json:"stdout_lines,omitzero"`
	StderrLines int `json:"stderr_lines,omitzero"`
	ReadErrors  int `json:"read_errors,omitzero"`
	SinkErrors  int `json:"sink_errors,omitzero"`
}

// ExitOutcome is the final result of a supervised run. It is only
// observable after both drain tasks have finished and the process has been
// waited on.
//
// When the child terminated on a signal, Code is -1 and Signal carries the
// signal name. When the process could not be spawned at all, Spawned is
// false and the remaining fields are zero.
type ExitOutcome struct {
	Spawned bool       `json:"spawned"`
	Code    int        `json:"code"`
	Signal  string     `json:"signal,omitzero"`
	Stats   DrainStats `json:"stats,omitzero"`
}

// Success reports whether the process was spawned and exited cleanly.
func (o ExitOutcome) Success() bool {
	return o.Spawned && o.Code == 0 && o.Signal == ""
}
