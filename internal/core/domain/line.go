package domain

// StreamSource identifies which output stream of the child process a line
// was read from.
type StreamSource string

const (
	// SourceStdout marks a line read from the child's standard output.
	SourceStdout StreamSource = "stdout"
	// SourceStderr marks a line read from the child's standard error.
	SourceStderr StreamSource = "stderr"
)

// OutputLine is a single line produced by a supervised process. It is handed
// to the sink once and then discarded; no log buffer is retained.
//
// Malformed is set when the raw bytes were not valid UTF-8. The text is then
// the lossy decoding of the original bytes rather than being dropped.
type OutputLine struct {
	Source    StreamSource
	Text      string
	Malformed bool
}
