package domain

// Config holds the resolved runner configuration: which script to supervise
// and the default conversion settings applied when the caller does not
// override them.
type Config struct {
	Script          string
	DefaultQuality  int
	DefaultLossless bool
	Environment     map[string]string
}
