package domain

import (
	"strconv"

	"go.trai.ch/zerr"
)

// Invocation describes a single process launch: an executable path and its
// ordered argument list. It is immutable once constructed; accessors return
// copies so callers cannot mutate a shared Invocation.
type Invocation struct {
	path string
	args []string
	env  map[string]string
}

// NewInvocation creates an Invocation for the given executable and arguments.
func NewInvocation(path string, args ...string) Invocation {
	copied := make([]string, len(args))
	copy(copied, args)
	return Invocation{path: path, args: copied}
}

// NewScriptInvocation builds the invocation for the processing script using
// the fixed argument contract: the target path followed by either
// "--lossless" or "--quality <n>". Lossless takes precedence over quality.
func NewScriptInvocation(script, target string, quality int, lossless bool) (Invocation, error) {
	if lossless {
		return NewInvocation(script, target, "--lossless"), nil
	}
	if quality < 1 || quality > 100 {
		return Invocation{}, zerr.With(zerr.Wrap(ErrInvalidQuality, "quality out of range"), "quality", quality)
	}
	return NewInvocation(script, target, "--quality", strconv.Itoa(quality)), nil
}

// WithEnvironment returns a copy of the invocation carrying extra environment
// variables for the child process. The receiver is left unchanged.
func (i Invocation) WithEnvironment(env map[string]string) Invocation {
	copied := make(map[string]string, len(env))
	for k, v := range env {
		copied[k] = v
	}
	i.env = copied
	return i
}

// Path returns the executable path.
func (i Invocation) Path() string {
	return i.path
}

// Args returns a copy of the argument list, excluding the executable itself.
func (i Invocation) Args() []string {
	copied := make([]string, len(i.args))
	copy(copied, i.args)
	return copied
}

// Environment returns a copy of the extra environment for the child process.
func (i Invocation) Environment() map[string]string {
	copied := make(map[string]string, len(i.env))
	for k, v := range i.env {
		copied[k] = v
	}
	return copied
}
