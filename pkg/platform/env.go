package platform

import "os"

// EnvInfo answers environment queries on behalf of components, so tests
// can supply deterministic values instead of reading live process state.
type EnvInfo interface {
	// ProcessID returns the operating-system identifier of the current process.
	ProcessID() int
}

// SystemEnv reads the live process environment.
type SystemEnv struct{}

// ProcessID returns os.Getpid().
func (SystemEnv) ProcessID() int {
	return os.Getpid()
}

// EnvFunc adapts a function to EnvInfo.
type EnvFunc func() int

// ProcessID calls f.
func (f EnvFunc) ProcessID() int {
	return f()
}
