package errors

import "sync"

// Recorder is an ErrorHandler that keeps every report in memory.
// Install it with SetHandler in tests that assert on reported errors.
type Recorder struct {
	mu     sync.Mutex
	errs   []*Error
	panics []*PanicError
}

// HandleError records err.
func (r *Recorder) HandleError(err *Error) {
	r.mu.Lock()
	r.errs = append(r.errs, err)
	r.mu.Unlock()
}

// HandlePanic records err.
func (r *Recorder) HandlePanic(err *PanicError) {
	r.mu.Lock()
	r.panics = append(r.panics, err)
	r.mu.Unlock()
}

// Errors returns a copy of the recorded errors.
func (r *Recorder) Errors() []*Error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*Error(nil), r.errs...)
}

// Panics returns a copy of the recorded panics.
func (r *Recorder) Panics() []*PanicError {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*PanicError(nil), r.panics...)
}

// Install sets r as the global handler and registers a cleanup that restores
// the previous handler. cleanup is usually testing.T.Cleanup.
//
//	rec := &errors.Recorder{}
//	rec.Install(t.Cleanup)
func (r *Recorder) Install(cleanup func(func())) {
	prev := SetHandler(r)
	cleanup(func() { SetHandler(prev) })
}
