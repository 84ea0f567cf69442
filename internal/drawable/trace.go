package drawable

import (
	"sync"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const traceKeep = 64

// traceRecorder keeps the most recent warning and error lines raylib emitted so a failed
// shader build can report what the driver said.
type traceRecorder struct {
	mu    sync.Mutex
	seq   int
	lines []string
}

var trace = &traceRecorder{}

func (r *traceRecorder) record(level int, msg string) {
	if level < int(rl.LogWarning) {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	r.lines = append(r.lines, msg)
	if len(r.lines) > traceKeep {
		r.lines = r.lines[len(r.lines)-traceKeep:]
	}
}

func (r *traceRecorder) mark() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.seq
}

// since returns the lines recorded after mark that are still kept.
func (r *traceRecorder) since(mark int) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := r.seq - mark
	if n <= 0 {
		return nil
	}
	if n > len(r.lines) {
		n = len(r.lines)
	}
	out := make([]string, n)
	copy(out, r.lines[len(r.lines)-n:])
	return out
}

// InstallTraceLog routes raylib's trace log through forward and keeps the warnings needed
// for ShaderError diagnostics. Call it before the window opens.
func InstallTraceLog(forward func(level int, msg string)) {
	rl.SetTraceLogCallback(func(level int, msg string) {
		trace.record(level, msg)
		if forward != nil {
			forward(level, msg)
		}
	})
}
