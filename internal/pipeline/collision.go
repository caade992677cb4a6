package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// NameRegistry tracks destination filenames claimed during one batch run.
// A name collides when it already exists on disk in the output directory or
// was reserved earlier in the same run; both cases resolve identically.
// Check-and-reserve is atomic so a parallelized pipeline keeps deterministic
// collision numbering. State is scoped to one run; tests never share it.
type NameRegistry struct {
	mu      sync.Mutex
	dir     string
	claimed map[string]struct{}
}

func NewNameRegistry(dir string) *NameRegistry {
	return &NameRegistry{dir: dir, claimed: make(map[string]struct{})}
}

// Reserve claims and returns the first non-colliding variant of name:
// name itself, otherwise "stem (2).ext", "stem (3).ext", and so on.
func (r *NameRegistry) Reserve(name string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	candidate := name
	for n := 2; r.collides(candidate); n++ {
		candidate = fmt.Sprintf("%s (%d)%s", stem, n, ext)
	}
	r.claimed[candidate] = struct{}{}
	return candidate
}

func (r *NameRegistry) collides(name string) bool {
	if _, taken := r.claimed[name]; taken {
		return true
	}
	_, err := os.Stat(filepath.Join(r.dir, name))
	return err == nil
}
