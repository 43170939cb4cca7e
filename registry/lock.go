/*
   Copyright 2026 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package registry

import (
	"runtime"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
)

// relock is a goroutine-reentrant mutex.
//
// The registry runs factories while holding its cache lock so that
// construction is single-flight: other goroutines block until the first
// caller finishes, then observe the primary-tier hit. A factory resolving
// further identifiers re-enters the registry on the same goroutine, which a
// plain sync.Mutex would self-deadlock on. relock lets the owning goroutine
// nest acquisitions while excluding all others.
type relock struct {
	mu    sync.Mutex
	owner atomic.Int64
	depth int // touched only by the owner while mu is held
}

func (l *relock) Lock() {
	gid := goroutineID()
	if l.owner.Load() == gid {
		l.depth++
		return
	}
	l.mu.Lock()
	l.owner.Store(gid)
	l.depth = 1
}

func (l *relock) Unlock() {
	if l.depth > 1 {
		l.depth--
		return
	}
	l.depth = 0
	l.owner.Store(0)
	l.mu.Unlock()
}

// goroutineID parses the current goroutine's id from its stack header.
// Goroutine ids start at 1, so 0 is a safe "unowned" sentinel.
func goroutineID() int64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	field := strings.Fields(strings.TrimPrefix(string(buf[:n]), "goroutine "))[0]
	id, _ := strconv.ParseInt(field, 10, 64)
	return id
}
