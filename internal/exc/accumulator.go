// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package exc

import (
	"maps"
	"slices"
	"sync"
)

// Reporter collects exceptions while files are lexed and parsed. A syntax
// error does not end a compile: the parser recovers, the error is reported
// here, and the caller shows the whole set once every file is done. Only
// codes outside the non-fatal set stop the work early.
type Reporter interface {
	// Report records e. A non-nil return means e is fatal and the caller
	// should stop.
	Report(e Exception) Exception
	// Reported returns everything recorded so far ordered by Compare.
	// Exceptions at the same position keep the order they were reported in.
	Reported() []Exception
}

// NewReporter returns a Reporter that is safe for concurrent use. The codes
// in nonFatal are added to the syntax codes that are never fatal.
func NewReporter(nonFatal []string) Reporter {
	nf := maps.Clone(defaultNonFatal)
	for _, code := range nonFatal {
		nf[code] = true
	}
	return &collector{nonFatal: nf}
}

type collector struct {
	mu       sync.Mutex
	reported []Exception
	nonFatal map[string]bool
}

func (self *collector) Report(e Exception) Exception {
	self.mu.Lock()
	defer self.mu.Unlock()
	self.reported = append(self.reported, e)
	if self.nonFatal[e.Code()] {
		return nil
	}
	return e
}

func (self *collector) Reported() []Exception {
	self.mu.Lock()
	result := slices.Clone(self.reported)
	self.mu.Unlock()
	slices.SortStableFunc(result, Compare)
	return result
}
