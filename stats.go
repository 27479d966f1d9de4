// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mbq

import "code.hybscloud.com/atomix"

// Stats is a point-in-time snapshot of a queue's lifetime totals.
//
// Added - Removed equals Size() whenever no operation is in flight.
type Stats struct {
	Added    uint64 // Successful Add calls
	Removed  uint64 // Get calls that returned a record
	Rejected uint64 // Add calls refused (Sorted only)
}

// counters can be read without taking the owning queue's lock.
type counters struct {
	added    atomix.Uint64
	removed  atomix.Uint64
	rejected atomix.Uint64
}

func (c *counters) snapshot() Stats {
	return Stats{
		Added:    c.added.LoadAcquire(),
		Removed:  c.removed.LoadAcquire(),
		Rejected: c.rejected.LoadAcquire(),
	}
}
