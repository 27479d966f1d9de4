// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mbq

import (
	"code.hybscloud.com/iox"
	"github.com/pkg/errors"
)

var (
	// ErrUnrankable is matched by every error a Sorted queue returns from Add.
	//
	//	if err := q.Add(rec); mbq.IsUnrankable(err) {
	//	    // fix the record, or route it elsewhere
	//	}
	ErrUnrankable = errors.New("mbq: unrankable record")

	// ErrNotInteger is the cause reported when an Evaluator produces a value
	// that is not an integer or does not fit in an int.
	ErrNotInteger = errors.New("mbq: rank is not an integer")
)

// ErrWouldBlock is returned by Poll when the queue is empty.
//
// Get and Peek never return it; they report an empty queue with a false
// second result. ErrWouldBlock exists for consumers written against iox
// semantic errors, where an empty source is a control flow signal rather
// than a failure.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
var ErrWouldBlock = iox.ErrWouldBlock

// RankError reports a record that a Sorted queue refused because its
// ranker failed. The record was not inserted.
type RankError struct {
	Label string // Label of the queue that refused the record
	Cause error  // Error returned by the ranker
}

func (e *RankError) Error() string {
	return "mbq: " + e.Label + ": unrankable record: " + e.Cause.Error()
}

// Unwrap returns the ranker's error.
func (e *RankError) Unwrap() error {
	return e.Cause
}

// Is makes every RankError match ErrUnrankable.
func (e *RankError) Is(target error) bool {
	return target == ErrUnrankable
}

// IsUnrankable reports whether err is a refused Add on a Sorted queue.
func IsUnrankable(err error) bool {
	return errors.Is(err, ErrUnrankable)
}

// IsWouldBlock reports whether err indicates the operation would block.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
