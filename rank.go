// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mbq

import (
	"math"

	"github.com/pkg/errors"
)

// Ranker maps a record to its rank. Lower ranks are dequeued first.
//
// A Sorted queue calls Rank exactly once per Add, outside its lock, so a
// Ranker may be slow but must be safe for concurrent use when the queue
// has more than one producer.
type Ranker[T any] interface {
	Rank(rec T) (int, error)
}

// RankFunc adapts an ordinary function to Ranker.
type RankFunc[T any] func(rec T) (int, error)

// Rank calls f(rec).
func (f RankFunc[T]) Rank(rec T) (int, error) {
	return f(rec)
}

// Evaluator computes an untyped value from a record, typically by running
// a configured expression against it.
type Evaluator[T any] interface {
	Evaluate(rec T) (any, error)
}

// EvaluatorFunc adapts an ordinary function to Evaluator.
type EvaluatorFunc[T any] func(rec T) (any, error)

// Evaluate calls f(rec).
func (f EvaluatorFunc[T]) Evaluate(rec T) (any, error) {
	return f(rec)
}

// EvaluatorRanker ranks records with an Evaluator.
//
// Any Go integer type is accepted as a rank. A result of another type, or
// an integer that does not fit in int, fails with an error wrapping
// ErrNotInteger.
//
// Example:
//
//	expr := mbq.EvaluatorFunc[Message](func(m Message) (any, error) {
//	    return m.Headers["priority"], nil
//	})
//	q := mbq.NewSorted[Message](mbq.EvaluatorRanker[Message](expr))
func EvaluatorRanker[T any](e Evaluator[T]) Ranker[T] {
	return RankFunc[T](func(rec T) (int, error) {
		v, err := e.Evaluate(rec)
		if err != nil {
			return 0, err
		}
		return toRank(v)
	})
}

// Prioritier is implemented by records that carry their own priority.
type Prioritier interface {
	Priority() int
}

// PriorityRanker ranks records by their Priority method. It never fails.
func PriorityRanker[T Prioritier]() Ranker[T] {
	return RankFunc[T](func(rec T) (int, error) {
		return rec.Priority(), nil
	})
}

func toRank(v any) (int, error) {
	switch x := v.(type) {
	case int:
		return x, nil
	case int8:
		return int(x), nil
	case int16:
		return int(x), nil
	case int32:
		return int(x), nil
	case int64:
		if x < math.MinInt || x > math.MaxInt {
			return 0, errors.Wrapf(ErrNotInteger, "%d overflows int", x)
		}
		return int(x), nil
	case uint:
		if x > math.MaxInt {
			return 0, errors.Wrapf(ErrNotInteger, "%d overflows int", x)
		}
		return int(x), nil
	case uint8:
		return int(x), nil
	case uint16:
		return int(x), nil
	case uint32:
		if uint64(x) > math.MaxInt {
			return 0, errors.Wrapf(ErrNotInteger, "%d overflows int", x)
		}
		return int(x), nil
	case uint64:
		if x > math.MaxInt {
			return 0, errors.Wrapf(ErrNotInteger, "%d overflows int", x)
		}
		return int(x), nil
	}
	return 0, errors.Wrapf(ErrNotInteger, "evaluated to %T", v)
}
