// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mbq

import "github.com/sirupsen/logrus"

// Sink receives a notification each time a Sorted queue refuses a record.
//
// The notification is delivered before Add returns the error. It is
// best-effort: a panic inside Unrankable is recovered and discarded, and
// a Sink must not block, since the producer waits for it.
type Sink interface {
	// Unrankable reports the queue label, the refused record and the
	// ranker's error.
	Unrankable(label string, rec any, err error)
}

// SinkFunc adapts an ordinary function to Sink.
type SinkFunc func(label string, rec any, err error)

// Unrankable calls f(label, rec, err).
func (f SinkFunc) Unrankable(label string, rec any, err error) {
	f(label, rec, err)
}

// Discard is a Sink that drops every notification.
var Discard Sink = SinkFunc(func(string, any, error) {})

// LogrusSink returns a Sink that logs each refused record at error level.
//
// The entry carries the queue label in the "queue" field and the record in
// the "record" field.
func LogrusSink(logger logrus.FieldLogger) Sink {
	return SinkFunc(func(label string, rec any, err error) {
		logger.WithFields(logrus.Fields{
			"queue":  label,
			"record": rec,
		}).WithError(err).Error("cannot add item")
	})
}

func defaultSink() Sink {
	return LogrusSink(logrus.StandardLogger())
}

// notify delivers to s and swallows anything the sink throws.
func notify(s Sink, label string, rec any, err error) {
	defer func() { _ = recover() }()
	s.Unrankable(label, rec, err)
}
