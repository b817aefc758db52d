package logging

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// timingSuffix marks timing fields so they sort apart from operation data.
const timingSuffix = "_ms"

// LogData collects the fields and millisecond timings reported when an
// operation finishes.
type LogData struct {
	mu      sync.Mutex
	timings map[string]int64
	fields  logrus.Fields
	logger  *logrus.Logger
}

func NewLogData(logger *logrus.Logger) *LogData {
	return &LogData{
		timings: make(map[string]int64),
		fields:  make(logrus.Fields),
		logger:  logger,
	}
}

// AddTiming starts a timer whose stop func records name, replacing any
// earlier value.
func (l *LogData) AddTiming(name string) func() {
	return l.startTimer(name, false)
}

// AddToExistingTiming starts a timer whose stop func adds to name, so
// repeated file reads within one operation sum up.
func (l *LogData) AddToExistingTiming(name string) func() {
	return l.startTimer(name, true)
}

func (l *LogData) startTimer(name string, accumulate bool) func() {
	start := time.Now()
	return func() {
		elapsed := time.Since(start).Milliseconds()
		l.mu.Lock()
		defer l.mu.Unlock()
		if accumulate {
			elapsed += l.timings[name]
		}
		l.timings[name] = elapsed
	}
}

func (l *LogData) AddData(key string, value interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.fields[key] = value
}

// Log builds an entry carrying every data field plus each timing as
// <name>_ms.
func (l *LogData) Log() *logrus.Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	fields := make(logrus.Fields, len(l.fields)+len(l.timings))
	for key, value := range l.fields {
		fields[key] = value
	}
	for name, ms := range l.timings {
		fields[name+timingSuffix] = ms
	}
	return logrus.NewEntry(l.logger).WithFields(fields)
}
