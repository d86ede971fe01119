// Copyright (c) 2015-2017 The btcsuite developers
// Copyright (c) 2019 The MasterCoreCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package netsync

import (
	"sync"
	"time"

	"github.com/btcsuite/btclog"
)

// progressLogInterval is the minimum time between progress log lines.
const progressLogInterval = 10 * time.Second

// headerProgressLogger provides periodic logging for other services in order
// to show users progress of certain "actions" involving some or all current
// headers. Ex: syncing to best chain, indexing all headers, etc.
type headerProgressLogger struct {
	receivedLogHeaders int64
	lastHeaderLogTime  time.Time

	subsystemLogger btclog.Logger
	progressAction  string
	sync.Mutex
}

// newHeaderProgressLogger returns a new header progress logger.
// The progress message is templated as follows:
//
//	{progressAction} {numProcessed} {headers|header} in the last {timePeriod}
//	({height}, {timestamp})
func newHeaderProgressLogger(progressMessage string, logger btclog.Logger) *headerProgressLogger {
	return &headerProgressLogger{
		lastHeaderLogTime: time.Now(),
		progressAction:    progressMessage,
		subsystemLogger:   logger,
	}
}

// LogHeaderHeight logs a new header height as an information message to
// show progress to the user.  In order to prevent spam, it limits logging to
// one message every progressLogInterval with duration and totals included.
func (l *headerProgressLogger) LogHeaderHeight(added int, height int32, timestamp time.Time) {
	l.Lock()
	defer l.Unlock()

	l.receivedLogHeaders += int64(added)

	now := time.Now()
	duration := now.Sub(l.lastHeaderLogTime)
	if duration < progressLogInterval {
		return
	}

	// Truncate the duration to 10s of milliseconds.
	tDuration := duration.Truncate(10 * time.Millisecond)

	// Log information about new header height.
	headerStr := "headers"
	if l.receivedLogHeaders == 1 {
		headerStr = "header"
	}
	l.subsystemLogger.Infof("%s %d %s in the last %s (height %d, %s)",
		l.progressAction, l.receivedLogHeaders, headerStr, tDuration,
		height, timestamp)

	l.receivedLogHeaders = 0
	l.lastHeaderLogTime = now
}
