package store

import "github.com/primalhq/primal/internal/model"

// logCap bounds the activity log; the oldest entry is evicted past this.
const logCap = 100

// logTimeLayout is the display form stored alongside each entry.
const logTimeLayout = "1/2/2006, 3:04:05 PM"

// RecordLog prepends a new activity log entry.
//
// The entry id is the current wall time in milliseconds, bumped when two
// entries land within the same millisecond so ids stay strictly
// monotonic. Entries are immutable once created; when the log exceeds its
// cap the oldest (tail) entry is dropped.
func (s *Store) RecordLog(t model.LogType, action, details string) model.LogEntry {
	now := s.clock.Now()
	id := now.UnixMilli()
	if id <= s.lastLogID {
		id = s.lastLogID + 1
	}
	s.lastLogID = id

	entry := model.LogEntry{
		ID:        id,
		Type:      t,
		Action:    action,
		Details:   details,
		Timestamp: now.Format(logTimeLayout),
	}
	s.state.Logs = append([]model.LogEntry{entry}, s.state.Logs...)
	if len(s.state.Logs) > logCap {
		s.state.Logs = s.state.Logs[:logCap]
	}
	return entry
}
