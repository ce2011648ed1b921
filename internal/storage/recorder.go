package storage

import (
	"github.com/charmbracelet/log"
)

// Recorder writes the history of one running scene. Writes are best effort:
// failures are logged and the scene keeps running. A Recorder without a
// store does nothing.
type Recorder struct {
	store     *Store
	logger    *log.Logger
	sessionID string
}

// NewRecorder creates a recorder. store may be nil.
func NewRecorder(store *Store, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.Default()
	}
	return &Recorder{store: store, logger: logger}
}

// SessionID returns the ID of the running session, empty if none.
func (r *Recorder) SessionID() string {
	return r.sessionID
}

// Start opens a new session. It does not close the running one; call Finish
// first when replacing it.
func (r *Recorder) Start(sceneID string, seed int64) {
	if r.store == nil {
		return
	}
	id, err := r.store.StartSession(sceneID, seed)
	if err != nil {
		r.logger.Warn("could not start session", "scene", sceneID, "error", err)
		r.sessionID = ""
		return
	}
	r.sessionID = id
	r.logger.Debug("session started", "id", id, "scene", sceneID, "seed", seed)
}

// Lightning records one strike of the running session.
func (r *Recorder) Lightning(simSeconds, boltAngle float64) {
	if r.store == nil || r.sessionID == "" {
		return
	}
	if _, err := r.store.RecordLightning(r.sessionID, simSeconds, boltAngle); err != nil {
		r.logger.Warn("could not record lightning", "session", r.sessionID, "error", err)
	}
}

// Finish stores the final counters and closes the running session.
func (r *Recorder) Finish(frames int, simSeconds float64, strikes int) {
	if r.store == nil || r.sessionID == "" {
		return
	}
	if err := r.store.FinishSession(r.sessionID, frames, simSeconds, strikes); err != nil {
		r.logger.Warn("could not finish session", "session", r.sessionID, "error", err)
	} else {
		r.logger.Debug("session finished", "id", r.sessionID, "frames", frames, "strikes", strikes)
	}
	r.sessionID = ""
}
