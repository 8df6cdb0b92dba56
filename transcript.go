package tasks

import (
	"encoding/json"

	log "github.com/sirupsen/logrus"
)

// These constants are the possible values for the type property of a transcript event.
const (
	eventAdd    = "add"
	eventRemove = "remove"
	eventExit   = "exit"
)

// event is one line of the transcript. Number and Content are the task's number and content right before
// removal or right after addition; exit events have neither.
type event struct {
	Session string `json:"session"`
	Type    string `json:"type"`
	Number  int    `json:"number,omitempty"`
	Content string `json:"content,omitempty"`
}

// record writes e to the transcript. Failures are logged and otherwise ignored: the transcript is a debugging
// aid and must not stop the session.
func (s *Session) record(e event) {
	e.Session = s.id
	b, err := json.Marshal(e)
	if err != nil {
		s.log.WithFields(log.Fields{
			"op":    e.Type,
			"cause": err,
		}).Warning("Could not encode transcript event")
		return
	}
	b = append(b, '\n')
	if _, err := s.tlog.Write(b); err != nil {
		s.log.WithFields(log.Fields{
			"op":    e.Type,
			"cause": err,
		}).Warning("Could not write transcript")
	}
}
