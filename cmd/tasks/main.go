package main

import (
	"errors"
	"flag"
	"os"

	"github.com/nicolagi/tasks"
	log "github.com/sirupsen/logrus"
)

const exitUsage = 2

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(exitUsage)
	}
	if cfg.debug {
		log.SetLevel(log.DebugLevel)
	}

	session := mustCreateSession(cfg)
	if err := session.Run(); err != nil {
		_ = session.Close()
		log.WithFields(log.Fields{
			"session": session.ID(),
			"cause":   err,
		}).Fatal("Session aborted")
	}
	if err := session.Close(); err != nil {
		log.WithField("cause", err).Warning("Could not close transcript")
	}
}

func mustCreateSession(cfg *config) *tasks.Session {
	var opts []tasks.SessionOption
	if cfg.transcript != "" {
		opts = append(opts, tasks.WithTranscript(cfg.transcript))
	}
	session, err := tasks.NewSession(os.Stdin, os.Stdout, opts...)
	if err != nil {
		log.WithFields(log.Fields{
			"transcript": cfg.transcript,
			"cause":      err,
		}).Fatal("Could not create session")
	}
	return session
}
