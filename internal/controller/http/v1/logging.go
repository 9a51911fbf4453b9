package v1

import (
	"github.com/jtclarkjr/logboard/internal/domain"
	log "github.com/sirupsen/logrus"
)

func logCreated(entry domain.LogEntry) {
	log.WithFields(log.Fields{
		"id":       entry.ID,
		"source":   entry.Source,
		"severity": entry.Severity,
	}).Info("Log entry created")
}

func logMutationError(op, id string, err error) {
	log.WithFields(log.Fields{
		"op":    op,
		"id":    id,
		"error": err,
	}).Error("Mutation failed")
}
