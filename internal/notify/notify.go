// Package notify is the outbound notification boundary. Handler outcomes
// surface to users as toasts; how they are delivered (MQTT topic the
// console subscribes to, or just the server log) is an implementation
// detail behind the Notifier interface.
package notify

import (
	log "github.com/sirupsen/logrus"
)

// Kind classifies a toast.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

// Notifier delivers toast messages to the console.
type Notifier interface {
	Toast(message string, kind Kind)
}

// LogNotifier writes toasts to the server log. Used when no broker is
// configured.
type LogNotifier struct{}

// Toast logs the message at a level matching its kind.
func (LogNotifier) Toast(message string, kind Kind) {
	entry := log.WithField("kind", string(kind))
	if kind == KindError {
		entry.Warn(message)
		return
	}
	entry.Info(message)
}
