// Package audio defines the audible alert requested by shots at launch.
// Speaker output lives in audio/tone so that terminals only depend on the
// interface.
package audio

// Alerter produces an audible alert. Implementations must not block.
type Alerter interface {
	Beep()
}
