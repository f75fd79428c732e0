// ABOUTME: Presentation state transition events and a debug-log subscriber
// ABOUTME: One Transition per coordinator state change, tagged with the presentation id

package eventbus

import (
	"fmt"

	"github.com/mauromedda/present-go/internal/log"
	"github.com/mauromedda/present-go/pkg/present"
)

// Transition records one presentation state change.
type Transition struct {
	Presentation string // coordinator id
	Content      string // presented type or screen name
	From, To     present.State
}

func (t Transition) String() string {
	return fmt.Sprintf("%s (%s): %s -> %s", t.Presentation, t.Content, t.From, t.To)
}

// LogTransitions writes every transition at debug level until the returned
// function is called.
func LogTransitions(b *Bus[Transition]) func() {
	return b.Subscribe(func(t Transition) {
		log.Debug("present: %s", t)
	})
}
