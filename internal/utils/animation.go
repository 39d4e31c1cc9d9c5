package utils

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// SearchingText is shown while waiting for a reply.
const SearchingText = "Searching for the best information..."

var clockFrames = []string{
	"🕛", "🕧", "🕐", "🕜", "🕑", "🕝", "🕒", "🕞", "🕓", "🕟", "🕔", "🕠",
	"🕕", "🕡", "🕖", "🕢", "🕗", "🕣", "🕘", "🕤", "🕙", "🕥", "🕚", "🕦",
}

const frameInterval = time.Second / 10

// StartAnimation draws label with a ticking clock and the elapsed time to out
// until the returned stop func is called. Stop clears the line and returns
// once nothing more will be written to out.
func StartAnimation(out io.Writer, label string) func() {
	t0 := time.Now()
	clearLine := "\r" + strings.Repeat(" ", TermWidth()-1) + "\r"
	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		ticker := time.NewTicker(frameInterval)
		defer ticker.Stop()
		for {
			elapsed := time.Since(t0)
			fmt.Fprintf(out, "%v%v %v %v", clearLine, frame(elapsed), label, elapsed.Truncate(time.Second))
			select {
			case <-ticker.C:
			case <-stop:
				fmt.Fprint(out, clearLine)
				return
			}
		}
	}()
	return func() {
		close(stop)
		<-done
	}
}

func frame(elapsed time.Duration) string {
	return clockFrames[int(elapsed/frameInterval)%len(clockFrames)]
}
