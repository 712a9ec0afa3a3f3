package source

import (
	"context"
	"fmt"
	"time"
)

// DefaultDemoInterval is the delay between demo fragments.
const DefaultDemoInterval = 150 * time.Millisecond

// demoScript mixes partial lines, bursts, empty writes and bare newlines,
// the shapes a real interpreter's stdout produces.
var demoScript = []string{
	"Python 3.12 (demo)\n",
	">>> for i in range(3): print(i)\n",
	"0\n", "1\n", "2\n",
	">>> ",
	"import time\n",
	"loading",
	".", ".", ".",
	" done\n",
	"",
	"\n",
	"multi\nline\nburst\n",
	"progress: 50%",
	"\rprogress: 100%\n",
	"Traceback (most recent call last):\n  File \"<stdin>\", line 1\nNameError: name 'x' is not defined\n",
}

// Demo emits a canned transcript on a timer, looping Loops times
// (forever when Loops is 0).
type Demo struct {
	Interval time.Duration
	Loops    int
}

// Name implements Source.
func (d *Demo) Name() string { return "demo" }

// Run implements Source.
func (d *Demo) Run(ctx context.Context, w *ForwardingWriter) error {
	interval := d.Interval
	if interval <= 0 {
		interval = DefaultDemoInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for loop := 1; d.Loops == 0 || loop <= d.Loops; loop++ {
		if _, err := w.WriteString(fmt.Sprintf("--- run %d ---\n", loop)); err != nil {
			return err
		}
		for _, fragment := range demoScript {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
			}
			if _, err := w.WriteString(fragment); err != nil {
				return err
			}
		}
	}
	return nil
}
