// Package workers runs background jobs of a client command side by side.
//
// A [Workers] group starts every [Worker] and stops the rest as soon as one
// of them returns, which is how the copy command ties the countdown view to
// the clipboard cleaner.
package workers

import "context"

// Worker is a background job. Run blocks until the job is done or ctx is
// cancelled.
//
// Example implementation:
//
//	type tick struct{}
//
//	func (tick) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}

// Clipboard is the part of the system clipboard used by [ClipboardCleaner].
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}
