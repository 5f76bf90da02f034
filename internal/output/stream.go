package output

import (
	"github.com/temirov/dirtree/internal/tree"
)

// StreamRenderer renders traversal events as they arrive.
type StreamRenderer interface {
	Handle(event tree.Event) error
	Flush() error
}
