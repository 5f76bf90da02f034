// Package tree walks a directory hierarchy top-down and streams one event per
// directory and per file, pruning ignored directory names before descending.
package tree

import (
	"fmt"
	"strings"
)

// ErrorPolicy selects how unreadable directories below the root are handled.
type ErrorPolicy string

const (
	// ErrorPolicyAbort stops the traversal at the first unreadable directory.
	ErrorPolicyAbort ErrorPolicy = "abort"
	// ErrorPolicySkip reports an unreadable directory through Options.Warn and continues with its siblings.
	ErrorPolicySkip ErrorPolicy = "skip"
)

// Order selects how entries within a directory are sequenced.
type Order string

const (
	// OrderSorted emits names in lexicographic order.
	OrderSorted Order = "sorted"
	// OrderNative emits names in the order the directory listing yields them.
	OrderNative Order = "native"
)

const (
	invalidErrorPolicyFormat = "invalid error policy %q (expected %s or %s)"
	invalidOrderFormat       = "invalid order %q (expected %s or %s)"
)

// Options configures a single traversal.
type Options struct {
	// Root is the directory to render. It is never filtered, even if its basename is ignored.
	Root string
	// IgnoreNames holds plain directory basenames excluded anywhere below the root.
	IgnoreNames []string
	ErrorPolicy ErrorPolicy
	Order       Order
	// Warn receives directories skipped under ErrorPolicySkip.
	Warn func(path string, err error)
}

// ParseErrorPolicy converts user input into an ErrorPolicy. Empty input selects ErrorPolicyAbort.
func ParseErrorPolicy(value string) (ErrorPolicy, error) {
	switch ErrorPolicy(strings.ToLower(strings.TrimSpace(value))) {
	case "", ErrorPolicyAbort:
		return ErrorPolicyAbort, nil
	case ErrorPolicySkip:
		return ErrorPolicySkip, nil
	default:
		return "", fmt.Errorf(invalidErrorPolicyFormat, value, ErrorPolicyAbort, ErrorPolicySkip)
	}
}

// ParseOrder converts user input into an Order. Empty input selects OrderSorted.
func ParseOrder(value string) (Order, error) {
	switch Order(strings.ToLower(strings.TrimSpace(value))) {
	case "", OrderSorted:
		return OrderSorted, nil
	case OrderNative:
		return OrderNative, nil
	default:
		return "", fmt.Errorf(invalidOrderFormat, value, OrderSorted, OrderNative)
	}
}

func (options Options) ignoreSet() map[string]struct{} {
	ignored := make(map[string]struct{}, len(options.IgnoreNames))
	for _, name := range options.IgnoreNames {
		if name == "" {
			continue
		}
		ignored[name] = struct{}{}
	}
	return ignored
}
