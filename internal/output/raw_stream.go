package output

import (
	"bufio"
	"io"

	"github.com/spf13/afero"

	"github.com/temirov/dirtree/internal/tree"
)

type rawStreamRenderer struct {
	writer *bufio.Writer
}

// NewRawStreamRenderer writes one line per event to stdout. Lines are buffered
// until Flush.
func NewRawStreamRenderer(stdout io.Writer) StreamRenderer {
	return &rawStreamRenderer{writer: bufio.NewWriter(stdout)}
}

func (renderer *rawStreamRenderer) Handle(event tree.Event) error {
	if _, err := renderer.writer.WriteString(FormatLine(event)); err != nil {
		return err
	}
	return renderer.writer.WriteByte('\n')
}

func (renderer *rawStreamRenderer) Flush() error {
	return renderer.writer.Flush()
}

// RenderTree streams the tree rooted at options.Root into writer. Lines written
// before a traversal failure are flushed and stay visible.
func RenderTree(fileSystem afero.Fs, options tree.Options, writer io.Writer) (err error) {
	renderer := NewRawStreamRenderer(writer)
	defer func() {
		if flushErr := renderer.Flush(); flushErr != nil && err == nil {
			err = flushErr
		}
	}()
	return tree.Stream(fileSystem, options, renderer.Handle)
}

// RenderDocument writes the header, an opening separator, the tree and a
// closing separator. When the traversal fails the closing separator is omitted.
func RenderDocument(fileSystem afero.Fs, options tree.Options, writer io.Writer) error {
	if _, err := io.WriteString(writer, HeaderLine(options.IgnoreNames)+"\n\n"+SeparatorLine()+"\n"); err != nil {
		return err
	}
	if err := RenderTree(fileSystem, options, writer); err != nil {
		return err
	}
	_, err := io.WriteString(writer, SeparatorLine()+"\n")
	return err
}
