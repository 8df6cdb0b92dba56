package tasks

import (
	"fmt"
	"io"
)

func printList(w io.Writer, l *List) {
	for n, content := range l.All() {
		_, _ = fmt.Fprintf(w, "%d. %s\n", n, content)
	}
}
