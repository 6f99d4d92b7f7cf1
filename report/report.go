// Package report renders collection results as human readable text.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/guyvdb/dragonstore/dragon"
	"github.com/guyvdb/dragonstore/store"
)

const EmptyMessage = "Collection is empty."

type Reporter struct {
	w io.Writer
}

func New(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

func (r *Reporter) line(format string, args ...any) {
	fmt.Fprintf(r.w, format+"\n", args...)
}

func (r *Reporter) NotFound(id store.Id) {
	r.line("Element with id %s does not exist", id)
}

func (r *Reporter) Count(color dragon.Color, n int) {
	r.line("Number of elements with color %s: %d", color, n)
}

// Records prints one record per line.
func (r *Reporter) Records(dragons []*dragon.Dragon) {
	for _, d := range dragons {
		r.line("%s", d)
	}
}

// Show is Records with a notice for an empty collection.
func (r *Reporter) Show(dragons []*dragon.Dragon) {
	if len(dragons) == 0 {
		r.line(EmptyMessage)
		return
	}
	r.Records(dragons)
}

func (r *Reporter) Info(info dragon.Info) {
	r.line("Type: %s", info.TypeName)
	r.line("Created: %s", info.CreatedAt.Format(time.RFC3339))
	r.line("Elements: %d", info.Count)
	r.line("Location: %s", info.Location)
}

func (r *Reporter) Caves(caves []dragon.Cave) {
	for _, c := range caves {
		r.line("%s", c)
	}
}

func (r *Reporter) Added(d *dragon.Dragon) {
	r.line("Added element with id %s", d.GetId())
}

func (r *Reporter) Removed(n int) {
	r.line("Removed %d element(s)", n)
}

func (r *Reporter) Saved(target string) {
	r.line("Collection saved to %s", target)
}

func (r *Reporter) Done() {
	r.line("Done.")
}
