package metrics

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"proxyconv/internal/parser"
)

// Collector tallies the outcome of one parse batch.
type Collector struct {
	candidates int
	accepted   int

	rejections    map[parser.Reason]int
	totalRejected int

	seen       map[string]int // record key -> first accepted index (1-based)
	duplicates []Duplicate
}

type Duplicate struct {
	Key   string
	First int
	Again int
}

func New() *Collector {
	return &Collector{
		rejections: make(map[parser.Reason]int),
		seen:       make(map[string]int),
	}
}

// FromBatch replays a parsed batch into a fresh collector.
func FromBatch(b *parser.Batch) *Collector {
	c := New()
	c.candidates = b.Candidates
	for _, rec := range b.Records {
		c.RecordAccepted(rec)
	}
	for _, pe := range b.Rejected {
		c.RecordRejection(pe.Reason)
	}
	return c
}

func (c *Collector) RecordAccepted(rec parser.Record) {
	c.accepted++
	key := rec.Key()
	if first, ok := c.seen[key]; ok {
		c.duplicates = append(c.duplicates, Duplicate{Key: key, First: first, Again: c.accepted})
		return
	}
	c.seen[key] = c.accepted
}

func (c *Collector) RecordRejection(reason parser.Reason) {
	c.rejections[reason]++
	c.totalRejected++
}

func (c *Collector) Candidates() int                { return c.candidates }
func (c *Collector) Accepted() int                  { return c.accepted }
func (c *Collector) Rejected() int                  { return c.totalRejected }
func (c *Collector) Duplicates() []Duplicate        { return c.duplicates }
func (c *Collector) Rejections(r parser.Reason) int { return c.rejections[r] }

func (c *Collector) PrintReport(out io.Writer) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "[ PROXY LIST ]\t")
	fmt.Fprintf(w, "  Candidates:\t%d\n", c.candidates)
	fmt.Fprintf(w, "  Accepted:\t%d\n", c.accepted)
	fmt.Fprintf(w, "  Rejected:\t%d\n", c.totalRejected)
	fmt.Fprintln(w, "\t")

	fmt.Fprintln(w, "[ REJECTIONS ]\t")
	if c.totalRejected == 0 {
		fmt.Fprintln(w, "  (none)")
	} else {
		var reasons []string
		for r := range c.rejections {
			reasons = append(reasons, string(r))
		}
		sort.Strings(reasons)
		for _, r := range reasons {
			fmt.Fprintf(w, "  %s:\t%d\n", r, c.rejections[parser.Reason(r)])
		}
	}
	fmt.Fprintln(w, "\t")

	fmt.Fprintln(w, "[ DUPLICATE ENDPOINTS ]\t")
	if len(c.duplicates) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, d := range c.duplicates {
		fmt.Fprintf(w, "  +m%d repeats +m%d:\t%s\n", d.Again, d.First, d.Key)
	}
	w.Flush()
}
