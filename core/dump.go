// File: dump.go
// Role: Textual dump for debugging and golden tests.
//
// Format:
//
//	label:created:removed            one line per vertex, ascending label
//	***************************************
//	src-dst:created:removed          one line per edge record, ascending (src,dst)

package core

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// DumpSeparator is the line between the vertex and edge sections of a dump.
const DumpSeparator = "***************************************"

// Dump writes the textual dump of g to w.
func (g *Graph) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, v := range g.vertices.items() {
		bw.WriteString(v.Label)
		writeStamps(bw, v.Created, v.Removed)
	}
	bw.WriteString(DumpSeparator)
	bw.WriteByte('\n')
	for _, e := range g.edges.items() {
		bw.WriteString(e.From)
		bw.WriteByte('-')
		bw.WriteString(e.To)
		writeStamps(bw, e.Created, e.Removed)
	}

	return bw.Flush()
}

// String returns the textual dump.
func (g *Graph) String() string {
	var sb strings.Builder
	_ = g.Dump(&sb) // strings.Builder never fails

	return sb.String()
}

func writeStamps(bw *bufio.Writer, created, removed int64) {
	bw.WriteByte(':')
	bw.WriteString(strconv.FormatInt(created, 10))
	bw.WriteByte(':')
	bw.WriteString(strconv.FormatInt(removed, 10))
	bw.WriteByte('\n')
}
