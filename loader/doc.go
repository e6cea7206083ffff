// Package loader implements the graph-load boundary of spec §6: a
// line-oriented textual record stream (header, N precinct records, E edge
// records) consumed via the standard library's encoding/csv reader and fed
// into a precinct.PrecinctGraph through its builder methods. The loader
// holds no core-internal state of its own; it is a thin translation layer
// between an io.Reader and PrecinctGraph.AddPrecinct/AddEdge/FinishLoading.
package loader
