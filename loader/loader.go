package loader

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/rakanmcmc/rakan/precinct"
	"github.com/rakanmcmc/rakan/rakanerr"
)

// LoadGraph reads the record stream of spec §6 from r and builds a fresh
// precinct.PrecinctGraph from it. The stream is comma-separated, one record
// per line:
//
//	N,K,S           - header: precinct count, district count, declared state population
//	county,m,M      - N precinct records, in id order 0..N-1
//	u,v             - E edge records, one pair of precinct ids per line
//
// The edge record count is implicit: LoadGraph consumes edge records until
// r is exhausted. FinishLoading is called before returning, so a caller
// receives a graph already in state Loaded (or the error FinishLoading
// produced).
func LoadGraph(r io.Reader) (*precinct.PrecinctGraph, error) {
	const op = "loader.LoadGraph"

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, rakanerr.New(rakanerr.InvalidInput, op, err)
	}
	n, k, s, err := parseHeader(header)
	if err != nil {
		return nil, rakanerr.New(rakanerr.InvalidInput, op, err)
	}

	g, err := precinct.New(n, k, precinct.WithDeclaredPopulation(s))
	if err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		rec, err := cr.Read()
		if err != nil {
			return nil, rakanerr.New(rakanerr.InvalidInput, op, err)
		}
		county, minority, majority, err := parsePrecinctRecord(rec)
		if err != nil {
			return nil, rakanerr.New(rakanerr.InvalidInput, op, err)
		}
		if _, err := g.AddPrecinct(county, minority, majority); err != nil {
			return nil, err
		}
	}

	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, rakanerr.New(rakanerr.InvalidInput, op, err)
		}
		u, v, err := parseEdgeRecord(rec)
		if err != nil {
			return nil, rakanerr.New(rakanerr.InvalidInput, op, err)
		}
		if err := g.AddEdge(u, v); err != nil {
			return nil, err
		}
	}

	if err := g.FinishLoading(); err != nil {
		return nil, err
	}
	return g, nil
}

func parseHeader(rec []string) (n, k, s int, err error) {
	if len(rec) != 3 {
		return 0, 0, 0, rakanerr.Newf(rakanerr.InvalidInput, "loader.parseHeader", "header must have 3 fields (N,K,S), got %d", len(rec))
	}
	if n, err = strconv.Atoi(rec[0]); err != nil {
		return 0, 0, 0, err
	}
	if k, err = strconv.Atoi(rec[1]); err != nil {
		return 0, 0, 0, err
	}
	if s, err = strconv.Atoi(rec[2]); err != nil {
		return 0, 0, 0, err
	}
	return n, k, s, nil
}

func parsePrecinctRecord(rec []string) (county, minority, majority int, err error) {
	if len(rec) != 3 {
		return 0, 0, 0, rakanerr.Newf(rakanerr.InvalidInput, "loader.parsePrecinctRecord", "precinct record must have 3 fields, got %d", len(rec))
	}
	if county, err = strconv.Atoi(rec[0]); err != nil {
		return 0, 0, 0, err
	}
	if minority, err = strconv.Atoi(rec[1]); err != nil {
		return 0, 0, 0, err
	}
	if majority, err = strconv.Atoi(rec[2]); err != nil {
		return 0, 0, 0, err
	}
	return county, minority, majority, nil
}

func parseEdgeRecord(rec []string) (u, v int, err error) {
	if len(rec) != 2 {
		return 0, 0, rakanerr.Newf(rakanerr.InvalidInput, "loader.parseEdgeRecord", "edge record must have 2 fields, got %d", len(rec))
	}
	if u, err = strconv.Atoi(rec[0]); err != nil {
		return 0, 0, err
	}
	if v, err = strconv.Atoi(rec[1]); err != nil {
		return 0, 0, err
	}
	return u, v, nil
}
