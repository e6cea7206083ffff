package boundary

import (
	"github.com/rakanmcmc/rakan/precinct"
	"github.com/rakanmcmc/rakan/rakanerr"
	"github.com/rakanmcmc/rakan/tsp"
)

// PerimeterTourLength approximates the length of a closed tour visiting
// every perimeter vertex of district k, using pairwise BFS shortest-path
// distances over g's contiguity graph as the tour's metric and the
// teacher's tsp.ApproxTour (Christofides construction) to build the tour.
// Returns 0 for a district with 0 or 1 perimeter vertices, since no tour is
// needed.
func PerimeterTourLength(g *precinct.PrecinctGraph, k int) (float64, error) {
	const op = "boundary.PerimeterTourLength"

	verts := g.DistrictPerimeter(k)
	if len(verts) <= 1 {
		return 0, nil
	}

	dist, err := distanceMatrix(g, verts)
	if err != nil {
		return 0, err
	}

	result, err := tsp.ApproxTour(dist)
	if err != nil {
		return 0, rakanerr.New(rakanerr.Internal, op, err)
	}
	return result.Cost, nil
}

// distanceMatrix computes the |verts|x|verts| shortest-path distance
// matrix over g's static adjacency, one BFS per row. Returns an error if
// any pair is unreachable, since tsp.ApproxTour requires a complete
// metric.
func distanceMatrix(g *precinct.PrecinctGraph, verts []int) ([][]float64, error) {
	const op = "boundary.distanceMatrix"

	n := len(verts)
	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
	}

	for i, start := range verts {
		depth := bfsDepths(g, start)
		for j, dst := range verts {
			if i == j {
				continue
			}
			d, ok := depth[dst]
			if !ok {
				return nil, rakanerr.Newf(rakanerr.InvalidInput, op, "perimeter vertices %d and %d are not mutually reachable", start, dst)
			}
			dist[i][j] = float64(d)
		}
	}
	return dist, nil
}

// bfsDepths runs plain BFS from start over g's full contiguity adjacency,
// disregarding district membership, returning hop-count distance to every
// reachable vertex.
func bfsDepths(g *precinct.PrecinctGraph, start int) map[int]int {
	depth := map[int]int{start: 0}
	queue := []int{start}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, w := range g.NeighborIDs(v) {
			if _, seen := depth[w]; seen {
				continue
			}
			depth[w] = depth[v] + 1
			queue = append(queue, w)
		}
	}
	return depth
}
