// Package boundary provides diagnostic-only measures of a district's shape
// complexity, supplementing (never feeding into) the Scorer of package
// score. PerimeterTourLength approximates the length of a closed tour
// through a district's perimeter vertices using the teacher's tsp package's
// Christofides-style approximation, giving a rough "how sprawling is this
// boundary" number for exploratory analysis and test fixtures — spec.md
// itself never asks for this, but SPEC_FULL names it as one of the
// domain-stack additions a complete repository would carry.
package boundary
