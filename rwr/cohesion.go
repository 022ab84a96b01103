// SPDX-License-Identifier: MIT

package rwr

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/crimenet/dataset"
)

// Cohesion summarises how strongly the criminals of one case reach each other
// under RWR.
type Cohesion struct {
	Case int64

	// PerCriminal maps criminal → average RWR probability it assigns to the
	// other criminals of the case.
	PerCriminal map[int64]float64

	// Skipped lists criminals whose walk could not be computed.
	Skipped []int64

	// Mean is the average of PerCriminal (0 if every walk was skipped).
	Mean float64
}

// CaseCohesion runs one walk per criminal of caseID and averages the mass each
// walk assigns to the other members. A criminal whose walk fails with
// ErrStartVertexNotFound is logged, recorded in Skipped, and the rest of the
// case continues. A walk that fails to converge still contributes its last
// iterate.
//
// Errors: ErrCaseNotFound, ErrSingleParticipant, ErrOptionViolation, ctx errors.
func CaseCohesion(w *Walker, ds *dataset.Dataset, caseID int64, opts ...Option) (*Cohesion, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if ds == nil || !ds.HasCase(caseID) {
		return nil, fmt.Errorf("%w: %d", ErrCaseNotFound, caseID)
	}
	members := ds.CriminalsIn(caseID)
	if len(members) < 2 {
		return nil, fmt.Errorf("%w: case %d", ErrSingleParticipant, caseID)
	}

	out := &Cohesion{Case: caseID, PerCriminal: make(map[int64]float64, len(members))}
	var total float64
	for _, criminal := range members {
		res, err := w.Walk(criminal, opts...)
		switch {
		case errors.Is(err, ErrStartVertexNotFound):
			o.Logger.Warn().Int64("case", caseID).Int64("criminal", criminal).Msg("criminal missing from graph, skipped")
			out.Skipped = append(out.Skipped, criminal)
			continue
		case errors.Is(err, ErrNotConverged):
			o.Logger.Warn().Int64("case", caseID).Int64("criminal", criminal).Err(err).Msg("walk did not converge")
		case err != nil:
			return nil, err
		}

		var sum float64
		for _, other := range members {
			if other != criminal {
				sum += res.Scores[other]
			}
		}
		avg := sum / float64(len(members)-1)
		out.PerCriminal[criminal] = avg
		total += avg
	}
	if len(out.PerCriminal) > 0 {
		out.Mean = total / float64(len(out.PerCriminal))
	}

	return out, nil
}
