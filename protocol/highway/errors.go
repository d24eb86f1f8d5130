// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package highway

import "errors"

// Precondition-violation sentinels. These never surface as returned
// errors: the core panics with one of these wrapped via fmt.Errorf when
// a caller breaks the contract documented on the offending function.
// Absence of a result (no decision, empty tally) is reported through a
// plain (value, bool) return instead, never through these.
var (
	// ErrNoForkChoice is raised by NewVote when a wire vote doesn't
	// introduce a new block and no fork choice is available to fall
	// back on. Callers must guarantee a non-empty panorama implies a
	// non-empty fork choice before calling NewVote.
	ErrNoForkChoice = errors.New("highway: vote has no values and no fork choice is present")

	// ErrValidatorIndexRange is raised by Panorama.Get/Update when idx
	// is outside [0, N).
	ErrValidatorIndexRange = errors.New("highway: validator index out of range")

	// ErrGenesisParent is raised by Tally.Parents when asked to fold a
	// tally that lives at height 0 down one more level; genesis has no
	// parent.
	ErrGenesisParent = errors.New("highway: parent requested at height 0")
)
