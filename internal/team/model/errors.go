package model

import "errors"

var (
	// ErrTeamNotFound indicates that the requested team does not exist.
	ErrTeamNotFound = errors.New("team not found")
	// ErrNotTeamOwner indicates that the caller does not own the team.
	ErrNotTeamOwner = errors.New("caller is not the team owner")
	// ErrRosterFull indicates that the replacement roster exceeds MaxMembers.
	ErrRosterFull = errors.New("team roster exceeds the member limit")
)
