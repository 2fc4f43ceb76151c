// Package model provides domain models and DTOs for the team module.
package model

// CreateTeamRequest is the body of POST /api/teams.
// Name is optional; the service falls back to DefaultTeamName.
type CreateTeamRequest struct {
	Name string `json:"name"`
}

// ReplaceMembersRequest is the body of PUT /api/teams/:id.
// The members array is the full desired roster, not a diff: the client
// always sends the final state and the server stores it as given.
type ReplaceMembersRequest struct {
	Members []Member `json:"members" binding:"required"`
}

// DeleteResponse is the body returned after a successful delete.
type DeleteResponse struct {
	Msg string `json:"msg"`
}
