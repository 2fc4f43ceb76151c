//go:build e2e
// +build e2e

package e2e

import (
	"encoding/json"
	"net/http"

	teamModel "github.com/pokewiki/pokewiki/internal/team/model"
)

func (s *E2ETestSuite) decodeTeam(body []byte) teamModel.Team {
	var team teamModel.Team
	s.Require().NoError(json.Unmarshal(body, &team))
	return team
}

func (s *E2ETestSuite) decodeTeams(body []byte) []teamModel.Team {
	var teams []teamModel.Team
	s.Require().NoError(json.Unmarshal(body, &teams))
	return teams
}

func (s *E2ETestSuite) TestCreateListReplaceDelete() {
	resp, body := s.request(http.MethodPost, "/api/teams", "ash", teamModel.CreateTeamRequest{Name: "Gym Battles"})
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	created := s.decodeTeam(body)
	s.Equal("Gym Battles", created.Name)
	s.Equal("ash", created.OwnerID)
	s.Empty(created.Members)

	roster := []teamModel.Member{{
		SourceID:        25,
		Name:            "pikachu",
		Image:           "https://img.example/25.png",
		Types:           []string{"electric"},
		SelectedAbility: "static",
		HeldItem:        "None",
	}}
	resp, body = s.request(http.MethodPut, "/api/teams/"+created.ID, "ash", teamModel.ReplaceMembersRequest{Members: roster})
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	updated := s.decodeTeam(body)
	s.Require().Len(updated.Members, 1)
	s.Equal("pikachu", updated.Members[0].Name)

	// The JSONB roster survives a real write-read cycle verbatim.
	resp, body = s.request(http.MethodGet, "/api/teams", "ash", nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	teams := s.decodeTeams(body)
	s.Require().Len(teams, 1)
	s.Equal(teamModel.Members(roster), teams[0].Members)

	resp, _ = s.request(http.MethodDelete, "/api/teams/"+created.ID, "ash", nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	resp, body = s.request(http.MethodGet, "/api/teams", "ash", nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Empty(s.decodeTeams(body))
}

func (s *E2ETestSuite) TestOwnershipIsEnforcedAcrossUsers() {
	resp, body := s.request(http.MethodPost, "/api/teams", "ash", teamModel.CreateTeamRequest{Name: "Aces"})
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	team := s.decodeTeam(body)

	resp, _ = s.request(http.MethodDelete, "/api/teams/"+team.ID, "gary", nil)
	s.Equal(http.StatusUnauthorized, resp.StatusCode)

	resp, _ = s.request(http.MethodPut, "/api/teams/"+team.ID, "gary",
		teamModel.ReplaceMembersRequest{Members: []teamModel.Member{{SourceID: 1, Name: "bulbasaur"}}})
	s.Equal(http.StatusUnauthorized, resp.StatusCode)

	resp, body = s.request(http.MethodGet, "/api/teams", "ash", nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	teams := s.decodeTeams(body)
	s.Require().Len(teams, 1)
	s.Empty(teams[0].Members)
}

func (s *E2ETestSuite) TestNewestTeamListedFirst() {
	for _, name := range []string{"First", "Second", "Third"} {
		resp, _ := s.request(http.MethodPost, "/api/teams", "ash", teamModel.CreateTeamRequest{Name: name})
		s.Require().Equal(http.StatusOK, resp.StatusCode)
	}

	resp, body := s.request(http.MethodGet, "/api/teams", "ash", nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	teams := s.decodeTeams(body)
	s.Require().Len(teams, 3)
	s.Equal("Third", teams[0].Name)
	s.Equal("Second", teams[1].Name)
	s.Equal("First", teams[2].Name)
}

func (s *E2ETestSuite) TestRosterCapAndSnapshotFill() {
	resp, body := s.request(http.MethodPost, "/api/teams", "ash", map[string]string{})
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	team := s.decodeTeam(body)
	s.Equal(teamModel.DefaultTeamName, team.Name)

	overfull := make([]teamModel.Member, teamModel.MaxMembers+1)
	for i := range overfull {
		overfull[i] = teamModel.Member{SourceID: i + 1, Name: "mon"}
	}
	resp, _ = s.request(http.MethodPut, "/api/teams/"+team.ID, "ash", teamModel.ReplaceMembersRequest{Members: overfull})
	s.Equal(http.StatusBadRequest, resp.StatusCode)

	resp, body = s.request(http.MethodPut, "/api/teams/"+team.ID, "ash",
		teamModel.ReplaceMembersRequest{Members: []teamModel.Member{{SourceID: 143}}})
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	updated := s.decodeTeam(body)
	s.Require().Len(updated.Members, 1)
	s.Equal("snorlax", updated.Members[0].Name)
	s.Equal("immunity", updated.Members[0].SelectedAbility)
	s.Equal("None", updated.Members[0].HeldItem)
}

func (s *E2ETestSuite) TestMissingAndMalformedIDs() {
	resp, _ := s.request(http.MethodDelete, "/api/teams/61b3fc1d-9731-4f18-b267-3f9e0fb4ad13", "ash", nil)
	s.Equal(http.StatusNotFound, resp.StatusCode)

	resp, _ = s.request(http.MethodPut, "/api/teams/not-a-uuid", "ash",
		teamModel.ReplaceMembersRequest{Members: []teamModel.Member{}})
	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *E2ETestSuite) TestUnauthenticatedRequests() {
	resp, _ := s.request(http.MethodGet, "/api/teams", "", nil)
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}
