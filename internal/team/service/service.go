// Package service provides the business logic layer for the team module.
package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pokewiki/pokewiki/internal/catalog"
	teamModel "github.com/pokewiki/pokewiki/internal/team/model"
	"github.com/pokewiki/pokewiki/internal/team/repository"
)

// Catalog is the external lookup used to complete member snapshots.
type Catalog interface {
	Pokemon(ctx context.Context, id int) (*catalog.Pokemon, error)
}

// Service defines the interface for team business logic operations.
// Every operation is keyed on the caller identity resolved by the auth
// middleware; ownership is checked on each one, not just on writes.
type Service interface {
	// List returns the caller's teams, newest-created first.
	List(ctx context.Context, callerID string) ([]teamModel.Team, error)

	// Create creates a new empty team owned by the caller.
	Create(ctx context.Context, callerID, name string) (*teamModel.Team, error)

	// Delete removes the caller's team.
	Delete(ctx context.Context, callerID, teamID string) error

	// ReplaceMembers overwrites the team's entire roster with the given
	// members and returns the updated team.
	ReplaceMembers(ctx context.Context, callerID, teamID string, members []teamModel.Member) (*teamModel.Team, error)
}

type service struct {
	repo    repository.Repository
	catalog Catalog
	logger  *zap.SugaredLogger
}

// New creates a new team service instance.
func New(repo repository.Repository, cat Catalog, logger *zap.SugaredLogger) Service {
	return &service{
		repo:    repo,
		catalog: cat,
		logger:  logger,
	}
}

// List returns the caller's teams, newest-created first.
func (s *service) List(ctx context.Context, callerID string) ([]teamModel.Team, error) {
	return s.repo.ListByOwner(ctx, callerID)
}

// Create creates a new empty team owned by the caller. The name falls
// back to the default placeholder when omitted.
func (s *service) Create(ctx context.Context, callerID, name string) (*teamModel.Team, error) {
	if name == "" {
		name = teamModel.DefaultTeamName
	}
	return s.repo.Create(ctx, callerID, name)
}

// Delete removes the caller's team. A missing team and a team owned by
// someone else are reported as distinct errors; the existence leak is a
// documented property of the API, not an accident.
func (s *service) Delete(ctx context.Context, callerID, teamID string) error {
	if _, err := s.getOwned(ctx, callerID, teamID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, teamID)
}

// ReplaceMembers overwrites the team's entire roster. The request carries
// the full desired state computed by the client; the server enforces only
// the roster size cap and does not deduplicate entries. Members that
// arrive without display data are snapshotted from the catalog.
func (s *service) ReplaceMembers(ctx context.Context, callerID, teamID string, members []teamModel.Member) (*teamModel.Team, error) {
	if _, err := s.getOwned(ctx, callerID, teamID); err != nil {
		return nil, err
	}

	if len(members) > teamModel.MaxMembers {
		return nil, teamModel.ErrRosterFull
	}

	roster := make(teamModel.Members, len(members))
	for i, m := range members {
		filled, err := s.completeSnapshot(ctx, m)
		if err != nil {
			s.logger.Errorw("catalog snapshot failed", "source_id", m.SourceID, "error", err)
			return nil, err
		}
		roster[i] = filled
	}

	return s.repo.ReplaceMembers(ctx, teamID, roster)
}

// completeSnapshot fills display fields from the catalog for members that
// arrive with only a source id. Members sent with a name are stored
// exactly as given.
func (s *service) completeSnapshot(ctx context.Context, m teamModel.Member) (teamModel.Member, error) {
	if m.HeldItem == "" {
		m.HeldItem = teamModel.NoHeldItem
	}
	if m.Name != "" {
		return m, nil
	}

	p, err := s.catalog.Pokemon(ctx, m.SourceID)
	if err != nil {
		return teamModel.Member{}, err
	}

	m.Name = p.Name
	m.Image = p.Image
	m.Types = p.Types
	if m.SelectedAbility == "" && len(p.Abilities) > 0 {
		m.SelectedAbility = p.Abilities[0]
	}
	return m, nil
}

// getOwned loads the team and verifies the caller owns it. Unparseable
// ids are reported as not found rather than surfacing a database error.
func (s *service) getOwned(ctx context.Context, callerID, teamID string) (*teamModel.Team, error) {
	if _, err := uuid.Parse(teamID); err != nil {
		return nil, teamModel.ErrTeamNotFound
	}

	team, err := s.repo.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team.OwnerID != callerID {
		return nil, teamModel.ErrNotTeamOwner
	}
	return team, nil
}
