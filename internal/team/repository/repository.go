// Package repository provides the data access layer for the team module.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	teamModel "github.com/pokewiki/pokewiki/internal/team/model"
)

// Repository defines the interface for team data access operations.
type Repository interface {
	// Create inserts a new empty team for the given owner.
	Create(ctx context.Context, ownerID, name string) (*teamModel.Team, error)

	// ListByOwner returns the owner's teams, newest-created first.
	ListByOwner(ctx context.Context, ownerID string) ([]teamModel.Team, error)

	// GetByID finds a team by id.
	GetByID(ctx context.Context, id string) (*teamModel.Team, error)

	// Delete removes a team by id.
	Delete(ctx context.Context, id string) error

	// ReplaceMembers overwrites the team's roster in a single update
	// and returns the updated team.
	ReplaceMembers(ctx context.Context, id string, members teamModel.Members) (*teamModel.Team, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new team repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create inserts a new empty team for the given owner.
func (r *repository) Create(ctx context.Context, ownerID, name string) (*teamModel.Team, error) {
	now := time.Now()
	team := &teamModel.Team{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Name:      name,
		Members:   teamModel.Members{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := r.db.WithContext(ctx).Create(team).Error; err != nil {
		return nil, err
	}

	return team, nil
}

// ListByOwner returns the owner's teams, newest-created first.
func (r *repository) ListByOwner(ctx context.Context, ownerID string) ([]teamModel.Team, error) {
	var teams []teamModel.Team
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&teams).Error
	if err != nil {
		return nil, err
	}

	if teams == nil {
		teams = []teamModel.Team{}
	}
	return teams, nil
}

// GetByID finds a team by id.
func (r *repository) GetByID(ctx context.Context, id string) (*teamModel.Team, error) {
	var team teamModel.Team
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&team).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teamModel.ErrTeamNotFound
		}
		return nil, err
	}

	return &team, nil
}

// Delete removes a team by id.
func (r *repository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&teamModel.Team{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return teamModel.ErrTeamNotFound
	}
	return nil
}

// ReplaceMembers overwrites the team's roster in a single update.
// The database's atomic update-by-id is the only consistency guarantee:
// concurrent replacements race with last-write-wins semantics.
func (r *repository) ReplaceMembers(ctx context.Context, id string, members teamModel.Members) (*teamModel.Team, error) {
	result := r.db.WithContext(ctx).
		Model(&teamModel.Team{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"members":    members,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, teamModel.ErrTeamNotFound
	}

	return r.GetByID(ctx, id)
}
