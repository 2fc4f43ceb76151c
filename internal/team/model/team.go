package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// DefaultTeamName is used when a create request omits the name.
const DefaultTeamName = "My Team"

// MaxMembers is the roster size cap enforced by the service.
const MaxMembers = 6

// NoHeldItem is the sentinel stored when a member holds nothing.
const NoHeldItem = "None"

// Team represents a named, user-owned roster of Pokémon snapshots.
// Matches the teams table schema.
type Team struct {
	ID        string    `gorm:"primaryKey;column:id;type:uuid"                                      json:"id"`
	OwnerID   string    `gorm:"column:owner_id;type:varchar(255);not null;index:idx_teams_owner_id" json:"owner_id"`
	Name      string    `gorm:"column:name;type:varchar(255);not null;default:'My Team'"            json:"name"`
	Members   Members   `gorm:"column:members;type:jsonb;not null;default:'[]'"                     json:"members"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()"           json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;not null;default:now()"           json:"-"`
}

// TableName specifies the table name for GORM.
func (Team) TableName() string {
	return "teams"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (t *Team) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return nil
}

// Member is a snapshot of a catalog Pokémon's display data plus the
// ability and held item chosen at add-time. Snapshots are never re-synced
// against the catalog.
type Member struct {
	SourceID        int      `json:"source_id"`
	Name            string   `json:"name"`
	Image           string   `json:"image"`
	Types           []string `json:"types"`
	SelectedAbility string   `json:"selected_ability"`
	HeldItem        string   `json:"held_item"`
}

// Members is the roster column, stored as a JSONB document.
type Members []Member

// Value implements driver.Valuer for JSONB storage.
func (m Members) Value() (driver.Value, error) {
	if m == nil {
		m = Members{}
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner for JSONB retrieval.
func (m *Members) Scan(value interface{}) error {
	if value == nil {
		*m = Members{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported members column type %T", value)
	}

	if len(data) == 0 {
		*m = Members{}
		return nil
	}
	return json.Unmarshal(data, m)
}
