package persistence

import (
	"time"
)

// MissionModel represents the missions table, one row per mission id.
// Rows are kept after the mission ends; RemovedAtTurn marks the turn it was gone.
type MissionModel struct {
	ID             string    `gorm:"column:id;primaryKey"`
	Realm          string    `gorm:"column:realm;not null;index"`
	Type           string    `gorm:"column:type;not null"`
	Phase          string    `gorm:"column:phase;not null"`
	TargetX        int       `gorm:"column:target_x;not null"`
	TargetY        int       `gorm:"column:target_y;not null"`
	FleetName      string    `gorm:"column:fleet_name;index"`
	PlanetBuilding string    `gorm:"column:planet_building"`
	SunName        string    `gorm:"column:sun_name"`
	TargetPlanet   string    `gorm:"column:target_planet"`
	TargetRealm    string    `gorm:"column:target_realm"`
	ShipType       string    `gorm:"column:ship_type"`
	MissionTime    int       `gorm:"column:mission_time;not null;default:0"`
	Position       int       `gorm:"column:position;not null;default:0"` // index in the realm's list at Turn
	Turn           int       `gorm:"column:turn;not null"`               // last turn the mission was open
	RemovedAtTurn  *int      `gorm:"column:removed_at_turn"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (MissionModel) TableName() string {
	return "missions"
}
