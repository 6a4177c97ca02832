package domain

import (
	"context"
	"time"
)

// Skill levels
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
	LevelExpert       = "expert"
)

type Skill struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	Name       string    `json:"name" validate:"required"`
	Level      string    `json:"level" validate:"required,oneof=beginner intermediate advanced expert"`
	Category   string    `json:"category"`
	IsInDemand bool      `json:"isInDemand"`
	CreatedAt  time.Time `json:"createdAt"`
}

// DemandSkill is an entry of the fixed in-demand skills reference list.
type DemandSkill struct {
	Name        string `json:"name"`
	DemandLevel int    `json:"demandLevel"`
	GrowthRate  int    `json:"growthRate"`
	AvgSalary   int    `json:"avgSalary"`
}

type SkillRepository interface {
	// Upsert inserts the skill or, when the user already holds a skill
	// with the same name (case-insensitive), leaves the stored record in
	// place. Returns the stored record and whether it was created.
	Upsert(ctx context.Context, skill *Skill) (*Skill, bool, error)
	GetByUserID(ctx context.Context, userID string) ([]Skill, error)
	// GetInDemand returns in-demand skills across all users.
	GetInDemand(ctx context.Context) ([]Skill, error)
}

// SkillOverview is the payload of the skills listing endpoint.
type SkillOverview struct {
	UserSkills        []Skill       `json:"userSkills"`
	DemandSkills      []DemandSkill `json:"demandSkills"`
	TotalSkills       int           `json:"totalSkills"`
	DemandSkillsCount int           `json:"demandSkillsCount"`
}

type SkillUsecase interface {
	Overview(ctx context.Context) (*SkillOverview, error)
}
