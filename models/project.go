package models

// ProjectStatus is the lifecycle stage shown on a project's detail page
type ProjectStatus string

const (
	StatusOngoing   ProjectStatus = "ongoing"
	StatusCompleted ProjectStatus = "completed"
	StatusPlanned   ProjectStatus = "planned"
)

// Valid reports whether s is one of the known statuses
func (s ProjectStatus) Valid() bool {
	switch s {
	case StatusOngoing, StatusCompleted, StatusPlanned:
		return true
	}
	return false
}

// Project represents a single portfolio entry with its display metadata
type Project struct {
	ID          string        `json:"id" db:"id" gorm:"type:text;primaryKey;not null"`
	Position    int           `json:"-" db:"position" gorm:"type:integer;not null;default:0;index:idx_project_position"`
	Title       string        `json:"title" db:"title" gorm:"type:text;not null"`
	Description string        `json:"description" db:"description" gorm:"type:text;not null"`
	Image       string        `json:"image" db:"image" gorm:"type:text;not null"`
	Slug        string        `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex:idx_project_slug"`
	Tags        []Tag         `json:"tags" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
	Category    string        `json:"category,omitempty" db:"category" gorm:"type:text"`
	LiveURL     string        `json:"liveUrl,omitempty" db:"live_url" gorm:"type:text"`
	GithubURL   string        `json:"githubUrl,omitempty" db:"github_url" gorm:"type:text"`
	Duration    string        `json:"duration,omitempty" db:"duration" gorm:"type:text"`
	Team        string        `json:"team,omitempty" db:"team" gorm:"type:text"`
	Year        *int          `json:"year,omitempty" db:"year" gorm:"type:integer"`
	Client      string        `json:"client,omitempty" db:"client" gorm:"type:text"`
	Status      ProjectStatus `json:"status,omitempty" db:"status" gorm:"type:text"`
	Date        string        `json:"date,omitempty" db:"date" gorm:"type:text"`
}

// Clone returns a copy of p that shares no slices or pointers with it
func (p Project) Clone() Project {
	c := p
	if p.Tags != nil {
		c.Tags = make([]Tag, len(p.Tags))
		copy(c.Tags, p.Tags)
	}
	if p.Year != nil {
		year := *p.Year
		c.Year = &year
	}
	return c
}
