package models

// Tag represents a label attached to a project. Names are not unique.
type Tag struct {
	ID        string `json:"id" db:"id" gorm:"type:text;primaryKey;not null"`
	ProjectID string `json:"-" db:"project_id" gorm:"type:text;not null;index:idx_project_tag_project_id"`
	Position  int    `json:"-" db:"position" gorm:"type:integer;not null;default:0"`
	Name      string `json:"name" db:"name" gorm:"type:text;not null"`
}

// TableName keeps the table name used by earlier deployments
func (Tag) TableName() string {
	return "project_tags"
}
