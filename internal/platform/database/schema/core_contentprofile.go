package schema

// CoreContentProfileTable represents the 'core.contentprofile' table
type CoreContentProfileTable struct {
	Table              string
	ID                 string
	Name               string
	Slug               string
	EditorConfig       string
	MultilingualConfig string
	IsDefault          string
	CreatedAt          string
	UpdatedAt          string
	DeletedAt          string
}

// CoreContentProfile is the schema definition for core.contentprofile
var CoreContentProfile = CoreContentProfileTable{
	Table:              "core.contentprofile",
	ID:                 "id",
	Name:               "name",
	Slug:               "slug",
	EditorConfig:       "editorconfig",
	MultilingualConfig: "multilingualconfig",
	IsDefault:          "isdefault",
	CreatedAt:          "createdat",
	UpdatedAt:          "updatedat",
	DeletedAt:          "deletedat",
}

// Columns returns all standard column names
func (t CoreContentProfileTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.Slug, t.EditorConfig, t.MultilingualConfig,
		t.IsDefault, t.CreatedAt, t.UpdatedAt, t.DeletedAt,
	}
}
