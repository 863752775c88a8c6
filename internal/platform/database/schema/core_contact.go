package schema

// CoreContactTable represents the 'core.contact' table
type CoreContactTable struct {
	Table        string
	ID           string
	FirstName    string
	LastName     string
	Organisation string
	JobTitle     string
	Email        string
	Phone        string
	Notes        string
	IsPublic     string
	CreatedAt    string
	UpdatedAt    string
	DeletedAt    string
}

// CoreContact is the schema definition for core.contact
var CoreContact = CoreContactTable{
	Table:        "core.contact",
	ID:           "id",
	FirstName:    "firstname",
	LastName:     "lastname",
	Organisation: "organisation",
	JobTitle:     "jobtitle",
	Email:        "email",
	Phone:        "phone",
	Notes:        "notes",
	IsPublic:     "ispublic",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
	DeletedAt:    "deletedat",
}

// Columns returns all standard column names
func (t CoreContactTable) Columns() []string {
	return []string{
		t.ID, t.FirstName, t.LastName, t.Organisation, t.JobTitle, t.Email,
		t.Phone, t.Notes, t.IsPublic, t.CreatedAt, t.UpdatedAt, t.DeletedAt,
	}
}
