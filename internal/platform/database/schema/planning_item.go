package schema

// PlanningItemTable represents the 'planning.item' table
type PlanningItemTable struct {
	Table        string
	ID           string
	EventID      string
	ProfileID    string
	Slugline     string
	Description  string
	State        string
	Urgency      string
	Translations string
	CreatedBy    string
	CreatedAt    string
	UpdatedAt    string
	DeletedAt    string
}

// PlanningItem is the schema definition for planning.item
var PlanningItem = PlanningItemTable{
	Table:        "planning.item",
	ID:           "id",
	EventID:      "eventid",
	ProfileID:    "profileid",
	Slugline:     "slugline",
	Description:  "description",
	State:        "state",
	Urgency:      "urgency",
	Translations: "translations",
	CreatedBy:    "createdby",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
	DeletedAt:    "deletedat",
}

// Columns returns all standard column names
func (t PlanningItemTable) Columns() []string {
	return []string{
		t.ID, t.EventID, t.ProfileID, t.Slugline, t.Description, t.State,
		t.Urgency, t.Translations, t.CreatedBy, t.CreatedAt, t.UpdatedAt, t.DeletedAt,
	}
}
