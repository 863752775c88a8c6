package schema

// PlanningEventTable represents the 'planning.event' table
type PlanningEventTable struct {
	Table         string
	ID            string
	RecurrenceID  string
	ProfileID     string
	LocationID    string
	Slugline      string
	Name          string
	Definition    string
	State         string
	StartAt       string
	EndAt         string
	TZ            string
	AllDay        string
	NoEndTime     string
	ToBeConfirmed string
	Rule          string
	Translations  string
	CreatedBy     string
	CreatedAt     string
	UpdatedAt     string
	DeletedAt     string
}

// PlanningEvent is the schema definition for planning.event
var PlanningEvent = PlanningEventTable{
	Table:         "planning.event",
	ID:            "id",
	RecurrenceID:  "recurrenceid",
	ProfileID:     "profileid",
	LocationID:    "locationid",
	Slugline:      "slugline",
	Name:          "name",
	Definition:    "definition",
	State:         "state",
	StartAt:       "startat",
	EndAt:         "endat",
	TZ:            "tz",
	AllDay:        "allday",
	NoEndTime:     "noendtime",
	ToBeConfirmed: "tobeconfirmed",
	Rule:          "rule",
	Translations:  "translations",
	CreatedBy:     "createdby",
	CreatedAt:     "createdat",
	UpdatedAt:     "updatedat",
	DeletedAt:     "deletedat",
}

// Columns returns all standard column names
func (t PlanningEventTable) Columns() []string {
	return []string{
		t.ID, t.RecurrenceID, t.ProfileID, t.LocationID, t.Slugline, t.Name,
		t.Definition, t.State, t.StartAt, t.EndAt, t.TZ, t.AllDay, t.NoEndTime,
		t.ToBeConfirmed, t.Rule, t.Translations, t.CreatedBy,
		t.CreatedAt, t.UpdatedAt, t.DeletedAt,
	}
}
