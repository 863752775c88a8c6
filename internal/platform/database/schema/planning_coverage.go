package schema

// PlanningCoverageTable represents the 'planning.coverage' table
type PlanningCoverageTable struct {
	Table       string
	ID          string
	ItemID      string
	ContentType string
	Status      string
	Slugline    string
	Note        string
	ScheduledAt string
	CreatedAt   string
	UpdatedAt   string
	DeletedAt   string
}

// PlanningCoverage is the schema definition for planning.coverage
var PlanningCoverage = PlanningCoverageTable{
	Table:       "planning.coverage",
	ID:          "id",
	ItemID:      "itemid",
	ContentType: "contenttype",
	Status:      "status",
	Slugline:    "slugline",
	Note:        "note",
	ScheduledAt: "scheduledat",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
	DeletedAt:   "deletedat",
}

// Columns returns all standard column names
func (t PlanningCoverageTable) Columns() []string {
	return []string{
		t.ID, t.ItemID, t.ContentType, t.Status, t.Slugline, t.Note,
		t.ScheduledAt, t.CreatedAt, t.UpdatedAt, t.DeletedAt,
	}
}
