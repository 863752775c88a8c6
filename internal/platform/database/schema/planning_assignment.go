package schema

// PlanningAssignmentTable represents the 'planning.assignment' table
type PlanningAssignmentTable struct {
	Table       string
	ID          string
	CoverageID  string
	AssigneeID  string
	AssignedBy  string
	State       string
	Priority    string
	Note        string
	AssignedAt  string
	StartedAt   string
	CompletedAt string
	CreatedAt   string
	UpdatedAt   string
}

// PlanningAssignment is the schema definition for planning.assignment
var PlanningAssignment = PlanningAssignmentTable{
	Table:       "planning.assignment",
	ID:          "id",
	CoverageID:  "coverageid",
	AssigneeID:  "assigneeid",
	AssignedBy:  "assignedby",
	State:       "state",
	Priority:    "priority",
	Note:        "note",
	AssignedAt:  "assignedat",
	StartedAt:   "startedat",
	CompletedAt: "completedat",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

// Columns returns all standard column names
func (t PlanningAssignmentTable) Columns() []string {
	return []string{
		t.ID, t.CoverageID, t.AssigneeID, t.AssignedBy, t.State, t.Priority,
		t.Note, t.AssignedAt, t.StartedAt, t.CompletedAt, t.CreatedAt, t.UpdatedAt,
	}
}
