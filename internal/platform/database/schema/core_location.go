package schema

// CoreLocationTable represents the 'core.location' table
type CoreLocationTable struct {
	Table     string
	ID        string
	Name      string
	Address   string
	City      string
	Country   string
	Latitude  string
	Longitude string
	TZ        string
	CreatedAt string
	UpdatedAt string
	DeletedAt string
}

// CoreLocation is the schema definition for core.location
var CoreLocation = CoreLocationTable{
	Table:     "core.location",
	ID:        "id",
	Name:      "name",
	Address:   "address",
	City:      "city",
	Country:   "country",
	Latitude:  "latitude",
	Longitude: "longitude",
	TZ:        "tz",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
	DeletedAt: "deletedat",
}

// Columns returns all standard column names
func (t CoreLocationTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.Address, t.City, t.Country, t.Latitude, t.Longitude,
		t.TZ, t.CreatedAt, t.UpdatedAt, t.DeletedAt,
	}
}
