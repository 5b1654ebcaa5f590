package schema

// CoreMagazineTable represents the 'core.magazine' table
type CoreMagazineTable struct {
	Table            string
	ID               string
	OwnerID          string
	Title            string
	Introduction     string
	Conclusion       string
	Images           string
	Structure        string
	Brief            string
	ModerationStatus string
	Degraded         string
	CreatedAt        string
}

// CoreMagazine is the schema definition for core.magazine
var CoreMagazine = CoreMagazineTable{
	Table:            "core.magazine",
	ID:               "id",
	OwnerID:          "ownerid",
	Title:            "title",
	Introduction:     "introduction",
	Conclusion:       "conclusion",
	Images:           "images",
	Structure:        "structure",
	Brief:            "brief",
	ModerationStatus: "moderationstatus",
	Degraded:         "degraded",
	CreatedAt:        "createdat",
}

// Columns lists every column in insert and full-select order.
func (t CoreMagazineTable) Columns() []string {
	return []string{
		t.ID, t.OwnerID, t.Title, t.Introduction, t.Conclusion, t.Images,
		t.Structure, t.Brief, t.ModerationStatus, t.Degraded, t.CreatedAt,
	}
}
