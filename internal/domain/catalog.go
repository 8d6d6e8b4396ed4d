package domain

// Plant is a physical site tickets are reported from.
type Plant struct {
	ID   string
	Name string
}

// Division is a top-level organizational unit.
type Division struct {
	ID   string
	Name string
}

// Area is a working area belonging to a division.
type Area struct {
	ID         string
	Name       string
	DivisionID string
}

// Category is a top-level ticket classification.
type Category struct {
	ID   string
	Name string
}

// Subcategory refines a category. Names may repeat across categories.
type Subcategory struct {
	ID         string
	Name       string
	CategoryID string
}

// Priority is an urgency level; lower Level means more urgent.
type Priority struct {
	ID    string
	Name  string
	Level int
}

// State is a ticket lifecycle state.
type State struct {
	ID   string
	Name string
}

// User is a catalog user tickets can be assigned to.
type User struct {
	ID       string
	Username string
	Email    string
	Role     string
	Active   bool
}

// Snapshot is one immutable load of the master catalogs. It is never
// mutated after construction; a refresh produces a whole new Snapshot.
type Snapshot struct {
	Plants        []Plant
	Divisions     []Division
	Areas         []Area
	Categories    []Category
	Subcategories []Subcategory
	Priorities    []Priority
	States        []State
	Users         []User
}

// AreaDivisionNames is one row of the externally sourced association
// between a user and the area/division they belong to. Names, not ids:
// the source is a directory lookup that predates the catalogs.
type AreaDivisionNames struct {
	Area     string
	Division string
}

// AssociationTable maps a normalized username to its area/division names.
type AssociationTable map[string]AreaDivisionNames
