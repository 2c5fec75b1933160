package roster

// Header names as they appear in the roster CSV. Lookup is by name, never by
// position, so column order in the file doesn't matter.
const (
	ColBarcode      = "Barcode Number"
	ColTeam         = "Team"
	ColFirstName    = "First Name"
	ColLastName     = "Last Name"
	ColJerseyNumber = "Jersey Number"
	ColCoach        = "Coach"
	ColCellPhone    = "Cell Phone"
	ColEmail        = "Email"
	ColProducts     = "Products"
	ColPackages     = "Packages"
)

// editableColumns are the only cells a save may rewrite. Everything else in
// the row stays byte-identical.
var editableColumns = []string{
	ColFirstName,
	ColLastName,
	ColCellPhone,
	ColEmail,
	ColCoach,
	ColProducts,
	ColPackages,
}

// knownColumns are promoted to Player fields on load; all other columns land
// in Player.Extra.
var knownColumns = map[string]bool{
	ColBarcode:      true,
	ColTeam:         true,
	ColFirstName:    true,
	ColLastName:     true,
	ColJerseyNumber: true,
	ColCoach:        true,
	ColCellPhone:    true,
	ColEmail:        true,
	ColProducts:     true,
	ColPackages:     true,
}
