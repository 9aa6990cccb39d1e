package ctdf

// DataSource records where a Line was loaded from.
type DataSource struct {
	Provider string `groups:"internal"` // eg. catalog, mongodb
	Dataset  string `groups:"internal"`
}
