package domain

// CatalogEntry describes one conventional role subdirectory.
type CatalogEntry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ExpectedDirs is the fixed catalog of conventional role subdirectories.
// The description strings are part of the report contract; order is stable
// so rendered output stays deterministic.
var ExpectedDirs = []CatalogEntry{
	{Name: "tasks", Description: "Task files (main.yml required)"},
	{Name: "handlers", Description: "Handler files"},
	{Name: "templates", Description: "Jinja2 templates"},
	{Name: "files", Description: "Static files"},
	{Name: "vars", Description: "Variable files"},
	{Name: "defaults", Description: "Default variables (main.yml recommended)"},
	{Name: "meta", Description: "Role metadata (main.yml for Galaxy)"},
	{Name: "library", Description: "Custom modules"},
	{Name: "module_utils", Description: "Module utilities"},
	{Name: "lookup_plugins", Description: "Custom lookup plugins"},
}
