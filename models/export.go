package models

// ExportFormatKind discriminates the supported vault export formats.
type ExportFormatKind int

const (
	// ExportFormatCSV exports items as comma-separated values.
	// CSV has no schema for anything but login and secure note items.
	ExportFormatCSV ExportFormatKind = iota

	// ExportFormatJSON exports the full vault as plaintext JSON.
	ExportFormatJSON

	// ExportFormatEncryptedJSON exports the vault as JSON sealed with a
	// key derived from a user-supplied password.
	ExportFormatEncryptedJSON
)

// ExportFormat is the variant describing how the vault should be serialized.
// The zero value is the CSV format.
type ExportFormat struct {
	Kind ExportFormatKind

	// Password is the file password for ExportFormatEncryptedJSON.
	// Unused by the other formats.
	Password string
}

// CSVExport returns the CSV export format.
func CSVExport() ExportFormat { return ExportFormat{Kind: ExportFormatCSV} }

// JSONExport returns the plaintext JSON export format.
func JSONExport() ExportFormat { return ExportFormat{Kind: ExportFormatJSON} }

// EncryptedJSONExport returns the encrypted JSON export format sealed with
// the given file password.
func EncryptedJSONExport(password string) ExportFormat {
	return ExportFormat{Kind: ExportFormatEncryptedJSON, Password: password}
}

// FileExtension returns the file extension for the format. Encrypted JSON
// is JSON-shaped, so both JSON variants share the "json" extension.
func (f ExportFormat) FileExtension() string {
	if f.Kind == ExportFormatCSV {
		return "csv"
	}
	return "json"
}
