package models

import "time"

// Folder is a read-only vault folder record passed through to the exporter
// so that exported items keep their folder assignment.
type Folder struct {
	// ID is the unique identifier of the folder.
	ID string `json:"id"`

	// Name is the decrypted folder name.
	Name string `json:"name"`

	// RevisionDate is the server-side timestamp of the last folder change.
	RevisionDate time.Time `json:"revisionDate"`
}
