package models

type File struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Size     int64  `json:"size"` // byte count
	FolderID int64  `json:"folder_id"`
}

// FileWithFolder is a file joined with the name of its owning folder.
type FileWithFolder struct {
	File
	FolderName string `json:"folder_name"`
}
