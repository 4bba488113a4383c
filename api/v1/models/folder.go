package models

type Folder struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// FolderWithFiles is a folder with its files nested under the "files" key.
type FolderWithFiles struct {
	Folder
	Files []File `json:"files"`
}
