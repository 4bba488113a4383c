package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/filedepot/backend/api/v1/models"
)

func (s *Store) ListFolders(ctx context.Context) ([]models.Folder, error) {
	query := `SELECT id, name FROM folders ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list folders", ErrDatabaseError)
	}
	defer rows.Close()

	folders := []models.Folder{}
	for rows.Next() {
		var folder models.Folder
		if err := rows.Scan(&folder.ID, &folder.Name); err != nil {
			return nil, fmt.Errorf("%w: failed to scan folder data", ErrDatabaseError)
		}
		folders = append(folders, folder)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to iterate folders", ErrDatabaseError)
	}

	return folders, nil
}

// GetFolderWithFiles returns the folder and its files nested under Files.
// The folder read anchors the not-found decision; a folder deleted between
// the two reads can only lose files to the cascade, never orphan them.
func (s *Store) GetFolderWithFiles(ctx context.Context, folderID int64) (*models.FolderWithFiles, error) {
	query := `SELECT id, name FROM folders WHERE id = $1`

	var folder models.FolderWithFiles
	err := s.db.QueryRowContext(ctx, query, folderID).Scan(&folder.ID, &folder.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoFolder
		}
		return nil, fmt.Errorf("%w: failed to get folder", ErrDatabaseError)
	}

	files, err := listFilesInFolder(ctx, s.db, folderID)
	if err != nil {
		return nil, err
	}
	folder.Files = files

	return &folder, nil
}

// CreateFolder inserts a folder and returns it with the generated id.
// Used by the seeding collaborator; folders are not created over HTTP.
func (s *Store) CreateFolder(ctx context.Context, name string) (*models.Folder, error) {
	query := `INSERT INTO folders (name) VALUES ($1) RETURNING id`

	folder := &models.Folder{Name: name}
	err := s.db.QueryRowContext(ctx, query, name).Scan(&folder.ID)
	if err != nil {
		if isPgError(err, pgUniqueViolation) {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateFolder, name)
		}
		return nil, fmt.Errorf("%w: failed to insert folder", ErrDatabaseError)
	}

	return folder, nil
}
