package database

import (
	"context"
	"fmt"

	"github.com/filedepot/backend/api/v1/models"
)

// ListFiles returns every file joined with its owning folder's name.
// The inner join drops any file whose folder is missing, which the
// foreign key makes impossible anyway.
func (s *Store) ListFiles(ctx context.Context) ([]models.FileWithFolder, error) {
	query := `
		SELECT files.id, files.name, files.size, files.folder_id, folders.name AS folder_name
		FROM files
		JOIN folders ON files.folder_id = folders.id
		ORDER BY files.id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list files", ErrDatabaseError)
	}
	defer rows.Close()

	files := []models.FileWithFolder{}
	for rows.Next() {
		var file models.FileWithFolder
		err := rows.Scan(&file.ID, &file.Name, &file.Size, &file.FolderID, &file.FolderName)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to scan file data", ErrDatabaseError)
		}
		files = append(files, file)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to iterate files", ErrDatabaseError)
	}

	return files, nil
}

// CreateFile inserts a file into an existing folder and returns it with
// the generated id. The existence check and the insert run in one
// transaction; a folder deleted concurrently trips the foreign key, which
// is reported as ErrNoFolder just like a folder that never existed.
func (s *Store) CreateFile(ctx context.Context, folderID int64, name string, size int64) (*models.File, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to begin transaction", ErrDatabaseError)
	}
	defer tx.Rollback()

	var exists bool
	err = tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM folders WHERE id = $1)`, folderID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to check folder existence", ErrDatabaseError)
	}
	if !exists {
		return nil, ErrNoFolder
	}

	query := `INSERT INTO files (name, size, folder_id) VALUES ($1, $2, $3) RETURNING id`

	file := &models.File{Name: name, Size: size, FolderID: folderID}
	err = tx.QueryRowContext(ctx, query, name, size, folderID).Scan(&file.ID)
	if err != nil {
		if isPgError(err, pgForeignKeyViolation) {
			return nil, ErrNoFolder
		}
		if isPgError(err, pgUniqueViolation) {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateFile, name)
		}
		return nil, fmt.Errorf("%w: failed to insert file", ErrDatabaseError)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: failed to commit file creation", ErrDatabaseError)
	}

	return file, nil
}

func listFilesInFolder(ctx context.Context, q DBTX, folderID int64) ([]models.File, error) {
	query := `SELECT id, name, size, folder_id FROM files WHERE folder_id = $1 ORDER BY id`

	rows, err := q.QueryContext(ctx, query, folderID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list files in folder", ErrDatabaseError)
	}
	defer rows.Close()

	files := []models.File{}
	for rows.Next() {
		var file models.File
		if err := rows.Scan(&file.ID, &file.Name, &file.Size, &file.FolderID); err != nil {
			return nil, fmt.Errorf("%w: failed to scan file data", ErrDatabaseError)
		}
		files = append(files, file)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to iterate files", ErrDatabaseError)
	}

	return files, nil
}
