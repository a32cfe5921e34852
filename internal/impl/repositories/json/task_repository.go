package repositories_json

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"time"

	"tasktrack/internal/domain/entities"
	"tasktrack/internal/domain/errs"
	"tasktrack/internal/domain/interfaces"

	"go.uber.org/zap"
)

const backupTimeLayout = "20060102_150405"

// JsonTaskRepository persists the whole collection to a single JSON file.
// Before each overwrite the current file is copied to a timestamped .bak
// sibling; if the write then fails, that backup is copied back so the file on
// disk stays usable. Backups are never pruned.
type JsonTaskRepository struct {
	filePath string
	logger   *zap.Logger

	// overridable for failure injection in tests
	writeFile func(name string, data []byte, perm os.FileMode) error
	copyFile  func(src, dst string) error
}

func NewJSONTaskRepository(filePath string, logger *zap.Logger) *JsonTaskRepository {
	return &JsonTaskRepository{
		filePath:  filePath,
		logger:    logger,
		writeFile: os.WriteFile,
		copyFile:  copyFile,
	}
}

// Load reads the collection from disk. A missing, empty, or unreadable file
// yields an empty collection rather than an error so the tool always starts;
// corruption is logged, never fatal.
func (r *JsonTaskRepository) Load(ctx context.Context) ([]*entities.Task, error) {
	data, err := os.ReadFile(r.filePath)
	if os.IsNotExist(err) {
		return []*entities.Task{}, nil
	}
	if err != nil {
		r.logger.Warn("could not read tasks file, starting with an empty list",
			zap.String("path", r.filePath), zap.Error(err))
		return []*entities.Task{}, nil
	}
	if len(data) == 0 {
		return []*entities.Task{}, nil
	}

	var tasks []*entities.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		r.logger.Warn("tasks file is corrupted, starting with an empty list",
			zap.String("path", r.filePath), zap.Error(err))
		return []*entities.Task{}, nil
	}
	if tasks == nil {
		tasks = []*entities.Task{}
	}
	return tasks, nil
}

// Save overwrites the file with the full collection, backing up the previous
// contents first and restoring them if the write fails.
func (r *JsonTaskRepository) Save(ctx context.Context, tasks []*entities.Task) error {
	backupPath, backedUp := r.backup()

	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return errs.StorageWriteErrorf(err, "could not encode tasks for %s", r.filePath)
	}

	if err := r.writeFile(r.filePath, data, 0644); err != nil {
		if !backedUp {
			return errs.StorageWriteErrorf(err, "could not write %s, no backup from this save to restore", r.filePath)
		}
		if restoreErr := r.copyFile(backupPath, r.filePath); restoreErr != nil {
			return errs.StorageRestoreErrorf(err, "could not write %s and restoring %s failed: %v", r.filePath, backupPath, restoreErr)
		}
		return errs.StorageWriteErrorf(err, "could not write %s, previous contents restored from %s", r.filePath, backupPath)
	}
	return nil
}

// backup copies the current file to a timestamped sibling before it is
// overwritten. A missing file means nothing to back up; a failed copy is
// logged and skipped so the save still goes through.
func (r *JsonTaskRepository) backup() (string, bool) {
	if _, err := os.Stat(r.filePath); err != nil {
		return "", false
	}

	backupPath := r.filePath + "." + time.Now().Format(backupTimeLayout) + ".bak"
	if err := r.copyFile(r.filePath, backupPath); err != nil {
		r.logger.Warn("could not back up tasks file before saving",
			zap.String("path", r.filePath), zap.Error(err))
		return "", false
	}
	return backupPath, true
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

var _ interfaces.TaskRepository = (*JsonTaskRepository)(nil)
