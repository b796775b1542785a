package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/genricoloni/mediactl/internal/domain"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// FileName is the selection file created inside the runtime directory
const FileName = "media_control_last_player_file"

const fieldSeparator = ";"

// FileStore keeps the SelectionRecord in a small text file: "<player id>;<notification id>".
// The file is not locked; concurrent invocations race and the last writer wins.
type FileStore struct {
	logger     *zap.Logger
	runtimeDir string
}

// NewFileStore creates a store rooted at the configured runtime directory
func NewFileStore(logger *zap.Logger, cfg domain.Config) *FileStore {
	return &FileStore{
		logger:     logger,
		runtimeDir: cfg.GetRuntimeDir(),
	}
}

// Path returns the selection file location, or an error when no runtime directory is configured
func (s *FileStore) Path() (string, error) {
	if s.runtimeDir == "" {
		return "", fmt.Errorf("%w: runtime directory is not set", domain.ErrConfig)
	}
	return filepath.Join(s.runtimeDir, FileName), nil
}

// Load reads the previous selection. Any problem yields the zero record.
func (s *FileStore) Load() domain.SelectionRecord {
	path, err := s.Path()
	if err != nil {
		s.logger.Warn("Unknown path to load selection from", zap.Error(err))
		return domain.SelectionRecord{}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Debug("No previous selection", zap.String("path", path))
		} else {
			s.logger.Warn("Could not read selection file", zap.String("path", path), zap.Error(err))
		}
		return domain.SelectionRecord{}
	}

	rec, err := parseRecord(string(data))
	if err != nil {
		s.logger.Warn("Ignoring malformed selection file", zap.String("path", path), zap.Error(err))
		return domain.SelectionRecord{}
	}

	s.logger.Debug("Selection loaded",
		zap.String("player", rec.PlayerID),
		zap.Uint32("notificationId", rec.NotificationID))
	return rec
}

// Save overwrites the selection file with rec
func (s *FileStore) Save(rec domain.SelectionRecord) (err error) {
	path, err := s.Path()
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrStorage, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = multierr.Append(err, fmt.Errorf("%w: %v", domain.ErrStorage, cerr))
		}
	}()

	if _, err := f.WriteString(formatRecord(rec)); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}

	s.logger.Debug("Selection saved",
		zap.String("path", path),
		zap.String("player", rec.PlayerID),
		zap.Uint32("notificationId", rec.NotificationID))
	return nil
}

func formatRecord(rec domain.SelectionRecord) string {
	return rec.PlayerID + fieldSeparator + strconv.FormatUint(uint64(rec.NotificationID), 10)
}

// parseRecord splits on ";" and takes the first two fields; anything after is ignored
func parseRecord(s string) (domain.SelectionRecord, error) {
	fields := strings.Split(s, fieldSeparator)
	if len(fields) < 2 {
		return domain.SelectionRecord{}, fmt.Errorf("expected 2 fields, got %d", len(fields))
	}

	id, err := strconv.ParseUint(strings.TrimSpace(fields[1]), 10, 32)
	if err != nil {
		return domain.SelectionRecord{}, fmt.Errorf("invalid notification id: %w", err)
	}

	return domain.SelectionRecord{
		PlayerID:       fields[0],
		NotificationID: uint32(id),
	}, nil
}
