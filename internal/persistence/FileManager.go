package persistence

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	json "github.com/goccy/go-json"
	"os"
	"path/filepath"
	"skilld/internal/models"
	"skilld/internal/persistence/interfaces"
	"skilld/internal/providers"
	"strings"
)

// DefaultPlayerID is used for files holding a single bare snapshot.
const DefaultPlayerID = "default"

var ErrUnsupportedStorage = errors.New("unsupported storage format")

// FileManager reads and writes the snapshot storage file. Files may be zstd
// compressed or plain JSON; compression is detected on read.
type FileManager struct {
	path       string
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

func NewFileManager(path string, compressor interfaces.CompressorInterface, logger providers.Logger) *FileManager {
	return &FileManager{
		path:       path,
		compressor: compressor,
		logger:     logger,
	}
}

func (f *FileManager) Name() string {
	return "file:" + f.path
}

func (f *FileManager) Load(_ context.Context) (map[string]*models.Snapshot, error) {
	return f.LoadFromFile(f.path)
}

func (f *FileManager) Close() error {
	f.compressor.Close()
	return nil
}

func (f *FileManager) SaveToFile(fileName string, players map[string]*models.Snapshot) error {
	jsonData, err := json.Marshal(models.Storage{Version: models.StorageVersion, Players: players})
	if err != nil {
		return err
	}
	data, err := f.compressor.Compress(jsonData)
	if err != nil {
		return err
	}

	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fileName)
}

// LoadFromFile returns an empty set when the file does not exist.
func (f *FileManager) LoadFromFile(fileName string) (map[string]*models.Snapshot, error) {
	players, _, err := f.ReadFile(fileName)
	return players, err
}

// ReadFile is LoadFromFile that also reports whether the file held a single
// bare snapshot, returned under DefaultPlayerID.
func (f *FileManager) ReadFile(fileName string) (map[string]*models.Snapshot, bool, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		if os.IsNotExist(err) {
			f.logger.Warnf(providers.TypeApp, "Snapshot file %s not found, starting empty", fileName)
			return map[string]*models.Snapshot{}, false, nil
		}
		return nil, false, err
	}

	if IsZstd(data) {
		if data, err = f.compressor.Decompress(data); err != nil {
			return nil, false, fmt.Errorf("decompress %s: %w", fileName, err)
		}
	}
	return f.decode(data)
}

// Pack merges inputs into one storage file at out and returns the number of
// players written. A bare snapshot is stored under its file name without
// extension. Later inputs replace earlier players with the same id.
func (f *FileManager) Pack(out string, inputs ...string) (int, error) {
	players := make(map[string]*models.Snapshot)
	for _, in := range inputs {
		if _, err := os.Stat(in); err != nil {
			return 0, err
		}
		loaded, bare, err := f.ReadFile(in)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", in, err)
		}
		for id, snap := range loaded {
			if bare {
				id = strings.TrimSuffix(filepath.Base(in), filepath.Ext(in))
			}
			if _, dup := players[id]; dup {
				f.logger.Warnf(providers.TypeApp, "Player %s from %s replaces an earlier input", id, in)
			}
			players[id] = snap
		}
	}

	if err := f.SaveToFile(out, players); err != nil {
		return 0, fmt.Errorf("write %s: %w", out, err)
	}
	return len(players), nil
}

func (f *FileManager) decode(data []byte) (map[string]*models.Snapshot, bool, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, false, fmt.Errorf("decode storage: %w", err)
	}

	if _, ok := probe["players"]; ok {
		var storage models.Storage
		if err := json.Unmarshal(data, &storage); err != nil {
			return nil, false, fmt.Errorf("decode storage: %w", err)
		}
		if storage.Version > models.StorageVersion {
			return nil, false, fmt.Errorf("%w: version %d", ErrUnsupportedStorage, storage.Version)
		}
		players := make(map[string]*models.Snapshot, len(storage.Players))
		for id, s := range storage.Players {
			if s != nil {
				players[id] = s
			}
		}
		return players, false, nil
	}

	// A bare export of one player, {"player": ..., "songs": ..., "versions": ...}
	if _, ok := probe["player"]; ok {
		f.logger.Warnf(providers.TypeApp, "Single snapshot file found, loading it as player %q", DefaultPlayerID)
		s, err := models.DecodeSnapshot(bytes.TrimSpace(data))
		if err != nil {
			return nil, false, err
		}
		return map[string]*models.Snapshot{DefaultPlayerID: s}, true, nil
	}

	return nil, false, ErrUnsupportedStorage
}
