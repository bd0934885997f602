package scaffold

import (
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
)

// transaction tracks what a single Generate call created so a failed
// generation can be undone.
type transaction struct {
	fs     afero.Fs
	logger hclog.Logger
	root   string

	// ownsRoot is true when root did not exist before the call; rollback
	// then removes root wholesale.
	ownsRoot    bool
	rootCreated bool
	created     []string
}

func (tx *transaction) mkdir(path string) error {
	if err := tx.fs.MkdirAll(path, dirPerm); err != nil {
		return ioError("mkdir", path, err)
	}
	if path == tx.root {
		tx.rootCreated = true
	} else {
		tx.created = append(tx.created, path)
	}
	tx.logger.Debug("created directory", "path", path)
	return nil
}

func (tx *transaction) writeFile(path string, data []byte) error {
	// Recorded before the write so a partially written file is cleaned up.
	tx.created = append(tx.created, path)
	if err := afero.WriteFile(tx.fs, path, data, filePerm); err != nil {
		return ioError("write", path, err)
	}
	tx.logger.Debug("wrote file", "path", path, "bytes", len(data))
	return nil
}

func (tx *transaction) rollback() error {
	if tx.ownsRoot {
		if !tx.rootCreated {
			return nil
		}
		tx.logger.Warn("generation failed, removing directory", "path", tx.root)
		if err := tx.fs.RemoveAll(tx.root); err != nil {
			return ioError("remove", tx.root, err)
		}
		return nil
	}

	var result *multierror.Error
	for i := len(tx.created) - 1; i >= 0; i-- {
		path := tx.created[i]
		tx.logger.Warn("generation failed, removing entry", "path", path)
		if err := tx.fs.RemoveAll(path); err != nil {
			result = multierror.Append(result, ioError("remove", path, err))
		}
	}
	return result.ErrorOrNil()
}
