package metrics

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/prometheus/common/expfmt"
)

// WriteTextfile writes the registry contents in Prometheus text
// format. The file is written to a temp path and renamed so the
// textfile collector never reads a partial export.
func (m *Manager) WriteTextfile(path string) error {
	if !m.enabled {
		return nil
	}

	families, err := m.registry.Gather()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteTextfile, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteTextfile, err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	enc := expfmt.NewEncoder(tmp, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			_ = tmp.Close()
			return fmt.Errorf("%w: %v", ErrWriteTextfile, err)
		}
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteTextfile, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteTextfile, err)
	}
	return nil
}
