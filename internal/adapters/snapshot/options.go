package snapshot

// Option applies a configuration option to the FileStore.
type Option func(*FileStore)

// WithPath sets the snapshot file location.
func WithPath(path string) Option {
	return func(s *FileStore) {
		if path != "" {
			s.path = path
		}
	}
}
