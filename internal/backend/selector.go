package backend

// Selector picks the backend for a service
type Selector struct {
	remote Backend
	mock   Backend
	mocked func(slug string) bool
}

// NewSelector routes slugs for which mocked returns true to mock and all
// others to remote. A nil remote backend sends everything to mock.
func NewSelector(remote, mock Backend, mocked func(slug string) bool) *Selector {
	return &Selector{remote: remote, mock: mock, mocked: mocked}
}

// For returns the backend serving slug
func (s *Selector) For(slug string) Backend {
	if s.remote == nil || (s.mocked != nil && s.mocked(slug)) {
		return s.mock
	}
	return s.remote
}

// IsMocked reports whether slug is served by the mock backend
func (s *Selector) IsMocked(slug string) bool {
	return s.For(slug).Mocked()
}
