package search

import "context"

// Service binds the router to a fixed config, giving callers a plain
// query-in, response-out interface.
type Service struct {
	cfg *Config
}

// NewService creates a search service.
func NewService(cfg *Config) *Service {
	return &Service{cfg: cfg.WithDefaults()}
}

// Search runs one search with the default result count.
func (s *Service) Search(ctx context.Context, query string) (*Response, error) {
	return Search(ctx, Request{Query: query}, s.cfg)
}
