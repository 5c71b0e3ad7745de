package video_test

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"randomyt/internal/domain/entity"
	"randomyt/internal/repository"
	"randomyt/internal/usecase/metadata"
)

/* ───────── stubs ───────── */

// in-memory VideoRepository that applies filters like the SQL adapter does
type stubRepo struct {
	mu        sync.Mutex
	data      map[string]*entity.Video
	err       error // forced error for every call
	createErr error // forced error for Create only
	lastSort  repository.SortOrder
	created   int
}

func newStubRepo(videos ...*entity.Video) *stubRepo {
	r := &stubRepo{data: map[string]*entity.Video{}}
	for _, v := range videos {
		r.data[v.ID] = v
	}
	return r
}

func (s *stubRepo) Get(_ context.Context, id string) (*entity.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return s.data[id], nil
}

func (s *stubRepo) Create(_ context.Context, v *entity.Video) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	if s.createErr != nil {
		return s.createErr
	}
	if _, ok := s.data[v.ID]; ok {
		return repository.ErrDuplicate
	}
	s.data[v.ID] = v
	s.created++
	return nil
}

func (s *stubRepo) Random(_ context.Context, f repository.VideoFilters) (*entity.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	matches := s.match(f)
	if len(matches) == 0 {
		return nil, nil
	}
	return matches[0], nil
}

func (s *stubRepo) Count(_ context.Context, f repository.VideoFilters) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return 0, s.err
	}
	return int64(len(s.match(f))), nil
}

func (s *stubRepo) Search(_ context.Context, f repository.VideoFilters, order repository.SortOrder, offset, limit int) ([]*entity.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	s.lastSort = order
	matches := s.match(f)
	if order == repository.SortDesc {
		slices.Reverse(matches)
	}
	if offset >= len(matches) {
		return []*entity.Video{}, nil
	}
	return matches[offset:min(offset+limit, len(matches))], nil
}

// match returns filtered videos ordered by upload date ascending.
func (s *stubRepo) match(f repository.VideoFilters) []*entity.Video {
	var out []*entity.Video
	for _, v := range s.data {
		if f.From != nil && v.UploadDate.Before(*f.From) {
			continue
		}
		if f.To != nil && !v.UploadDate.Before(*f.To) {
			continue
		}
		if slices.Contains(f.ExcludeIDs, v.ID) {
			continue
		}
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].UploadDate.Equal(out[j].UploadDate) {
			return out[i].ID < out[j].ID
		}
		return out[i].UploadDate.Before(out[j].UploadDate)
	})
	return out
}

// resolver stub returning a fixed result
type stubResolver struct {
	resolved metadata.Resolved
	err      error
	calls    int
}

func (r *stubResolver) Resolve(_ context.Context, _ string) (metadata.Resolved, []metadata.Attempt, error) {
	r.calls++
	return r.resolved, nil, r.err
}

func newVideo(id string, uploaded time.Time) *entity.Video {
	return &entity.Video{
		ID:         id,
		Title:      "title " + id,
		PostedDate: uploaded,
		UploadDate: uploaded,
		Tags:       []string{},
		Views:      10,
	}
}
