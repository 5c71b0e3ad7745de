package video_test

import (
	"context"
	"net/http"
	"slices"
	"sort"
	"sync"
	"time"

	"randomyt/internal/common/pagination"
	"randomyt/internal/domain/entity"
	videoHandler "randomyt/internal/handler/http/video"
	"randomyt/internal/repository"
	"randomyt/internal/usecase/metadata"
	videoUC "randomyt/internal/usecase/video"
)

/* ───────── stubs ───────── */

type stubRepo struct {
	mu   sync.Mutex
	data map[string]*entity.Video
	err  error
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
	return s.data[id], s.err
}

func (s *stubRepo) Create(_ context.Context, v *entity.Video) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	if _, ok := s.data[v.ID]; ok {
		return repository.ErrDuplicate
	}
	s.data[v.ID] = v
	return nil
}

func (s *stubRepo) Random(_ context.Context, f repository.VideoFilters) (*entity.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	if m := s.match(f); len(m) > 0 {
		return m[0], nil
	}
	return nil, nil
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
	m := s.match(f)
	if order == repository.SortDesc {
		slices.Reverse(m)
	}
	if offset >= len(m) {
		return nil, nil
	}
	return m[offset:min(offset+limit, len(m))], nil
}

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
	sort.Slice(out, func(i, j int) bool { return out[i].UploadDate.Before(out[j].UploadDate) })
	return out
}

type stubResolver struct {
	resolved metadata.Resolved
	err      error
}

func (r *stubResolver) Resolve(_ context.Context, _ string) (metadata.Resolved, []metadata.Attempt, error) {
	return r.resolved, nil, r.err
}

/* ───────── helpers ───────── */

var fixedNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 0, 0, 0, time.UTC)
}

func newVideo(id string, uploaded time.Time) *entity.Video {
	return &entity.Video{
		ID:         id,
		Title:      "title " + id,
		PostedDate: fixedNow,
		UploadDate: uploaded,
		Tags:       []string{"tag"},
		Views:      100,
	}
}

func newRouter(repo *stubRepo, resolver *stubResolver) http.Handler {
	if resolver == nil {
		resolver = &stubResolver{}
	}
	svc := &videoUC.Service{
		Repo:       repo,
		Resolver:   resolver,
		LimitViews: 2000,
		Now:        func() time.Time { return fixedNow },
	}
	mux := http.NewServeMux()
	videoHandler.Register(mux, videoHandler.Handlers{
		Svc:        svc,
		Pagination: pagination.DefaultConfig(),
	}, videoHandler.Routes{RootRedirectURL: "https://example.com/app"})
	return mux
}
