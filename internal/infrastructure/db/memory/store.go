// Package memory is a process-local implementation of the persistence ports.
// It backs STORE_DRIVER=memory and the service tests.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/hireflow/interviewer/internal/core/domain"
	"github.com/hireflow/interviewer/internal/core/ports"
)

// Store holds every collection behind a single mutex, which makes the
// compare-and-swap in InterviewRepository.Advance trivially linearizable.
type Store struct {
	mu         sync.RWMutex
	candidates map[string]domain.Candidate
	interviews map[string]domain.Interview
	questions  map[string][]domain.Question // by interview id, ordered
	answers    map[string][]domain.Answer   // by interview id, ordered
	admins     map[string]domain.Admin      // by email
	config     *domain.RuntimeConfig
	audio      map[string][]byte
}

func New() *Store {
	return &Store{
		candidates: make(map[string]domain.Candidate),
		interviews: make(map[string]domain.Interview),
		questions:  make(map[string][]domain.Question),
		answers:    make(map[string][]domain.Answer),
		admins:     make(map[string]domain.Admin),
		audio:      make(map[string][]byte),
	}
}

func (s *Store) Candidates() *CandidateRepository { return &CandidateRepository{s: s} }
func (s *Store) Interviews() *InterviewRepository { return &InterviewRepository{s: s} }
func (s *Store) Questions() *QuestionRepository   { return &QuestionRepository{s: s} }
func (s *Store) Answers() *AnswerRepository       { return &AnswerRepository{s: s} }
func (s *Store) Admins() *AdminRepository         { return &AdminRepository{s: s} }
func (s *Store) Settings() *ConfigStore           { return &ConfigStore{s: s} }
func (s *Store) AudioCache() *AudioCache          { return &AudioCache{s: s} }

// Ping always succeeds; it lets the store stand in for a readiness check.
func (s *Store) Ping(context.Context) error { return nil }

// ── Candidates ───────────────────────────────────────────────────────────────

type CandidateRepository struct{ s *Store }

func (r *CandidateRepository) FindByEmail(_ context.Context, email string) (*domain.Candidate, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, c := range r.s.candidates {
		if c.Email == email {
			return &c, nil
		}
	}
	return nil, domain.ErrCandidateNotFound
}

func (r *CandidateRepository) FindByID(_ context.Context, id string) (*domain.Candidate, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.candidates[id]
	if !ok {
		return nil, domain.ErrCandidateNotFound
	}
	return &c, nil
}

func (r *CandidateRepository) FindByIDs(_ context.Context, ids []string) (map[string]*domain.Candidate, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make(map[string]*domain.Candidate, len(ids))
	for _, id := range ids {
		if c, ok := r.s.candidates[id]; ok {
			out[id] = &c
		}
	}
	return out, nil
}

func (r *CandidateRepository) SearchByEmail(_ context.Context, fragment string) ([]string, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	fragment = strings.ToLower(fragment)
	var ids []string
	for id, c := range r.s.candidates {
		if strings.Contains(strings.ToLower(c.Email), fragment) {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

func (r *CandidateRepository) Create(_ context.Context, c *domain.Candidate) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.candidates {
		if existing.Email == c.Email {
			return domain.ErrCandidateExists
		}
	}
	r.s.candidates[c.ID] = *c
	return nil
}

func (r *CandidateRepository) UpdateNames(_ context.Context, id, firstName, lastName string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.candidates[id]
	if !ok {
		return domain.ErrCandidateNotFound
	}
	if firstName != "" {
		c.FirstName = firstName
	}
	if lastName != "" {
		c.LastName = lastName
	}
	r.s.candidates[id] = c
	return nil
}

// ── Interviews ───────────────────────────────────────────────────────────────

type InterviewRepository struct{ s *Store }

func (r *InterviewRepository) Create(_ context.Context, i *domain.Interview) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.interviews[i.ID] = *i
	return nil
}

func (r *InterviewRepository) FindByID(_ context.Context, id string) (*domain.Interview, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	i, ok := r.s.interviews[id]
	if !ok {
		return nil, domain.ErrInterviewNotFound
	}
	return &i, nil
}

func (r *InterviewRepository) Advance(_ context.Context, in ports.AdvanceInput) (*domain.Interview, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i, ok := r.s.interviews[in.InterviewID]
	if !ok {
		return nil, domain.ErrInterviewNotFound
	}
	if i.Status != domain.StatusInProgress || i.CurrentIndex != in.ExpectedIndex {
		return nil, domain.ErrStaleQuestion
	}
	i.CurrentIndex++
	i.TotalScore += in.Score
	if in.Completed {
		end, final := in.At, in.FinalScore
		i.Status = domain.StatusCompleted
		i.EndTime = &end
		i.FinalScore = &final
	}
	r.s.interviews[i.ID] = i
	return &i, nil
}

func (r *InterviewRepository) List(_ context.Context, f ports.ListInterviewsFilter) ([]*domain.Interview, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var allowed map[string]bool
	if len(f.CandidateIDs) > 0 {
		allowed = make(map[string]bool, len(f.CandidateIDs))
		for _, id := range f.CandidateIDs {
			allowed[id] = true
		}
	}

	matched := make([]domain.Interview, 0, len(r.s.interviews))
	for _, i := range r.s.interviews {
		if f.Role != "" && i.Role != f.Role {
			continue
		}
		if allowed != nil && !allowed[i.CandidateID] {
			continue
		}
		matched = append(matched, i)
	}
	sort.Slice(matched, func(a, b int) bool {
		if matched[a].CreatedAt.Equal(matched[b].CreatedAt) {
			return matched[a].ID > matched[b].ID
		}
		return matched[a].CreatedAt.After(matched[b].CreatedAt)
	})

	total := int64(len(matched))
	start := (f.Page - 1) * f.Limit
	if start < 0 || start >= len(matched) {
		return []*domain.Interview{}, total, nil
	}
	end := start + f.Limit
	if end > len(matched) {
		end = len(matched)
	}
	page := make([]*domain.Interview, 0, end-start)
	for k := start; k < end; k++ {
		i := matched[k]
		page = append(page, &i)
	}
	return page, total, nil
}

// ── Questions ────────────────────────────────────────────────────────────────

type QuestionRepository struct{ s *Store }

func (r *QuestionRepository) CreateMany(_ context.Context, questions []domain.Question) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, q := range questions {
		r.s.questions[q.InterviewID] = append(r.s.questions[q.InterviewID], q)
	}
	for id := range r.s.questions {
		qs := r.s.questions[id]
		sort.Slice(qs, func(a, b int) bool { return qs[a].Order < qs[b].Order })
	}
	return nil
}

func (r *QuestionRepository) ListByInterview(_ context.Context, interviewID string) ([]domain.Question, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return append([]domain.Question(nil), r.s.questions[interviewID]...), nil
}

func (r *QuestionRepository) FindByOrder(_ context.Context, interviewID string, order int) (*domain.Question, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, q := range r.s.questions[interviewID] {
		if q.Order == order {
			return &q, nil
		}
	}
	return nil, domain.ErrQuestionNotFound
}

// ── Answers ──────────────────────────────────────────────────────────────────

type AnswerRepository struct{ s *Store }

func (r *AnswerRepository) Insert(_ context.Context, a *domain.Answer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.answers[a.InterviewID] {
		if existing.QuestionOrder == a.QuestionOrder {
			return domain.ErrStaleQuestion
		}
	}
	as := append(r.s.answers[a.InterviewID], *a)
	sort.Slice(as, func(x, y int) bool { return as[x].QuestionOrder < as[y].QuestionOrder })
	r.s.answers[a.InterviewID] = as
	return nil
}

func (r *AnswerRepository) ListByInterview(_ context.Context, interviewID string) ([]domain.Answer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return append([]domain.Answer(nil), r.s.answers[interviewID]...), nil
}

func (r *AnswerRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for interviewID, as := range r.s.answers {
		for k, a := range as {
			if a.ID == id {
				r.s.answers[interviewID] = append(as[:k:k], as[k+1:]...)
				return nil
			}
		}
	}
	return nil
}

// ── Admins ───────────────────────────────────────────────────────────────────

type AdminRepository struct{ s *Store }

func (r *AdminRepository) FindByEmail(_ context.Context, email string) (*domain.Admin, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	a, ok := r.s.admins[email]
	if !ok {
		return nil, domain.ErrAdminNotFound
	}
	return &a, nil
}

func (r *AdminRepository) Create(_ context.Context, admin *domain.Admin) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, exists := r.s.admins[admin.Email]; exists {
		return domain.ErrAdminExists
	}
	r.s.admins[admin.Email] = *admin
	return nil
}

func (r *AdminRepository) UpdatePassword(_ context.Context, email, passwordHash string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.admins[email]
	if !ok {
		return domain.ErrAdminNotFound
	}
	a.PasswordHash = passwordHash
	r.s.admins[email] = a
	return nil
}

// ── Settings and audio ───────────────────────────────────────────────────────

type ConfigStore struct{ s *Store }

func (c *ConfigStore) Load(context.Context) (*domain.RuntimeConfig, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()
	if c.s.config == nil {
		return nil, domain.ErrConfigNotFound
	}
	cfg := *c.s.config
	return &cfg, nil
}

func (c *ConfigStore) Save(_ context.Context, cfg domain.RuntimeConfig) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	c.s.config = &cfg
	return nil
}

// AudioCache keeps synthesized audio for the life of the process.
type AudioCache struct{ s *Store }

func (a *AudioCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	a.s.mu.RLock()
	defer a.s.mu.RUnlock()
	data, ok := a.s.audio[key]
	return data, ok, nil
}

func (a *AudioCache) Set(_ context.Context, key string, data []byte) error {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()
	a.s.audio[key] = data
	return nil
}

var (
	_ ports.CandidateRepository = (*CandidateRepository)(nil)
	_ ports.InterviewRepository = (*InterviewRepository)(nil)
	_ ports.QuestionRepository  = (*QuestionRepository)(nil)
	_ ports.AnswerRepository    = (*AnswerRepository)(nil)
	_ ports.AdminRepository     = (*AdminRepository)(nil)
	_ ports.ConfigStore         = (*ConfigStore)(nil)
	_ ports.AudioCache          = (*AudioCache)(nil)
)
