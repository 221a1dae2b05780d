package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"

	"github.com/Elmanda1/pemuda-berprestasi-legacy-sub004/models"
	"github.com/Elmanda1/pemuda-berprestasi-legacy-sub004/repositories"
	"github.com/Elmanda1/pemuda-berprestasi-legacy-sub004/storage"
)

var errDatabaseDown = errors.New("database down")

type fakeCompetitionRepo struct {
	competitions map[int]*models.Competition
	failing      map[int]bool
	nextID       int
}

func (r *fakeCompetitionRepo) Create(_ context.Context, c *models.Competition) error {
	if r.competitions == nil {
		r.competitions = map[int]*models.Competition{}
	}
	r.nextID++
	c.ID = r.nextID
	r.competitions[c.ID] = c
	return nil
}

func (r *fakeCompetitionRepo) GetByID(_ context.Context, id int) (*models.Competition, error) {
	if r.failing[id] {
		return nil, errDatabaseDown
	}
	c, ok := r.competitions[id]
	if !ok {
		return nil, repositories.ErrCompetitionNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCompetitionRepo) List(_ context.Context, status *models.CompetitionStatus) ([]*models.Competition, error) {
	var out []*models.Competition
	for _, c := range r.competitions {
		if status == nil || c.Status == *status {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCompetitionRepo) Count(ctx context.Context, status *models.CompetitionStatus) (int, error) {
	list, _ := r.List(ctx, status)
	return len(list), nil
}

type fakeClassRepo struct {
	classes []*models.ChampionshipClass
}

func (r *fakeClassRepo) Create(_ context.Context, c *models.ChampionshipClass) error {
	c.ID = len(r.classes) + 1
	r.classes = append(r.classes, c)
	return nil
}

func (r *fakeClassRepo) GetByID(_ context.Context, id int) (*models.ChampionshipClass, error) {
	for _, c := range r.classes {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, repositories.ErrClassNotFound
}

func (r *fakeClassRepo) ListByCompetition(_ context.Context, competitionID int) ([]*models.ChampionshipClass, error) {
	out := make([]*models.ChampionshipClass, 0)
	for _, c := range r.classes {
		if c.CompetitionID == competitionID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeParticipantRepo struct {
	mu           sync.Mutex
	participants []*models.Participant
}

func (r *fakeParticipantRepo) Create(_ context.Context, p *models.Participant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.participants {
		if existing.ClassID == p.ClassID && existing.AthleteID == p.AthleteID {
			return repositories.ErrParticipantConflict
		}
	}
	p.ID = len(r.participants) + 1
	r.participants = append(r.participants, p)
	return nil
}

func (r *fakeParticipantRepo) ListByClass(_ context.Context, classID int) ([]*models.Participant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.Participant, 0)
	for _, p := range r.participants {
		if p.ClassID == classID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeParticipantRepo) ListByAthlete(_ context.Context, athleteID int) ([]*models.Participant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.Participant, 0)
	for _, p := range r.participants {
		if p.AthleteID == athleteID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeParticipantRepo) Count(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.participants), nil
}

type fakeMatchRepo struct {
	matches map[int][]*models.BracketMatch
}

func (r *fakeMatchRepo) ListByClass(_ context.Context, classID int) ([]*models.BracketMatch, error) {
	return r.matches[classID], nil
}

func (r *fakeMatchRepo) CountDecided(_ context.Context) (int, error) {
	n := 0
	for _, ms := range r.matches {
		for _, m := range ms {
			if m.ScoreA > 0 || m.ScoreB > 0 {
				n++
			}
		}
	}
	return n, nil
}

type fakeAthleteRepo struct {
	athletes []*models.Athlete
}

func (r *fakeAthleteRepo) Create(_ context.Context, a *models.Athlete) error {
	a.ID = len(r.athletes) + 1
	r.athletes = append(r.athletes, a)
	return nil
}

func (r *fakeAthleteRepo) GetByID(_ context.Context, id int) (*models.Athlete, error) {
	for _, a := range r.athletes {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, repositories.ErrAthleteNotFound
}

func (r *fakeAthleteRepo) ListByDojang(_ context.Context, dojangID int) ([]*models.Athlete, error) {
	out := make([]*models.Athlete, 0)
	for _, a := range r.athletes {
		if a.DojangID == dojangID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAthleteRepo) Count(_ context.Context) (int, error) {
	return len(r.athletes), nil
}

type fakeDojangRepo struct {
	dojangs []*models.Dojang
}

func (r *fakeDojangRepo) Create(_ context.Context, d *models.Dojang) error {
	for _, existing := range r.dojangs {
		if existing.Name == d.Name {
			return repositories.ErrDojangNameConflict
		}
	}
	d.ID = len(r.dojangs) + 1
	r.dojangs = append(r.dojangs, d)
	return nil
}

func (r *fakeDojangRepo) GetByID(_ context.Context, id int) (*models.Dojang, error) {
	for _, d := range r.dojangs {
		if d.ID == id {
			cp := *d
			return &cp, nil
		}
	}
	return nil, repositories.ErrDojangNotFound
}

func (r *fakeDojangRepo) List(_ context.Context) ([]*models.Dojang, error) {
	return r.dojangs, nil
}

func (r *fakeDojangRepo) Update(_ context.Context, d *models.Dojang) error {
	for i, existing := range r.dojangs {
		if existing.ID == d.ID {
			cp := *d
			r.dojangs[i] = &cp
			return nil
		}
	}
	return repositories.ErrDojangNotFound
}

func (r *fakeDojangRepo) UpdateLogoKey(_ context.Context, id int, key *string) error {
	for _, d := range r.dojangs {
		if d.ID == id {
			d.LogoKey = key
			return nil
		}
	}
	return repositories.ErrDojangNotFound
}

func (r *fakeDojangRepo) Count(_ context.Context) (int, error) {
	return len(r.dojangs), nil
}

type fakeUserRepo struct {
	users []*models.User
}

func (r *fakeUserRepo) Create(_ context.Context, u *models.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return repositories.ErrUserEmailConflict
		}
	}
	u.ID = len(r.users) + 1
	cp := *u
	r.users = append(r.users, &cp)
	return nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) AssignDojang(_ context.Context, userID, dojangID int) (*models.User, error) {
	for _, u := range r.users {
		if u.ID == userID && u.Role == models.RoleDojang {
			u.DojangID = &dojangID
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

type fakeUploader struct {
	objects map[string][]byte
	deleted []string
}

func newFakeUploader() *fakeUploader {
	return &fakeUploader{objects: map[string][]byte{}}
}

func (u *fakeUploader) Upload(_ context.Context, key, _ string, reader io.Reader) (*storage.UploadResult, error) {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, reader); err != nil {
		return nil, err
	}
	u.objects[key] = buf.Bytes()
	return &storage.UploadResult{Key: key, Location: u.GetPublicURL(key)}, nil
}

func (u *fakeUploader) Delete(_ context.Context, key string) error {
	delete(u.objects, key)
	u.deleted = append(u.deleted, key)
	return nil
}

func (u *fakeUploader) GetPublicURL(key string) string {
	return "https://cdn.example/" + key
}

func intPtr(v int) *int {
	return &v
}
