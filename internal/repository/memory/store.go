package memory

import (
	"sync"

	"go-careercoach-backend/internal/domain"

	"github.com/google/uuid"
)

// Store is the in-process record store. All entity slices are guarded by
// a single RWMutex; records keep insertion order, which the accessors
// rely on for deterministic scans.
type Store struct {
	mu         sync.RWMutex
	users      []domain.User
	resumes    []domain.Resume
	skills     []domain.Skill
	jobs       []domain.Job
	paths      []domain.CareerPath
	courses    []domain.Course
	activities []domain.Activity
}

func NewStore() *Store {
	return &Store{}
}

func newID() string {
	return uuid.NewString()
}
