package utils

import (
	"math/rand"
	"time"
)

// Random is the source every spawner and effect draws from.
// Tests pass a ScriptedRandom, the game a PRNGService.
type Random interface {
	// Float64 returns a number in [0.0, 1.0).
	Float64() float64
	// Intn returns a number in [0, n).
	Intn(n int) int
}

// PRNGService — обертка над стандартным генератором, которая позволяет
// использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range returns a uniform draw in [min, max).
func Range(r Random, min, max float64) float64 {
	return min + r.Float64()*(max-min)
}

// Choose picks a uniformly random element of items. It panics on an empty slice.
func Choose[T any](r Random, items []T) T {
	return items[r.Intn(len(items))]
}
