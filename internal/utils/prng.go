// internal/utils/prng.go
package utils

import (
	"math"
	"math/rand"
	"time"
)

// PRNGService — обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range returns a float in [min, max).
func (s *PRNGService) Range(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}

// Angle returns a random direction in radians, [0, 2π).
func (s *PRNGService) Angle() float64 {
	return s.rng.Float64() * 2 * math.Pi
}

// WeightedIndex выполняет взвешенный случайный выбор по целым весам.
// Суммирует веса, выбирает число в [0, total) и находит элемент,
// накопленный вес которого его превышает. Возвращает -1 для пустого списка;
// при некорректной сумме весов возвращает первый элемент.
func (s *PRNGService) WeightedIndex(weights []int) int {
	if len(weights) == 0 {
		return -1
	}
	total := 0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return 0
	}

	r := s.Intn(total)
	upto := 0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		upto += w
		if r < upto {
			return i
		}
	}
	return len(weights) - 1
}

// ChooseWeighted picks one item with probability proportional to weight(item).
func ChooseWeighted[T any](s *PRNGService, items []T, weight func(T) int) (T, int, bool) {
	var zero T
	if len(items) == 0 {
		return zero, -1, false
	}
	weights := make([]int, len(items))
	for i, it := range items {
		weights[i] = weight(it)
	}
	idx := s.WeightedIndex(weights)
	return items[idx], idx, true
}

// SampleWithoutReplacement draws up to k distinct items, each draw weighted
// by weight(item) over what is left.
func SampleWithoutReplacement[T any](s *PRNGService, items []T, k int, weight func(T) int) []T {
	pool := make([]T, len(items))
	copy(pool, items)
	picks := make([]T, 0, min(k, len(pool)))
	for len(picks) < k && len(pool) > 0 {
		item, idx, ok := ChooseWeighted(s, pool, weight)
		if !ok {
			break
		}
		picks = append(picks, item)
		pool = append(pool[:idx], pool[idx+1:]...)
	}
	return picks
}
