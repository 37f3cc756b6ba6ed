// Package pairing assigns each participant of an exchange exactly one
// recipient.
//
// The shuffled list is cut into consecutive giver/receiver 2-cycles. An odd
// count leaves three members, which close into a single 3-cycle a→b→c→a.
// No other odd-count strategy is used.
package pairing

import (
	"fmt"

	"github.com/heartmarshall/secret-santa-backend/internal/domain"
)

// Rand is the randomness source consumed by Generate.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Pair is a directed giver -> receiver assignment.
type Pair[T comparable] struct {
	Giver    T
	Receiver T
}

// Validate checks the Generate precondition: at least two ids, no duplicates.
func Validate[T comparable](ids []T) error {
	var errs []domain.FieldError

	if len(ids) < domain.MinParticipants {
		errs = append(errs, domain.FieldError{
			Field:   "participants",
			Message: fmt.Sprintf("at least %d required, got %d", domain.MinParticipants, len(ids)),
		})
	}

	seen := make(map[T]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			errs = append(errs, domain.FieldError{
				Field:   "participants",
				Message: fmt.Sprintf("duplicate id %v", id),
			})
			break
		}
		seen[id] = struct{}{}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Generate returns len(ids) pairs in which every id gives exactly once and
// receives exactly once, and nobody draws themselves.
//
// ids must hold at least two distinct values (see Validate); the slice is
// not modified.
func Generate[T comparable](ids []T, rng Rand) []Pair[T] {
	n := len(ids)
	if n < 2 {
		return nil
	}

	shuffled := make([]T, n)
	copy(shuffled, ids)
	shuffle(shuffled, rng)

	pairs := make([]Pair[T], 0, n)

	pairCount := n / 2
	if n%2 == 1 {
		pairCount = (n - 3) / 2
	}

	for i := 0; i < pairCount; i++ {
		giver, receiver := shuffled[2*i], shuffled[2*i+1]
		pairs = append(pairs,
			Pair[T]{Giver: giver, Receiver: receiver},
			Pair[T]{Giver: receiver, Receiver: giver},
		)
	}

	if n%2 == 1 {
		a, b, c := shuffled[n-3], shuffled[n-2], shuffled[n-1]
		pairs = append(pairs,
			Pair[T]{Giver: a, Receiver: b},
			Pair[T]{Giver: b, Receiver: c},
			Pair[T]{Giver: c, Receiver: a},
		)
	}

	return pairs
}

// shuffle is a Fisher-Yates shuffle from the last index down to 1.
func shuffle[T any](s []T, rng Rand) {
	for i := len(s) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}
