package exchange

import "github.com/heartmarshall/secret-santa-backend/internal/domain"

// StartResult is the outcome of a successful start: the exchange in its new
// state and the pairs generated for it.
type StartResult struct {
	Exchange    *domain.Exchange
	Assignments []domain.Assignment
}

// Overview is the organizer's view of an exchange with every pair named.
type Overview struct {
	Exchange     *domain.Exchange
	Participants []domain.Participant
	Assignments  []domain.AssignmentWithNames
}
