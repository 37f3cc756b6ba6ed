package domain

// ExchangeStatus is the lifecycle state of an exchange.
type ExchangeStatus string

const (
	ExchangeStatusActive  ExchangeStatus = "active"
	ExchangeStatusStarted ExchangeStatus = "started"
	ExchangeStatusEnded   ExchangeStatus = "ended"
)

func (s ExchangeStatus) String() string { return string(s) }

func (s ExchangeStatus) IsValid() bool {
	switch s {
	case ExchangeStatusActive, ExchangeStatusStarted, ExchangeStatusEnded:
		return true
	}
	return false
}

// CanTransitionTo reports whether next is the single forward step from s.
// There are no back-transitions and ended is terminal.
func (s ExchangeStatus) CanTransitionTo(next ExchangeStatus) bool {
	switch s {
	case ExchangeStatusActive:
		return next == ExchangeStatusStarted
	case ExchangeStatusStarted:
		return next == ExchangeStatusEnded
	}
	return false
}

// IsMatched reports whether assignments exist for an exchange in this status.
func (s ExchangeStatus) IsMatched() bool {
	return s == ExchangeStatusStarted || s == ExchangeStatusEnded
}

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypeExchange     EntityType = "EXCHANGE"
	EntityTypeParticipant  EntityType = "PARTICIPANT"
	EntityTypeWishlistItem EntityType = "WISHLIST_ITEM"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeExchange, EntityTypeParticipant, EntityTypeWishlistItem:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
	AuditActionDelete AuditAction = "DELETE"
	AuditActionStart  AuditAction = "START"
	AuditActionEnd    AuditAction = "END"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete, AuditActionStart, AuditActionEnd:
		return true
	}
	return false
}
