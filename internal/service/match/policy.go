package match

import "github.com/heartmarshall/secret-santa-backend/internal/domain"

// Visibility lists what a participant may see or change at a given point
// of the exchange lifecycle.
type Visibility struct {
	ReceiverWishlist    bool
	ReceiverName        bool
	GiverName           bool
	OwnWishlistEditable bool
	CompletionWritable  bool
}

// Policy maps exchange status and the organizer's name-reveal flag to the
// fields a participant is allowed to see. It is the single source of truth
// for match visibility.
//
//	active           own wishlist editable, nothing about the match
//	started, hidden  receiver's wishlist only
//	started, shown   receiver's wishlist and name
//	ended            receiver's wishlist and name, plus own giver's name
func Policy(status domain.ExchangeStatus, showRecipientNames bool) Visibility {
	switch status {
	case domain.ExchangeStatusActive:
		return Visibility{OwnWishlistEditable: true}
	case domain.ExchangeStatusStarted:
		return Visibility{
			ReceiverWishlist:   true,
			ReceiverName:       showRecipientNames,
			CompletionWritable: true,
		}
	case domain.ExchangeStatusEnded:
		return Visibility{
			ReceiverWishlist:   true,
			ReceiverName:       true,
			GiverName:          true,
			CompletionWritable: true,
		}
	default:
		return Visibility{}
	}
}
