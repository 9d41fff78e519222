package enums

// ProductBadge is the optional marketing label attached to a listing.
type ProductBadge string

const (
	BadgeOrganic ProductBadge = "Organic"
	BadgeFresh   ProductBadge = "Fresh"
	BadgeLocal   ProductBadge = "Local"
	BadgePremium ProductBadge = "Premium"
)

func (b ProductBadge) IsValid() bool {
	switch b {
	case BadgeOrganic, BadgeFresh, BadgeLocal, BadgePremium:
		return true
	}
	return false
}
