package entity

// VendorTier nivel de relación con el proveedor.
type VendorTier string

const (
	TierStrategic     VendorTier = "Strategic"
	TierPreferred     VendorTier = "Preferred"
	TierTransactional VendorTier = "Transactional"
	TierRestricted    VendorTier = "Restricted"
)

// Valid indica si el nivel pertenece al catálogo.
func (t VendorTier) Valid() bool {
	switch t {
	case TierStrategic, TierPreferred, TierTransactional, TierRestricted:
		return true
	}
	return false
}

// VendorProfile ficha del proveedor. Name coincide con Asset.Vendor.
type VendorProfile struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Tier         VendorTier `json:"tier"`
	ContactName  string     `json:"contact_name"`
	ContactEmail string     `json:"contact_email"`
	Notes        string     `json:"notes"`
}
