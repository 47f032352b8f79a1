package models

// Sous-fournisseurs connus de la passerelle de paiement
const (
	ProviderPix      = "pix"
	ProviderCheckout = "checkout"
)

// Statuts renvoyés par la passerelle. Le champ status reste du texte libre:
// la passerelle peut introduire de nouveaux statuts sans casser l'ingestion.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusApproved  = "approved"
	PaymentStatusRejected  = "rejected"
	PaymentStatusCancelled = "cancelled"
	PaymentStatusInProcess = "in_process"
)

func IsKnownProvider(provider string) bool {
	return provider == ProviderPix || provider == ProviderCheckout
}
