package view

// OrderConfirmation feeds the thank-you page shown after checkout.
type OrderConfirmation struct {
	OrderRef        string // optional, shown when present
	OrderHistoryURL string
	HomeURL         string
}
