package view

// AccountOrdersPage is the order history view. Orders are not stored by this
// service, so Items is empty and the page shows its empty state.
type AccountOrdersPage struct {
	Items   []AccountOrderListItem
	ShopURL string
}

type AccountOrderListItem struct {
	Number    string
	Status    string
	Total     string
	ItemCount int
}
