package cart

// LineItem is one product entry in a session cart. Price is the unit
// price in rupees captured at the time the product was added.
type LineItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Image     string `json:"image"`
	Quantity  int    `json:"quantity"`
}

// Snapshot is the full cart state for one session. Total is always
// recomputed from the items, never stored authoritatively.
type Snapshot struct {
	SessionID string     `json:"session_id"`
	Items     []LineItem `json:"items"`
	Total     int        `json:"total"`
	ItemCount int        `json:"item_count"`
}

func (s *Snapshot) recompute() {
	total := 0
	count := 0
	for _, item := range s.Items {
		total += item.Price * item.Quantity
		count += item.Quantity
	}
	s.Total = total
	s.ItemCount = count
}
