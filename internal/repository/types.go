package repository

// ProductListFilter narrows product list queries.
type ProductListFilter struct {
	Page     int
	PageSize int
	Search   string
}

// OrderListFilter narrows order list queries.
type OrderListFilter struct {
	Page     int
	PageSize int
	UserID   uint
}
