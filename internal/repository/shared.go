package repository

// Pagination holds pagination parameters for listing entities.
// A zero PageSize means no limit.
type Pagination struct {
	PageNo   int32
	PageSize int32
}

// Offset is computed in int64 so large page numbers cannot wrap negative.
func (p *Pagination) Offset() int64 {
	if p.PageNo <= 1 {
		return 0
	}
	return int64(p.PageNo-1) * int64(p.PageSize)
}

type FilterOrder struct {
	Filter  string
	OrderBy string
}

func (fo *FilterOrder) GetFilter() string { return fo.Filter }

func (fo *FilterOrder) GetOrderBy() string { return fo.OrderBy }
