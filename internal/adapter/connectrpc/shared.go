package connectrpc

import (
	"github.com/eslsoft/benkyo/internal/repository"
	benkyov1 "github.com/eslsoft/benkyo/pkg/api/benkyo/v1"
)

const _maxPageSize = 1000

func convertPagination(p *benkyov1.PaginationRequest) repository.Pagination {
	if p == nil {
		return repository.Pagination{PageNo: 1}
	}
	pageNo := p.PageNo
	if pageNo <= 0 {
		pageNo = 1
	}
	pageSize := p.PageSize
	if pageSize < 0 {
		pageSize = 0
	}
	if pageSize > _maxPageSize {
		pageSize = _maxPageSize
	}

	return repository.Pagination{PageNo: pageNo, PageSize: pageSize}
}
