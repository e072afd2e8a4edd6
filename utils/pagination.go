package utils

// DefaultPageSize is used when the caller supplies no size or an invalid one.
const DefaultPageSize = 20

// Pagination describes one page window over a record set.
type Pagination struct {
	Start int `json:"start"`
	End   int `json:"end"`
	Pages int `json:"pages"`
	Limit int `json:"limit"`
}

// Paginate computes the window for a page/size pair against the total record
// count. An out-of-range page clamps to the first window; the last page runs
// to the end of the set.
func Paginate(page, size int, total int64) Pagination {
	records := int(total)
	if size < 1 {
		size = DefaultPageSize
	}

	pages := 0
	if records > 0 {
		pages = (records + size - 1) / size
	}

	if page < 1 || page > pages {
		end := size
		if records < size {
			end = records
		}
		return Pagination{Start: 0, End: end, Pages: pages, Limit: end}
	}

	end := page * size
	if page == pages {
		end = records
	}
	start := (page - 1) * size

	return Pagination{Start: start, End: end, Pages: pages, Limit: end - start}
}
