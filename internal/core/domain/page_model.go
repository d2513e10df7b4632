package domain

// Page identifies a slice of a list, numbered from 1.
type Page interface {
	GetNumber() int64
	GetSize() int64
}

type page struct {
	number int64
	size   int64
}

func (p page) GetNumber() int64 {
	return p.number
}

func (p page) GetSize() int64 {
	return p.size
}

// NewPage returns a page with sane defaults for non positive values.
func NewPage(pageNumber, pageSize int64) Page {
	pNumber := int64(1)
	if pageNumber > 0 {
		pNumber = pageNumber
	}

	pSize := int64(10)
	if pageSize > 0 {
		pSize = pageSize
	}

	return page{pNumber, pSize}
}

// PageBounds returns the [start, end) indexes of the page over a list of size
// total. A nil page covers the whole list.
func PageBounds(p Page, total int) (int, int) {
	if p == nil {
		return 0, total
	}
	if total <= 0 {
		return 0, 0
	}

	p = NewPage(p.GetNumber(), p.GetSize())
	size := p.GetSize()
	skipped := p.GetNumber() - 1

	// skipped*size must not be computed unless it fits in total.
	start := total
	if skipped <= int64(total)/size {
		start = int(skipped * size)
		if start > total {
			start = total
		}
	}
	end := total
	if size < int64(total-start) {
		end = start + int(size)
	}
	return start, end
}
