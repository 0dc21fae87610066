package paging

import "fmt"

const DefaultSize = 10

// Page is a 1-based window over a list.
type Page struct {
	Number int
	Size   int
}

func New(number, size int) Page {
	return Page{Number: number, Size: size}.Normalize()
}

func (p Page) Normalize() Page {
	if p.Size <= 0 {
		p.Size = DefaultSize
	}

	if p.Number < 1 {
		p.Number = 1
	}

	return p
}

func (p Page) Offset() int {
	p = p.Normalize()
	return (p.Number - 1) * p.Size
}

// Pages is the number of pages needed for total items. An empty list still
// has one (empty) page.
func (p Page) Pages(total int) int {
	p = p.Normalize()

	if total <= 0 {
		return 1
	}

	return (total + p.Size - 1) / p.Size
}

// Clamp moves a page past the end of the list onto the last page.
func (p Page) Clamp(total int) Page {
	p = p.Normalize()

	if n := p.Pages(total); p.Number > n {
		p.Number = n
	}

	return p
}

func (p Page) Bounds(total int) (int, int) {
	p = p.Clamp(total)

	start := p.Offset()
	if start > total {
		start = total
	}

	end := start + p.Size
	if end > total {
		end = total
	}

	if start < 0 {
		start = 0
	}

	return start, end
}

func (p Page) Summary(total int) string {
	p = p.Clamp(total)
	return fmt.Sprintf("page %d of %d (%d total)", p.Number, p.Pages(total), total)
}

func Slice[T any](items []T, p Page) []T {
	start, end := p.Bounds(len(items))
	return items[start:end]
}
