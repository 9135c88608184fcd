package analyze

import "sync"

// Item is one named input to a batch comparison.
type Item struct {
	Name string
	Text string
}

// Comparison is the per-item outcome of a batch run. Exactly one of
// Result and Err is set.
type Comparison struct {
	Name   string
	Result *Result
	Err    error
}

// Compare analyzes every item and reports each outcome separately: a
// failing item (typically a *ValidationError) is recorded in its slot
// and does not stop the rest of the batch. Items are independent, so
// they are scored concurrently; the returned slice preserves input
// order.
func (a *Analyzer) Compare(items []Item) []Comparison {
	out := make([]Comparison, len(items))

	var wg sync.WaitGroup
	for i, item := range items {
		wg.Add(1)
		go func(i int, item Item) {
			defer wg.Done()
			res, err := a.Analyze(item.Text)
			out[i] = Comparison{Name: item.Name, Result: res, Err: err}
		}(i, item)
	}
	wg.Wait()

	return out
}

// CompareFiles reads and compares the files at the given paths. A file
// that cannot be read fails its own slot only, like any other item
// error. Names are the file paths as given.
func (a *Analyzer) CompareFiles(paths []string) []Comparison {
	items := make([]Item, 0, len(paths))
	errs := make(map[int]error)
	for i, path := range paths {
		text, err := ReadText(path)
		if err != nil {
			errs[i] = err
		}
		items = append(items, Item{Name: path, Text: text})
	}

	out := a.Compare(items)
	for i, err := range errs {
		out[i] = Comparison{Name: paths[i], Err: err}
	}
	return out
}
