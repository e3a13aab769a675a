package deck

// FlashItem is a single question/answer pair.
type FlashItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ItemSet is the currently loaded, validated collection of items.
// It is never patched in place; a new load replaces it wholesale.
type ItemSet struct {
	items []FlashItem
}

// NewItemSet builds an ItemSet from items. The slice is copied.
func NewItemSet(items []FlashItem) ItemSet {
	cp := make([]FlashItem, len(items))
	copy(cp, items)
	return ItemSet{items: cp}
}

// Len returns the number of items.
func (s ItemSet) Len() int {
	return len(s.items)
}

// Empty reports whether the set holds no items.
func (s ItemSet) Empty() bool {
	return len(s.items) == 0
}

// At returns the item at index i.
func (s ItemSet) At(i int) FlashItem {
	return s.items[i]
}

// Items returns a copy of the items in load order.
func (s ItemSet) Items() []FlashItem {
	cp := make([]FlashItem, len(s.items))
	copy(cp, s.items)
	return cp
}
