// Package cart holds the cart and saved-for-later lists and the operations
// that move line items between them.
package cart

import (
	"sync"

	"github.com/jacksmith/larder/internal/model"
	"github.com/shopspring/decimal"
)

// List identifies one of the two lists a Store holds.
type List string

const (
	ListCart  List = "cart"
	ListSaved List = "saved"
)

// ChangeFunc is called after a list changes with a copy of its new contents.
type ChangeFunc func(list List, items []model.LineItem)

// Store holds the cart and saved-for-later lists.
//
// Every operation is atomic with respect to both lists. Change hooks and
// notices run after the lists are updated, outside the store's lock, in the
// order the changes were made. A hook never sees a snapshot older than one
// it has already been given for the same list; when concurrent changes race,
// the superseded snapshot is skipped. Hooks may read the store but must not
// modify it.
type Store struct {
	mu       sync.Mutex
	cart     []model.LineItem
	saved    []model.LineItem
	hooks    []ChangeFunc
	notifier Notifier
	seq      map[List]uint64 // last change per list

	deliverMu sync.Mutex
	delivered map[List]uint64 // last snapshot handed to hooks per list
}

// snapshot is a list's contents as of one change.
type snapshot struct {
	list  List
	seq   uint64
	items []model.LineItem
}

// Option configures a Store.
type Option func(*Store)

// WithNotifier sets the receiver of confirmation notices.
func WithNotifier(n Notifier) Option {
	return func(s *Store) {
		s.notifier = n
	}
}

// New returns an empty Store.
func New(opts ...Option) *Store {
	s := &Store{
		notifier:  nopNotifier{},
		seq:       make(map[List]uint64),
		delivered: make(map[List]uint64),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OnChange registers fn to run after every change to either list.
func (s *Store) OnChange(fn ChangeFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hooks = append(s.hooks[:len(s.hooks):len(s.hooks)], fn)
}

// Hydrate replaces both lists without running change hooks. It is meant to
// be called once at startup with the lists read from durable storage.
// Entries that repeat an id already seen in the same list are dropped.
func (s *Store) Hydrate(cartItems, savedItems []model.LineItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = dedupe(cartItems)
	s.saved = dedupe(savedItems)
}

// Cart returns a copy of the cart list.
func (s *Store) Cart() []model.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.cart)
}

// Saved returns a copy of the saved-for-later list.
func (s *Store) Saved() []model.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.saved)
}

// Count returns the number of units in the cart.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, it := range s.cart {
		n += it.Quantity
	}
	return n
}

// Total returns the sum of price * quantity over the cart.
func (s *Store) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := decimal.Zero
	for _, it := range s.cart {
		total = total.Add(it.Subtotal())
	}
	return total
}

// AddToCart adds item to the cart. If the id is already in the cart the
// quantities are summed and clamped to the stock recorded by the first add;
// otherwise the item is appended with its quantity clamped to its own stock.
// Requests that would leave a quantity below one are ignored.
func (s *Store) AddToCart(item model.LineItem) {
	item.ID = model.NormalizeProductID(item.ID)

	s.mu.Lock()
	var snaps []snapshot
	if s.addLocked(item) {
		snaps = append(snaps, s.snapshotLocked(ListCart))
	}
	s.unlockAndPublish(snaps, nil)
}

// RemoveFromCart removes the line item with the given id. Absent ids are ignored.
func (s *Store) RemoveFromCart(id string) {
	s.mu.Lock()
	var snaps []snapshot
	if s.removeLocked(&s.cart, model.NormalizeProductID(id)) {
		snaps = append(snaps, s.snapshotLocked(ListCart))
	}
	s.unlockAndPublish(snaps, nil)
}

// UpdateQuantity sets the quantity of a cart item, clamped to its stock.
// A quantity of zero or less removes the item. Absent ids are ignored.
func (s *Store) UpdateQuantity(id string, quantity int) {
	if quantity <= 0 {
		s.RemoveFromCart(id)
		return
	}
	id = model.NormalizeProductID(id)

	s.mu.Lock()
	changed := false
	if i := indexOf(s.cart, id); i >= 0 {
		q := min(quantity, s.cart[i].Stock)
		if q < 1 {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
			changed = true
		} else if q != s.cart[i].Quantity {
			s.cart[i].Quantity = q
			changed = true
		}
	}
	var snaps []snapshot
	if changed {
		snaps = append(snaps, s.snapshotLocked(ListCart))
	}
	s.unlockAndPublish(snaps, nil)
}

// ClearCart empties the cart.
func (s *Store) ClearCart() {
	s.mu.Lock()
	s.cart = nil
	s.unlockAndPublish([]snapshot{s.snapshotLocked(ListCart)}, nil)
}

// SaveForLater moves a cart item to the saved list with its quantity reset
// to one. If the saved list already holds the id, the saved entry is kept
// as is and the cart item is still removed. Absent ids are ignored.
func (s *Store) SaveForLater(id string) {
	id = model.NormalizeProductID(id)

	s.mu.Lock()
	i := indexOf(s.cart, id)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	item := s.cart[i]
	var snaps []snapshot
	if indexOf(s.saved, id) < 0 {
		saved := item
		saved.Quantity = 1
		s.saved = append(s.saved, saved)
		snaps = append(snaps, s.snapshotLocked(ListSaved))
	}
	s.cart = append(s.cart[:i], s.cart[i+1:]...)
	snaps = append(snaps, s.snapshotLocked(ListCart))
	s.unlockAndPublish(snaps, &Notice{Kind: NoticeSaved, Item: item})
}

// MoveToCart moves a saved item into the cart using the same merge rules as
// AddToCart and removes it from the saved list in the same step. Absent ids
// are ignored.
func (s *Store) MoveToCart(id string) {
	id = model.NormalizeProductID(id)

	s.mu.Lock()
	i := indexOf(s.saved, id)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	item := s.saved[i]
	var snaps []snapshot
	if s.addLocked(item) {
		snaps = append(snaps, s.snapshotLocked(ListCart))
	}
	s.removeLocked(&s.saved, id)
	snaps = append(snaps, s.snapshotLocked(ListSaved))
	s.unlockAndPublish(snaps, &Notice{Kind: NoticeMoved, Item: item})
}

// RemoveFromSaved removes the saved item with the given id. A notice is sent
// only when notify is set and the id was present.
func (s *Store) RemoveFromSaved(id string, notify bool) {
	id = model.NormalizeProductID(id)

	s.mu.Lock()
	i := indexOf(s.saved, id)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	removed := s.saved[i]
	s.saved = append(s.saved[:i], s.saved[i+1:]...)

	var notice *Notice
	if notify {
		notice = &Notice{Kind: NoticeRemoved, Item: removed}
	}
	s.unlockAndPublish([]snapshot{s.snapshotLocked(ListSaved)}, notice)
}

// snapshotLocked numbers a change to list and copies its contents.
func (s *Store) snapshotLocked(list List) snapshot {
	s.seq[list]++
	items := s.cart
	if list == ListSaved {
		items = s.saved
	}
	return snapshot{list: list, seq: s.seq[list], items: clone(items)}
}

// unlockAndPublish releases s.mu, then runs hooks for each snapshot newer
// than the last one delivered for its list and sends notice if non-nil.
func (s *Store) unlockAndPublish(snaps []snapshot, notice *Notice) {
	hooks, notifier := s.hooks, s.notifier
	s.mu.Unlock()

	if len(snaps) == 0 && notice == nil {
		return
	}

	s.deliverMu.Lock()
	defer s.deliverMu.Unlock()
	for _, sn := range snaps {
		if sn.seq <= s.delivered[sn.list] {
			continue
		}
		s.delivered[sn.list] = sn.seq
		fire(hooks, sn.list, sn.items)
	}
	if notice != nil {
		notifier.Notify(*notice)
	}
}

// addLocked merges item into the cart and reports whether the cart changed.
func (s *Store) addLocked(item model.LineItem) bool {
	if item.Quantity < 1 {
		return false
	}
	if i := indexOf(s.cart, item.ID); i >= 0 {
		existing := &s.cart[i]
		q := min(existing.Quantity+item.Quantity, existing.Stock)
		if q < 1 || q == existing.Quantity {
			return false
		}
		existing.Quantity = q
		return true
	}
	item.Quantity = min(item.Quantity, item.Stock)
	if item.Quantity < 1 {
		return false
	}
	s.cart = append(s.cart, item)
	return true
}

func (s *Store) removeLocked(list *[]model.LineItem, id string) bool {
	i := indexOf(*list, id)
	if i < 0 {
		return false
	}
	*list = append((*list)[:i], (*list)[i+1:]...)
	return true
}

func fire(hooks []ChangeFunc, list List, items []model.LineItem) {
	for _, fn := range hooks {
		fn(list, clone(items))
	}
}

func indexOf(items []model.LineItem, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}

func clone(items []model.LineItem) []model.LineItem {
	out := make([]model.LineItem, len(items))
	copy(out, items)
	return out
}

func dedupe(items []model.LineItem) []model.LineItem {
	seen := make(map[string]bool, len(items))
	var out []model.LineItem
	for _, it := range items {
		if seen[it.ID] {
			continue
		}
		seen[it.ID] = true
		out = append(out, it)
	}
	return out
}
