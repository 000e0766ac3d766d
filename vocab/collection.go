package vocab

import (
	"github.com/fedikit/fedikit/model"
	"github.com/fedikit/fedikit/uri"
)

var (
	propTotalItems = model.NewSingularProperty("totalItems", as("totalItems"), model.Union(model.TypeExpr{Scalar: model.ScalarInt}))
	propCurrent    = model.NewSingularProperty("current", as("current"), objectOrLink)
	propFirst      = model.NewSingularProperty("first", as("first"), objectOrLink)
	propLast       = model.NewSingularProperty("last", as("last"), objectOrLink)
	propItems      = model.NewPluralProperty("items", as("items"), objectOrLink)
	propOrderedItems = model.NewPluralProperty("orderedItems", as("items"), objectOrLink)
	propPartOf     = model.NewSingularProperty("partOf", as("partOf"), objectOrLink)
	propNext       = model.NewSingularProperty("next", as("next"), objectOrLink)
	propPrev       = model.NewSingularProperty("prev", as("prev"), objectOrLink)
)

var collectionOwnProperties = []model.Property{
	propTotalItems, propCurrent, propFirst, propLast, propItems,
}

var collectionProperties = append(append([]model.Property{}, objectProperties...), collectionOwnProperties...)

// Collection is an unordered set of Objects or Links.
type Collection struct {
	base model.Base
}

// Base implements model.Entity.
func (c *Collection) Base() *model.Base { return &c.base }

func newCollection(typeURI uri.URI) *Collection {
	return &Collection{base: model.NewBase(typeURI, DefaultContext)}
}

// NewCollection constructs a Collection.
func NewCollection() *Collection { return newCollection(CollectionTypeURI) }

// Descriptors implements model.Entity.
func (c *Collection) Descriptors() []model.Property { return collectionProperties }

// SetTotalItems sets the collection's item count.
func (c *Collection) SetTotalItems(n int) { model.SetSingular(&c.base, propTotalItems, n) }

// SetFirst sets the collection's first-page link.
func (c *Collection) SetFirst(item model.Item) { model.SetSingular(&c.base, propFirst, item) }

// SetLast sets the collection's last-page link.
func (c *Collection) SetLast(item model.Item) { model.SetSingular(&c.base, propLast, item) }

// AddItems appends items to the collection.
func (c *Collection) AddItems(items ...model.Item) { model.AddPlural(&c.base, propItems, items...) }

// orderedProperties reuses the same "items" URI under the name
// orderedItems, per the ActivityStreams vocabulary (OrderedCollection
// is Collection with its items interpreted as ordered).
var orderedProperties = append(append([]model.Property{}, objectProperties...),
	propTotalItems, propCurrent, propFirst, propLast, propOrderedItems)

// OrderedCollection is a Collection whose items are strictly ordered.
type OrderedCollection struct {
	base model.Base
}

// Base implements model.Entity.
func (c *OrderedCollection) Base() *model.Base { return &c.base }

func newOrderedCollection(typeURI uri.URI) *OrderedCollection {
	return &OrderedCollection{base: model.NewBase(typeURI, DefaultContext)}
}

// NewOrderedCollection constructs an OrderedCollection.
func NewOrderedCollection() *OrderedCollection { return newOrderedCollection(OrderedCollectionTypeURI) }

// Descriptors implements model.Entity.
func (c *OrderedCollection) Descriptors() []model.Property { return orderedProperties }

// SetTotalItems sets the collection's item count.
func (c *OrderedCollection) SetTotalItems(n int) { model.SetSingular(&c.base, propTotalItems, n) }

// SetFirst sets the collection's first-page link.
func (c *OrderedCollection) SetFirst(item model.Item) { model.SetSingular(&c.base, propFirst, item) }

// SetLast sets the collection's last-page link.
func (c *OrderedCollection) SetLast(item model.Item) { model.SetSingular(&c.base, propLast, item) }

// AddOrderedItems appends items, in order, to the collection.
func (c *OrderedCollection) AddOrderedItems(items ...model.Item) {
	model.AddPlural(&c.base, propOrderedItems, items...)
}

var collectionPageOwnProperties = []model.Property{propPartOf, propNext, propPrev}

var collectionPageProperties = append(append(append([]model.Property{}, objectProperties...),
	collectionOwnProperties...), collectionPageOwnProperties...)

// CollectionPage is one page of a paginated Collection.
type CollectionPage struct {
	base model.Base
}

// Base implements model.Entity.
func (p *CollectionPage) Base() *model.Base { return &p.base }

// NewCollectionPage constructs a CollectionPage.
func NewCollectionPage() *CollectionPage {
	return &CollectionPage{base: model.NewBase(CollectionPageTypeURI, DefaultContext)}
}

// Descriptors implements model.Entity.
func (p *CollectionPage) Descriptors() []model.Property { return collectionPageProperties }

var orderedCollectionPageProperties = append(append([]model.Property{}, orderedProperties...),
	collectionPageOwnProperties...)

// OrderedCollectionPage is one page of a paginated OrderedCollection.
type OrderedCollectionPage struct {
	base model.Base
}

// Base implements model.Entity.
func (p *OrderedCollectionPage) Base() *model.Base { return &p.base }

// NewOrderedCollectionPage constructs an OrderedCollectionPage.
func NewOrderedCollectionPage() *OrderedCollectionPage {
	return &OrderedCollectionPage{base: model.NewBase(OrderedCollectionPageTypeURI, DefaultContext)}
}

// Descriptors implements model.Entity.
func (p *OrderedCollectionPage) Descriptors() []model.Property { return orderedCollectionPageProperties }

// SetPartOf sets the page's parent collection link.
func (p *OrderedCollectionPage) SetPartOf(item model.Item) { model.SetSingular(&p.base, propPartOf, item) }

// SetNext sets the page's next-page link.
func (p *OrderedCollectionPage) SetNext(item model.Item) { model.SetSingular(&p.base, propNext, item) }

// SetPrev sets the page's previous-page link.
func (p *OrderedCollectionPage) SetPrev(item model.Item) { model.SetSingular(&p.base, propPrev, item) }

// AddOrderedItems appends items, in order, to the page.
func (p *OrderedCollectionPage) AddOrderedItems(items ...model.Item) {
	model.AddPlural(&p.base, propOrderedItems, items...)
}
