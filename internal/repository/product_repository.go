package repository

import (
	"storefront/internal/models"
	"storefront/internal/store"
	"sync"
)

type ProductRepository interface {
	List() []models.Product
	GetByID(id string) (models.Product, bool)
	Upsert(product models.Product) error
	Delete(id string) error
	Seed() (bool, error)
}

type productRepository struct {
	mu    sync.Mutex
	store *store.Store
}

func NewProductRepository(s *store.Store) ProductRepository {
	return &productRepository{store: s}
}

// List returns the catalog in stored order. A catalog that was never written
// is seeded first.
func (r *productRepository) List() []models.Product {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

func (r *productRepository) GetByID(id string) (models.Product, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.load() {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// Upsert replaces the product with the same id in place, or appends it.
// Input is stored as given.
func (r *productRepository) Upsert(product models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	products := r.load()
	for i := range products {
		if products[i].ID == product.ID {
			products[i] = product
			return store.WriteAll(r.store, store.Products, products)
		}
	}
	return store.WriteAll(r.store, store.Products, append(products, product))
}

// Delete removes the product with id. Unknown ids leave the catalog as is.
func (r *productRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	products := r.load()
	kept := products[:0]
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(products) {
		return nil
	}
	return store.WriteAll(r.store, store.Products, kept)
}

// Seed writes the starter catalog if the collection was never written and
// reports whether it did.
func (r *productRepository) Seed() (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, found := r.store.Read(store.Products); found {
		return false, nil
	}
	if err := store.WriteAll(r.store, store.Products, StarterCatalog()); err != nil {
		return false, err
	}
	return true, nil
}

func (r *productRepository) load() []models.Product {
	products, found := store.ReadAll[models.Product](r.store, store.Products)
	if found {
		return products
	}
	starter := StarterCatalog()
	// a failed seed write still serves the starter catalog
	_ = store.WriteAll(r.store, store.Products, starter)
	return starter
}

// StarterCatalog is the catalog written on a fresh install.
func StarterCatalog() []models.Product {
	return []models.Product{
		{ID: "p1", Name: "شیر پرچرب", Price: 25000, Category: "لبنیات", Unit: "بطری"},
		{ID: "p2", Name: "ماست کم چرب", Price: 42000, Category: "لبنیات", Unit: "سطل"},
		{ID: "p3", Name: "برنج ایرانی", Price: 950000, Category: "خواربار", Unit: "کیسه ۱۰ کیلویی"},
		{ID: "p4", Name: "روغن مایع", Price: 180000, Category: "خواربار", Unit: "بطری"},
		{ID: "p5", Name: "مرغ", Price: 120000, Category: "پروتئینی", Unit: "کیلوگرم"},
		{ID: "p6", Name: "تخم مرغ", Price: 85000, Category: "پروتئینی", Unit: "شانه"},
		{ID: "p7", Name: "دوغ", Price: 30000, Category: "نوشیدنی", Unit: "بطری"},
		{ID: "p8", Name: "چیپس", Price: 35000, Category: "تنقلات", Unit: models.DefaultUnit},
		{ID: "p9", Name: "بستنی وانیلی", Price: 60000, Category: "بستنی", Unit: models.DefaultUnit},
		{ID: "p10", Name: "سوسیس", Price: 140000, Category: "فست فود و منجمد", Unit: "بسته"},
		{ID: "p11", Name: "شامپو", Price: 110000, Category: "بهداشتی", Unit: models.DefaultUnit},
		{ID: "p12", Name: "زعفران", Price: 450000, Category: "مواد افزودنی", Unit: "مثقال"},
		{ID: "p13", Name: "نمک", Price: 15000, Category: "دخانیات و مواد افزودنی", Unit: "بسته"},
	}
}
