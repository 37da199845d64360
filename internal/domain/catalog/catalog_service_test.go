package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
)

type fakeRepo struct {
	products []*Product
}

func (f *fakeRepo) Create(ctx context.Context, p *Product) error { return nil }
func (f *fakeRepo) BulkCreate(ctx context.Context, products []*Product) error {
	f.products = append(f.products, products...)
	return nil
}
func (f *fakeRepo) FindAll(ctx context.Context) ([]*Product, error) {
	return f.products, nil
}
func (f *fakeRepo) FindByFilter(ctx context.Context, filter ProductFilter) ([]*Product, error) {
	out := make([]*Product, 0)
	for _, p := range f.products {
		if filter.OnlyOffer && !p.HasOffer() {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}
func (f *fakeRepo) FindByPublicID(ctx context.Context, publicID string) (*Product, error) {
	for _, p := range f.products {
		if p.PublicID == publicID {
			return p, nil
		}
	}
	return nil, nil
}
func (f *fakeRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.products)), nil
}
func (f *fakeRepo) DecrementQuantity(ctx context.Context, id uint) error { return nil }

func seededRepo() *fakeRepo {
	offer := decimal.NewFromFloat(27.99)
	return &fakeRepo{products: []*Product{
		{ID: 1, Name: "Wireless Mouse", Category: "Electronics", Price: decimal.NewFromFloat(34.99), OfferPrice: &offer},
		{ID: 2, Name: "Yoga Mat", Category: "Fitness", Price: decimal.NewFromFloat(34.99)},
		{ID: 3, Name: "Webcam", Category: "Electronics", Price: decimal.NewFromFloat(59.99)},
	}}
}

func TestCategoriesDistinctInCatalogOrder(t *testing.T) {
	svc := NewService(seededRepo())

	categories, err := svc.Categories(context.Background())
	if err != nil {
		t.Fatalf("Categories failed: %v", err)
	}
	if len(categories) != 2 || categories[0] != "Electronics" || categories[1] != "Fitness" {
		t.Fatalf("unexpected categories: %v", categories)
	}
}

func TestByCategoryIsCaseInsensitive(t *testing.T) {
	svc := NewService(seededRepo())

	products, err := svc.ByCategory(context.Background(), "  eLeCtRoNiCs ")
	if err != nil {
		t.Fatalf("ByCategory failed: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 electronics, got %d", len(products))
	}
}

func TestOffersOnlyDiscounted(t *testing.T) {
	svc := NewService(seededRepo())

	offers, err := svc.Offers(context.Background())
	if err != nil {
		t.Fatalf("Offers failed: %v", err)
	}
	if len(offers) != 1 || offers[0].Name != "Wireless Mouse" {
		t.Fatalf("unexpected offers: %v", offers)
	}
}

func TestSeedFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	seed := `products:
  - name: Wireless Mouse
    category: Electronics
    seller: Hayes-Mitchell
    price: "34.99"
    offer_price: "27.99"
    quantity: 240
    rating: 4.4
    tags: [wireless, mouse]
  - name: Yoga Mat
    category: Fitness
    seller: Core Balance
    price: "34.99"
    quantity: 280
    rating: 4.4
`
	if err := os.WriteFile(path, []byte(seed), 0o600); err != nil {
		t.Fatalf("write seed: %v", err)
	}

	repo := &fakeRepo{}
	svc := NewService(repo)

	count, err := svc.SeedFromFile(context.Background(), path)
	if err != nil {
		t.Fatalf("SeedFromFile failed: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 seeded products, got %d", count)
	}

	mouse := repo.products[0]
	if mouse.PublicID == "" || mouse.OfferPrice == nil || !mouse.OfferPrice.Equal(decimal.NewFromFloat(27.99)) {
		t.Fatalf("unexpected seeded product: %+v", mouse)
	}

	// Second run is a no-op against a populated catalog.
	count, err = svc.SeedFromFile(context.Background(), path)
	if err != nil {
		t.Fatalf("SeedFromFile rerun failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected idempotent seed, got %d", count)
	}
}

func TestSeedFromFileRejectsBadPrice(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	seed := `products:
  - name: Broken
    category: Misc
    price: "not-a-number"
`
	if err := os.WriteFile(path, []byte(seed), 0o600); err != nil {
		t.Fatalf("write seed: %v", err)
	}

	svc := NewService(&fakeRepo{})
	if _, err := svc.SeedFromFile(context.Background(), path); err == nil {
		t.Fatal("expected an error for an unparsable price")
	}
}
