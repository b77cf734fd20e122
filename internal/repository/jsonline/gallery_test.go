package jsonline_test

import (
	"context"
	"testing"

	"github.com/msomdec/weblog/internal/domain"
)

func TestGalleryRepository_CreateAndList(t *testing.T) {
	store, _ := newTestStore(t)
	repo := store.Gallery()
	ctx := context.Background()

	items := []domain.GalleryItem{
		{Filename: "a.jpg", UploadedBy: "abcd", UploadDate: "2024-03-01 09:00:00"},
		{Filename: "b.jpg", UploadedBy: "abcd", UploadDate: "2024-03-03 09:00:00"},
		{Filename: "c.jpg", UploadedBy: "anonymous", UploadDate: "2024-03-02 09:00:00"},
	}
	for i := range items {
		if err := repo.Create(ctx, &items[i]); err != nil {
			t.Fatalf("Create %s: %v", items[i].Filename, err)
		}
	}

	got, err := repo.ListNewest(ctx, 10, 0)
	if err != nil {
		t.Fatalf("ListNewest: %v", err)
	}
	want := []string{"b.jpg", "c.jpg", "a.jpg"}
	if len(got) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(got))
	}
	for i, name := range want {
		if got[i].Filename != name {
			t.Errorf("item %d: expected %s, got %s", i, name, got[i].Filename)
		}
	}
}

func TestGalleryRepository_ListNewest_MissingFile(t *testing.T) {
	store, _ := newTestStore(t)

	got, err := store.Gallery().ListNewest(context.Background(), 10, 0)
	if err != nil {
		t.Fatalf("ListNewest: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty list, got %d items", len(got))
	}
}
