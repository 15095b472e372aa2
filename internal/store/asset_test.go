package store

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"jewelstudio/internal/models"
)

func strPtr(s string) *string { return &s }

func TestAssetStore_Lifecycle(t *testing.T) {
	db := testDB(t)
	items := NewItemStore(db)
	assets := NewAssetStore(db)
	ctx := context.Background()

	it, err := items.Create(ctx, testDetails("Store Test Asset Owner"))
	if err != nil {
		t.Fatalf("Create item: %v", err)
	}
	t.Cleanup(func() { cleanItems(t, db, it.ID) })

	img, err := assets.Create(ctx, &models.AssetRecord{
		ItemID:      it.ID,
		AssetType:   models.AssetWhiteBg,
		ContentType: "image/png",
		SizeBytes:   2048,
		S3Key:       strPtr("assets/2026/10/store-test-WHITE_BG-abc.png"),
	})
	if err != nil {
		t.Fatalf("Create image asset: %v", err)
	}
	if img.ID == uuid.Nil {
		t.Fatal("expected a generated asset ID")
	}
	if img.Text != nil {
		t.Errorf("image asset Text = %v, want nil", *img.Text)
	}

	txt, err := assets.Create(ctx, &models.AssetRecord{
		ItemID:      it.ID,
		AssetType:   models.AssetDescription,
		ContentType: "text/plain; charset=utf-8",
		SizeBytes:   11,
		Text:        strPtr("Opal drops."),
	})
	if err != nil {
		t.Fatalf("Create text asset: %v", err)
	}
	if txt.S3Key != nil {
		t.Errorf("text asset S3Key = %v, want nil", *txt.S3Key)
	}

	list, err := assets.ListByItem(ctx, it.ID)
	if err != nil {
		t.Fatalf("ListByItem: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("ListByItem len = %d, want 2", len(list))
	}

	found, err := assets.FindByID(ctx, it.ID, txt.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found == nil || found.Text == nil || *found.Text != "Opal drops." {
		t.Errorf("FindByID = %+v", found)
	}

	// Scoped to the owning item.
	other, err := assets.FindByID(ctx, uuid.New(), txt.ID)
	if err != nil {
		t.Fatalf("FindByID other item: %v", err)
	}
	if other != nil {
		t.Error("FindByID should not return an asset of another item")
	}

	deleted, err := assets.Delete(ctx, it.ID, img.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if deleted == nil || deleted.S3Key == nil || *deleted.S3Key != *img.S3Key {
		t.Errorf("Delete should return the removed record, got %+v", deleted)
	}

	again, err := assets.Delete(ctx, it.ID, img.ID)
	if err != nil {
		t.Fatalf("second Delete: %v", err)
	}
	if again != nil {
		t.Error("second Delete should return nil")
	}
}

func TestAssetStore_RequiresPayload(t *testing.T) {
	db := testDB(t)
	items := NewItemStore(db)
	assets := NewAssetStore(db)
	ctx := context.Background()

	it, err := items.Create(ctx, testDetails("Store Test Empty Asset"))
	if err != nil {
		t.Fatalf("Create item: %v", err)
	}
	t.Cleanup(func() { cleanItems(t, db, it.ID) })

	_, err = assets.Create(ctx, &models.AssetRecord{
		ItemID:      it.ID,
		AssetType:   models.AssetModel,
		ContentType: "image/png",
	})
	if err == nil {
		t.Fatal("expected an error for an asset without key or text")
	}
}

func TestAssetStore_CascadeOnItemDelete(t *testing.T) {
	db := testDB(t)
	items := NewItemStore(db)
	assets := NewAssetStore(db)
	ctx := context.Background()

	it, err := items.Create(ctx, testDetails("Store Test Cascade"))
	if err != nil {
		t.Fatalf("Create item: %v", err)
	}
	t.Cleanup(func() { cleanItems(t, db, it.ID) })

	if _, err := assets.Create(ctx, &models.AssetRecord{
		ItemID:      it.ID,
		AssetType:   models.AssetSocialPost,
		ContentType: "text/plain; charset=utf-8",
		Text:        strPtr("#jewelry"),
	}); err != nil {
		t.Fatalf("Create asset: %v", err)
	}

	if _, err := items.Delete(ctx, it.ID); err != nil {
		t.Fatalf("Delete item: %v", err)
	}

	list, err := assets.ListByItem(ctx, it.ID)
	if err != nil {
		t.Fatalf("ListByItem: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("assets left after item delete: %d", len(list))
	}
}
