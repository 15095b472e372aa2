package store

import (
	"context"
	"testing"

	"jewelstudio/internal/models"
)

func TestPromptOverrideStore_SaveLoadDelete(t *testing.T) {
	db := testDB(t)
	s := NewPromptOverrideStore(db)
	ctx := context.Background()

	key := models.KeyWhiteBgGeneral
	t.Cleanup(func() { cleanOverrides(t, db, string(key)) })

	if err := s.SaveOverride(ctx, key, "first body"); err != nil {
		t.Fatalf("SaveOverride: %v", err)
	}
	if err := s.SaveOverride(ctx, key, "second body"); err != nil {
		t.Fatalf("SaveOverride upsert: %v", err)
	}

	got, err := s.LoadOverrides(ctx)
	if err != nil {
		t.Fatalf("LoadOverrides: %v", err)
	}
	if got[key] != "second body" {
		t.Errorf("override = %q, want %q", got[key], "second body")
	}

	if err := s.DeleteOverride(ctx, key); err != nil {
		t.Fatalf("DeleteOverride: %v", err)
	}
	// Deleting again is a no-op.
	if err := s.DeleteOverride(ctx, key); err != nil {
		t.Fatalf("second DeleteOverride: %v", err)
	}

	got, err = s.LoadOverrides(ctx)
	if err != nil {
		t.Fatalf("LoadOverrides after delete: %v", err)
	}
	if _, ok := got[key]; ok {
		t.Error("override should be gone after DeleteOverride")
	}
}

func TestPromptOverrideStore_List(t *testing.T) {
	db := testDB(t)
	s := NewPromptOverrideStore(db)
	ctx := context.Background()

	t.Cleanup(func() { cleanOverrides(t, db, string(models.KeyDescriptionNecklace), string(models.KeySocial)) })

	if err := s.SaveOverride(ctx, models.KeySocial, "social"); err != nil {
		t.Fatalf("SaveOverride: %v", err)
	}
	if err := s.SaveOverride(ctx, models.KeyDescriptionNecklace, "desc"); err != nil {
		t.Fatalf("SaveOverride: %v", err)
	}

	list, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	var found int
	for _, o := range list {
		if o.Key == models.KeyDescriptionNecklace || o.Key == models.KeySocial {
			found++
			if o.UpdatedAt.IsZero() {
				t.Errorf("override %s has zero UpdatedAt", o.Key)
			}
		}
	}
	if found != 2 {
		t.Errorf("found %d of 2 overrides in List", found)
	}
}
