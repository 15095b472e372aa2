package prompt

import (
	"testing"

	"jewelstudio/internal/models"
)

func TestSelectTemplateKey(t *testing.T) {
	want := map[models.AssetType]map[models.JewelryType]models.TemplateKey{
		models.AssetStaging: {
			models.JewelryNecklace: models.KeyStaging,
			models.JewelryEarrings: models.KeyStaging,
			models.JewelryRing:     models.KeyStaging,
			models.JewelryBracelet: models.KeyStaging,
			models.JewelryOther:    models.KeyStaging,
		},
		models.AssetModel: {
			models.JewelryNecklace: models.KeyModelNecklace,
			models.JewelryEarrings: models.KeyModelEarrings,
			models.JewelryRing:     models.KeyModelRing,
			models.JewelryBracelet: models.KeyModelRing,
			models.JewelryOther:    models.KeyModelRing,
		},
		models.AssetWhiteBg: {
			models.JewelryNecklace: models.KeyWhiteBgGeneral,
			models.JewelryEarrings: models.KeyWhiteBgEarrings,
			models.JewelryRing:     models.KeyWhiteBgGeneral,
			models.JewelryBracelet: models.KeyWhiteBgGeneral,
			models.JewelryOther:    models.KeyWhiteBgGeneral,
		},
		models.AssetDescription: {
			models.JewelryNecklace: models.KeyDescriptionNecklace,
			models.JewelryEarrings: models.KeyDescriptionEarrings,
			models.JewelryRing:     models.KeyDescriptionNecklace,
			models.JewelryBracelet: models.KeyDescriptionNecklace,
			models.JewelryOther:    models.KeyDescriptionNecklace,
		},
		models.AssetSocialPost: {
			models.JewelryNecklace: models.KeySocial,
			models.JewelryEarrings: models.KeySocial,
			models.JewelryRing:     models.KeySocial,
			models.JewelryBracelet: models.KeySocial,
			models.JewelryOther:    models.KeySocial,
		},
	}

	for _, at := range models.AllAssetTypes() {
		for _, jt := range models.AllJewelryTypes() {
			t.Run(string(at)+"/"+string(jt), func(t *testing.T) {
				if got := SelectTemplateKey(at, jt); got != want[at][jt] {
					t.Errorf("SelectTemplateKey(%s, %s) = %s, want %s", at, jt, got, want[at][jt])
				}
			})
		}
	}
}

func TestSelectTemplateKeyUnknownInputs(t *testing.T) {
	defaults := DefaultTemplates()

	// A jewelry type added later must still resolve to a template.
	for _, at := range models.AllAssetTypes() {
		key := SelectTemplateKey(at, models.JewelryType("Brooch"))
		if _, ok := defaults[key]; !ok {
			t.Errorf("%s with unknown jewelry type resolved to %s which has no template", at, key)
		}
	}

	if got := SelectTemplateKey(models.AssetType("VIDEO"), models.JewelryRing); got != models.KeyStaging {
		t.Errorf("unknown asset type = %s, want %s", got, models.KeyStaging)
	}
}

func TestTemplateKeyFamily(t *testing.T) {
	tests := []struct {
		assetType models.AssetType
		want      int
	}{
		{models.AssetStaging, 1},
		{models.AssetModel, 3},
		{models.AssetWhiteBg, 2},
		{models.AssetDescription, 2},
		{models.AssetSocialPost, 1},
	}

	total := 0
	for _, tt := range tests {
		got := TemplateKeyFamily(tt.assetType)
		if len(got) != tt.want {
			t.Errorf("TemplateKeyFamily(%s) = %v, want %d keys", tt.assetType, got, tt.want)
		}
		total += len(got)
	}
	if total != len(models.AllTemplateKeys()) {
		t.Errorf("families cover %d keys, want %d", total, len(models.AllTemplateKeys()))
	}
}
