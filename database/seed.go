package database

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/achraf-fouad/aura-scents/models"
)

func floatPtr(f float64) *float64 { return &f }

// SeedProducts inserts the launch catalog when the products table is
// empty. Running it against a populated table is a no-op.
func SeedProducts(db *gorm.DB, logger *zap.Logger) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logger.Info("Catalog already seeded, skipping", zap.Int64("products", count))
		return nil
	}

	products := []models.Product{
		{
			Name:          "Nuit Éternelle",
			Brand:         "Pure Fragrances",
			Price:         890,
			OriginalPrice: floatPtr(1100),
			Images: models.StringSlice{
				"https://images.unsplash.com/photo-1541643600914-78b084683601?w=800&q=80",
				"https://images.unsplash.com/photo-1594035910387-fea47794261f?w=800&q=80",
			},
			Description: "Une fragrance mystérieuse et envoûtante qui capture l'essence des nuits orientales. Un voyage olfactif entre tradition et modernité.",
			Category:    models.CategoryFemme,
			Intensity:   models.IntensityIntense,
			Notes: models.FragranceNotes{
				Top:   []string{"Bergamote", "Poivre rose", "Safran"},
				Heart: []string{"Rose de Damas", "Jasmin", "Iris"},
				Base:  []string{"Oud", "Ambre", "Musc blanc"},
			},
			Size:         "100ml",
			IsBestSeller: true,
		},
		{
			Name:  "Gentleman Noir",
			Brand: "Pure Fragrances",
			Price: 750,
			Images: models.StringSlice{
				"https://images.unsplash.com/photo-1523293182086-7651a899d37f?w=800&q=80",
				"https://images.unsplash.com/photo-1590736969955-71cc94901144?w=800&q=80",
			},
			Description: "L'élégance masculine incarnée. Un parfum boisé et cuiré pour l'homme moderne qui affirme son caractère avec subtilité.",
			Category:    models.CategoryHomme,
			Intensity:   models.IntensityModerate,
			Notes: models.FragranceNotes{
				Top:   []string{"Cardamome", "Lavande", "Citron de Sicile"},
				Heart: []string{"Géranium", "Violette", "Orris"},
				Base:  []string{"Cèdre", "Vétiver", "Cuir"},
			},
			Size:         "100ml",
			IsBestSeller: true,
		},
		{
			Name:  "Aurore Dorée",
			Brand: "Pure Fragrances",
			Price: 680,
			Images: models.StringSlice{
				"https://images.unsplash.com/photo-1588405748880-12d1d2a59f75?w=800&q=80",
				"https://images.unsplash.com/photo-1592945403244-b3fbafd7f539?w=800&q=80",
			},
			Description: "La lumière du petit matin capturée dans un flacon. Une fragrance fraîche et lumineuse qui illumine chaque instant.",
			Category:    models.CategoryFemme,
			Intensity:   models.IntensityLight,
			Notes: models.FragranceNotes{
				Top:   []string{"Mandarine", "Néroli", "Poire"},
				Heart: []string{"Fleur d'oranger", "Pivoine", "Magnolia"},
				Base:  []string{"Muscs blancs", "Bois de santal", "Vanille"},
			},
			Size:  "75ml",
			IsNew: true,
		},
		{
			Name:  "Oud Royal",
			Brand: "Pure Fragrances",
			Price: 1200,
			Images: models.StringSlice{
				"https://images.unsplash.com/photo-1595425970377-c9703cf48b6d?w=800&q=80",
				"https://images.unsplash.com/photo-1594035910387-fea47794261f?w=800&q=80",
			},
			Description: "Le roi des bois précieux. Un oud rare et majestueux sublimé par des épices orientales pour une signature olfactive inoubliable.",
			Category:    models.CategoryUnisexe,
			Intensity:   models.IntensityIntense,
			Notes: models.FragranceNotes{
				Top:   []string{"Safran", "Cannelle", "Rose bulgare"},
				Heart: []string{"Oud cambodgien", "Encens", "Myrrhe"},
				Base:  []string{"Ambre gris", "Benjoin", "Bois de gaïac"},
			},
			Size:         "100ml",
			IsBestSeller: true,
		},
		{
			Name:  "Brise Marine",
			Brand: "Pure Fragrances",
			Price: 520,
			Images: models.StringSlice{
				"https://images.unsplash.com/photo-1594035910387-fea47794261f?w=800&q=80",
				"https://images.unsplash.com/photo-1590736969955-71cc94901144?w=800&q=80",
			},
			Description: "L'évasion maritime par excellence. Des notes aquatiques et salines qui évoquent les rivages méditerranéens au petit matin.",
			Category:    models.CategoryHomme,
			Intensity:   models.IntensityLight,
			Notes: models.FragranceNotes{
				Top:   []string{"Citron vert", "Sel marin", "Aldéhydes"},
				Heart: []string{"Feuilles de figuier", "Romarin", "Géranium"},
				Base:  []string{"Bois flotté", "Musc", "Ambre gris"},
			},
			Size:  "100ml",
			IsNew: true,
		},
		{
			Name:  "Velours Rose",
			Brand: "Pure Fragrances",
			Price: 780,
			Images: models.StringSlice{
				"https://images.unsplash.com/photo-1588405748880-12d1d2a59f75?w=800&q=80",
				"https://images.unsplash.com/photo-1541643600914-78b084683601?w=800&q=80",
			},
			Description: "La rose dans toute sa splendeur. Un bouquet floral velouté et sensuel, hommage à la reine des fleurs.",
			Category:    models.CategoryFemme,
			Intensity:   models.IntensityModerate,
			Notes: models.FragranceNotes{
				Top:   []string{"Rose centifolia", "Litchi", "Bergamote"},
				Heart: []string{"Rose de mai", "Pivoine", "Framboise"},
				Base:  []string{"Patchouli", "Vanille", "Cèdre blanc"},
			},
			Size: "75ml",
		},
		{
			Name:  "Cuir Sauvage",
			Brand: "Pure Fragrances",
			Price: 950,
			Images: models.StringSlice{
				"https://images.unsplash.com/photo-1523293182086-7651a899d37f?w=800&q=80",
				"https://images.unsplash.com/photo-1595425970377-c9703cf48b6d?w=800&q=80",
			},
			Description: "L'essence de l'aventure. Un cuir fumé et épicé pour les esprits libres et audacieux.",
			Category:    models.CategoryHomme,
			Intensity:   models.IntensityIntense,
			Notes: models.FragranceNotes{
				Top:   []string{"Poivre noir", "Baies roses", "Élemi"},
				Heart: []string{"Cuir", "Cade", "Cyprès"},
				Base:  []string{"Oud", "Benjoin", "Tabac"},
			},
			Size: "100ml",
		},
		{
			Name:  "Sérénité Absolue",
			Brand: "Pure Fragrances",
			Price: 620,
			Images: models.StringSlice{
				"https://images.unsplash.com/photo-1592945403244-b3fbafd7f539?w=800&q=80",
				"https://images.unsplash.com/photo-1594035910387-fea47794261f?w=800&q=80",
			},
			Description: "Un havre de paix olfactif. Des notes méditatives et apaisantes pour retrouver l'harmonie intérieure.",
			Category:    models.CategoryUnisexe,
			Intensity:   models.IntensityLight,
			Notes: models.FragranceNotes{
				Top:   []string{"Thé blanc", "Yuzu", "Menthe douce"},
				Heart: []string{"Iris", "Lotus", "Bambou"},
				Base:  []string{"Bois de hinoki", "Musc", "Cèdre japonais"},
			},
			Size:  "100ml",
			IsNew: true,
		},
	}

	if err := db.Create(&products).Error; err != nil {
		return err
	}
	logger.Info("Catalog seeded", zap.Int("products", len(products)))
	return nil
}
