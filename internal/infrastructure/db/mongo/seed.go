package mongo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Maleklabbaci/DARI-WEBSITE-sub000/internal/core/domain"
)

// SeedListings loads the demo catalogue into an empty listings collection.
// An already-populated collection is left untouched.
func SeedListings(ctx context.Context, repo *ListingRepository, log zerolog.Logger) error {
	existing, err := repo.All(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	catalogue := []domain.Listing{
		{
			Title:       "F3 lumineux à Hydra",
			Description: "Appartement F3 rénové, proche commodités.",
			Price:       45000,
			Surface:     85,
			Type:        domain.PropertyApartment,
			Transaction: domain.TransactionRent,
			Location:    domain.Location{City: "Hydra", Wilaya: "Alger"},
			Rooms:       3,
			Bedrooms:    2,
			Floor:       2,
			Amenities:   []string{"ascenseur", "parking"},
			Seller:      domain.Seller{ID: "seed-agency-1", Name: "Immo Côte Turquoise", Kind: domain.KindAgency, Phone: "+213 550 10 20 30"},
		},
		{
			Title:       "Villa avec jardin à Dély Ibrahim",
			Description: "Villa R+2 de 320 m² sur un terrain arboré.",
			Price:       65000000,
			Surface:     320,
			Type:        domain.PropertyHouse,
			Transaction: domain.TransactionBuy,
			Location:    domain.Location{City: "Dély Ibrahim", Wilaya: "Alger"},
			Rooms:       7,
			Bedrooms:    5,
			Amenities:   []string{"jardin", "garage"},
			Seller:      domain.Seller{ID: "seed-agency-1", Name: "Immo Côte Turquoise", Kind: domain.KindAgency, Phone: "+213 550 10 20 30"},
		},
		{
			Title:       "Studio meublé front de mer",
			Description: "Studio de 32 m² avec vue mer, idéal étudiant.",
			Price:       28000,
			Surface:     32,
			Type:        domain.PropertyStudio,
			Transaction: domain.TransactionRent,
			Location:    domain.Location{City: "Bir El Djir", Wilaya: "Oran"},
			Rooms:       1,
			Floor:       5,
			Seller:      domain.Seller{ID: "seed-user-2", Name: "K. Benali", Kind: domain.KindIndividual, Phone: "+213 661 44 55 66"},
		},
		{
			Title:       "Local commercial centre-ville",
			Description: "Local de 120 m² avec vitrine sur rue passante.",
			Price:       120000,
			Surface:     120,
			Type:        domain.PropertyCommercial,
			Transaction: domain.TransactionRent,
			Location:    domain.Location{City: "Constantine", Wilaya: "Constantine"},
			Seller:      domain.Seller{ID: "seed-user-3", Name: "S. Hamidi", Kind: domain.KindIndividual, Phone: "+213 770 12 34 56"},
		},
		{
			Title:       "Terrain constructible 450 m²",
			Description: "Terrain plat avec acte, toutes commodités à proximité.",
			Price:       18000000,
			Surface:     450,
			Type:        domain.PropertyLand,
			Transaction: domain.TransactionBuy,
			Location:    domain.Location{City: "Draria", Wilaya: "Alger"},
			Seller:      domain.Seller{ID: "seed-user-2", Name: "K. Benali", Kind: domain.KindIndividual, Phone: "+213 661 44 55 66"},
		},
	}

	for i := range catalogue {
		catalogue[i].ID = uuid.NewString()
		catalogue[i].CreatedAt = base.Add(time.Duration(i) * time.Hour)
		if err := repo.Insert(ctx, &catalogue[i]); err != nil {
			return err
		}
	}

	log.Info().Int("count", len(catalogue)).Msg("seeded demo catalogue")
	return nil
}
