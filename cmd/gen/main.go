package main

import (
	"perkpass/internal/infra/persistence/model"

	"gorm.io/gen"
)

// Generates typed query helpers for the persistence models into postgres/query.
func main() {
	models := []any{
		model.IdentityModel{},
		model.ProfileModel{},
		model.AuthenticationModel{},
		model.RefreshTokenModel{},
		model.BusinessModel{},
		model.DealModel{},
		model.DealReviewModel{},
		model.CampaignModel{},
		model.MembershipModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
