package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"

	"wanderhub/models"
	"wanderhub/services/errs"
)

// RegisterGuide creates the provider's guide registration.
func (s *DefaultCatalogService) RegisterGuide(ctx context.Context, providerID string, in models.GuideUnit) (*models.GuideUnit, error) {
	if in.Name == "" || in.NIC == "" || len(in.Contact) == 0 ||
		in.Province == "" || in.District == "" || in.City == "" || in.Price <= 0 {
		return nil, errs.Validation("name, nic, contact, province, district, city and a positive price are required")
	}

	in.ID = uuid.New().String()
	in.ProviderID = providerID
	in.CreatedAt = time.Now()

	if err := s.claim(ctx, providerID, models.ServiceRef{Type: models.VerticalGuide, ID: in.ID}); err != nil {
		return nil, err
	}
	if err := s.Catalog.CreateGuide(ctx, &in); err != nil {
		return nil, err
	}
	return &in, nil
}

func (s *DefaultCatalogService) GuideProfile(ctx context.Context, providerID string) (*models.GuideUnit, error) {
	provider, err := s.requireService(ctx, providerID, models.VerticalGuide)
	if err != nil {
		return nil, err
	}
	guide, err := s.Catalog.GetGuide(ctx, provider.Service.ID)
	if err != nil {
		return nil, err
	}
	if guide == nil {
		return nil, errs.NotFound("guide profile")
	}
	return guide, nil
}

func (s *DefaultCatalogService) UpdateGuideProfile(ctx context.Context, providerID string, in GuideProfileUpdate) (*models.GuideUnit, error) {
	guide, err := s.GuideProfile(ctx, providerID)
	if err != nil {
		return nil, err
	}

	if in.Name != "" {
		guide.Name = in.Name
	}
	if in.Contact != nil {
		guide.Contact = in.Contact
	}
	if in.ProfilePic != "" {
		guide.ProfilePic = in.ProfilePic
	}
	if in.Images != nil {
		guide.Images = in.Images
	}
	if in.SpecializeArea != nil {
		guide.SpecializeArea = in.SpecializeArea
	}
	if in.Languages != nil {
		guide.Languages = in.Languages
	}
	if in.Province != "" {
		guide.Province = in.Province
	}
	if in.District != "" {
		guide.District = in.District
	}
	if in.City != "" {
		guide.City = in.City
	}

	if err := s.Catalog.UpdateGuide(ctx, guide); err != nil {
		return nil, err
	}
	return guide, nil
}

func (s *DefaultCatalogService) ListGuides(ctx context.Context) ([]models.GuideUnit, error) {
	return s.Catalog.ListGuides(ctx)
}
