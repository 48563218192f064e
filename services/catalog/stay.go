package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"

	"wanderhub/models"
	"wanderhub/services/errs"
)

// RegisterStay creates the provider's lodging registration. Rooms are added
// separately with AddRoom.
func (s *DefaultCatalogService) RegisterStay(ctx context.Context, providerID string, in models.Stay) (*models.Stay, error) {
	if in.Name == "" || in.Location == "" {
		return nil, errs.Validation("name and location are required")
	}

	in.ID = uuid.New().String()
	in.ProviderID = providerID
	in.RoomIDs = []string{}
	in.CreatedAt = time.Now()

	if err := s.claim(ctx, providerID, models.ServiceRef{Type: models.VerticalStay, ID: in.ID}); err != nil {
		return nil, err
	}
	if err := s.Catalog.CreateStay(ctx, &in); err != nil {
		return nil, err
	}
	return &in, nil
}

func (s *DefaultCatalogService) StayProfile(ctx context.Context, providerID string) (*models.Stay, []models.RoomUnit, error) {
	provider, err := s.requireService(ctx, providerID, models.VerticalStay)
	if err != nil {
		return nil, nil, err
	}
	stay, err := s.Catalog.GetStay(ctx, provider.Service.ID)
	if err != nil {
		return nil, nil, err
	}
	if stay == nil {
		return nil, nil, errs.NotFound("stay profile")
	}
	rooms, err := s.Catalog.RoomsByStay(ctx, stay.ID, nil)
	if err != nil {
		return nil, nil, err
	}
	return stay, rooms, nil
}

func (s *DefaultCatalogService) UpdateStayProfile(ctx context.Context, providerID string, in StayProfileUpdate) (*models.Stay, error) {
	stay, _, err := s.StayProfile(ctx, providerID)
	if err != nil {
		return nil, err
	}

	if in.Name != "" {
		stay.Name = in.Name
	}
	if in.Location != "" {
		stay.Location = in.Location
	}
	if in.Contact != nil {
		stay.Contact = in.Contact
	}
	if in.Website != "" {
		stay.Website = in.Website
	}
	if in.Facilities != nil {
		stay.Facilities = in.Facilities
	}
	if in.Images != nil {
		stay.Images = in.Images
	}
	if in.Description != "" {
		stay.Description = in.Description
	}
	if in.ProfilePic != "" {
		stay.ProfilePic = in.ProfilePic
	}

	if err := s.Catalog.UpdateStay(ctx, stay); err != nil {
		return nil, err
	}
	return stay, nil
}

func (s *DefaultCatalogService) ListStays(ctx context.Context) ([]models.Stay, error) {
	return s.Catalog.ListStays(ctx)
}

// AddRoom adds a bookable room to the provider's stay.
func (s *DefaultCatalogService) AddRoom(ctx context.Context, providerID string, in models.RoomUnit) (*models.RoomUnit, error) {
	if in.RoomType == "" || in.BedType == "" || in.Price <= 0 || in.MaxGuest <= 0 {
		return nil, errs.Validation("roomType, bedType, a positive price and a positive maxGuest are required")
	}

	stay, _, err := s.StayProfile(ctx, providerID)
	if err != nil {
		return nil, err
	}

	in.ID = uuid.New().String()
	in.StayID = stay.ID
	if err := s.Catalog.AddRoom(ctx, &in); err != nil {
		return nil, err
	}
	return &in, nil
}

// ownedRoom checks the room belongs to the provider's stay.
func (s *DefaultCatalogService) ownedRoom(ctx context.Context, providerID, roomID string) (*models.RoomUnit, error) {
	stay, _, err := s.StayProfile(ctx, providerID)
	if err != nil {
		return nil, err
	}
	room, err := s.Catalog.GetRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if room == nil || room.StayID != stay.ID {
		return nil, errs.Authorization("room does not belong to your stay")
	}
	return room, nil
}

func (s *DefaultCatalogService) UpdateRoom(ctx context.Context, providerID, roomID string, in RoomUpdate) (*models.RoomUnit, error) {
	room, err := s.ownedRoom(ctx, providerID, roomID)
	if err != nil {
		return nil, err
	}

	if in.RoomType != "" {
		room.RoomType = in.RoomType
	}
	if in.Price != nil {
		room.Price = *in.Price
	}
	if in.MaxGuest != nil {
		room.MaxGuest = *in.MaxGuest
	}
	if in.BedType != "" {
		room.BedType = in.BedType
	}
	if in.Features != nil {
		room.Features = in.Features
	}
	if in.Images != nil {
		room.Images = in.Images
	}

	if err := s.Catalog.UpdateRoom(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

// DeleteRoom removes a room unless an active booking still references it.
func (s *DefaultCatalogService) DeleteRoom(ctx context.Context, providerID, roomID string) error {
	room, err := s.ownedRoom(ctx, providerID, roomID)
	if err != nil {
		return err
	}

	busy, err := s.Bookings.HasActiveForUnit(ctx, room.ID)
	if err != nil {
		return err
	}
	if busy {
		return errs.Conflict("room has active bookings and cannot be deleted")
	}
	return s.Catalog.DeleteRoom(ctx, room.StayID, room.ID)
}
