package commands

import (
	"context"
	"log/slog"

	"easebooking/internal/domain/place"
	"easebooking/internal/infra"
	"easebooking/internal/pkg/errs"
	"easebooking/internal/usecase/shared"
)

// UpsertPlaceRequest carries an owner's listing form. Price is in
// minor units; ImageURL and MapsURL are optional.
type UpsertPlaceRequest struct {
	Name        string
	Description string
	Location    string
	Timings     string
	PriceMinor  int64
	ImageURL    string
	MapsURL     string
}

type PlaceCommands interface {
	CreatePlace(ctx context.Context, sess shared.Session, req UpsertPlaceRequest) (int64, error)
	UpdatePlace(ctx context.Context, sess shared.Session, placeID int64, req UpsertPlaceRequest) error
}

type placeCommandsImpl struct {
	places PlaceGateway
}

func NewPlaceCommands(places PlaceGateway) PlaceCommands {
	return &placeCommandsImpl{places: places}
}

// CreatePlace publishes a new listing and returns its id. Gallery
// images are uploaded separately against that id.
func (p *placeCommandsImpl) CreatePlace(ctx context.Context, sess shared.Session, req UpsertPlaceRequest) (int64, error) {
	listing, err := toListing(req)
	if err != nil {
		return 0, err
	}

	placeID, err := p.places.CreatePlace(ctx, sess.Token, listing)
	if err != nil {
		return 0, p.classifyBackendErr(err)
	}

	slog.Info("place created",
		slog.Int64("place_id", placeID),
		slog.String("name", listing.Name()),
	)
	return placeID, nil
}

// UpdatePlace overwrites a listing's editable fields. Ownership is
// enforced by the backend, which answers 403 for someone else's place.
func (p *placeCommandsImpl) UpdatePlace(ctx context.Context, sess shared.Session, placeID int64, req UpsertPlaceRequest) error {
	listing, err := toListing(req)
	if err != nil {
		return err
	}

	if err := p.places.UpdatePlace(ctx, sess.Token, placeID, listing); err != nil {
		return p.classifyBackendErr(err)
	}

	slog.Info("place updated", slog.Int64("place_id", placeID))
	return nil
}

func toListing(req UpsertPlaceRequest) (place.Listing, error) {
	return place.NewListing(
		req.Name, req.Description, req.Location, req.Timings,
		req.PriceMinor, req.ImageURL, req.MapsURL,
	)
}

func (p *placeCommandsImpl) classifyBackendErr(err error) error {
	if infra.IsKind(err, infra.KindUnauthorized) {
		return errs.Mark(err, errs.ErrSessionExpired)
	}
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, errs.ErrPlaceNotFound)
	}
	return errs.Mark(err, errs.ErrBackendUnavailable)
}
