package service

import (
	"context"

	"wayfinder/internal/domain/entity"
	"wayfinder/internal/errors"
)

// ErrNoRoute is returned when the provider cannot produce a path between
// origin and destination.
var ErrNoRoute = errors.New("no route between origin and destination")

// RouteProvider calls an external routing engine and normalizes its answer.
// A single request per invocation; no retry or backoff.
type RouteProvider interface {
	// FetchRoute computes a route for the given transport mode.
	// Returns ErrNoRoute when the provider finds no path.
	FetchRoute(ctx context.Context, origin, destination entity.Coordinate, mode entity.TransportMode) (*entity.RouteResult, error)
}
