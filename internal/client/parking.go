package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"parkingspot/internal/apperrors"
	"parkingspot/internal/entities"
)

const (
	listFallback    = "Erro ao buscar estacionamentos"
	createFallback  = "Erro ao reservar vaga"
	searchFallback  = "Veículo não encontrado"
	removalFallback = "Erro ao remover veículo"
)

// ListFacilityTypes fetches the facility directory in backend order. An empty
// directory is a valid result, not an error.
func (c *Client) ListFacilityTypes(ctx context.Context, skip, limit int) ([]entities.FacilityType, error) {
	endpoint := c.parkingPath("/parkingsTypes/")
	query := url.Values{}
	query.Set("skip", strconv.Itoa(skip))
	query.Set("limit", strconv.Itoa(limit))

	resp, err := c.do(ctx, http.MethodGet, endpoint+"?"+query.Encode(), "", nil, true)
	if err != nil {
		return nil, err
	}
	if !resp.ok() {
		return nil, &apperrors.FetchError{Code: resp.status, Message: resp.errText(listFallback)}
	}

	var types []entities.FacilityType
	if err := json.Unmarshal(resp.body, &types); err != nil {
		return nil, fmt.Errorf("decoding facility types: %w", err)
	}
	return types, nil
}

// CreateReservation submits the reservation and returns the backend's created
// payload verbatim. Field validation happens in the workflow layer before
// this call; here the request goes out as-is and is never auto-retried.
func (c *Client) CreateReservation(ctx context.Context, req entities.ReservationRequest) (*entities.ActiveReservation, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(ctx, http.MethodPost, c.parkingPath("/parkings/"), "application/json", body, true)
	if err != nil {
		return nil, err
	}
	if !resp.ok() {
		return nil, &apperrors.SubmissionError{Code: resp.status, Message: resp.errText(createFallback)}
	}

	var created entities.ActiveReservation
	if err := json.Unmarshal(resp.body, &created); err != nil {
		return nil, fmt.Errorf("decoding reservation response: %w", err)
	}
	return &created, nil
}

// SearchActive looks up active reservations by plate with the fixed
// pagination the backend expects.
func (c *Client) SearchActive(ctx context.Context, plate string) ([]entities.ActiveReservation, error) {
	endpoint := c.parkingPath("/parkings/active/search/")
	query := url.Values{}
	query.Set("license_plate", plate)
	query.Set("skip", "0")
	query.Set("limit", "100")

	resp, err := c.do(ctx, http.MethodGet, endpoint+"?"+query.Encode(), "", nil, c.authOnSearch)
	if err != nil {
		return nil, err
	}
	if !resp.ok() {
		return nil, &apperrors.NotFoundError{Code: resp.status, Message: resp.errText(searchFallback)}
	}

	var matches []entities.ActiveReservation
	if err := json.Unmarshal(resp.body, &matches); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}
	return matches, nil
}

// RemoveActive deletes the active reservation keyed by plate. The response
// body, if any, is ignored on success.
func (c *Client) RemoveActive(ctx context.Context, plate string) error {
	endpoint := c.parkingPath("/parkings/active/" + url.PathEscape(plate))

	resp, err := c.do(ctx, http.MethodDelete, endpoint, "", nil, c.authOnRemove)
	if err != nil {
		return err
	}
	if !resp.ok() {
		return &apperrors.RemovalError{Code: resp.status, Message: resp.errText(removalFallback)}
	}
	return nil
}
