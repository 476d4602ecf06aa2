package googleads

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// MutateRequest is one batch mutate call.
type MutateRequest struct {
	Operations []MutateOperation
	// PartialFailure commits valid operations and reports invalid ones
	// independently. When false the whole batch is atomic.
	PartialFailure bool
	// ValidateOnly runs vendor-side validation without committing anything.
	ValidateOnly bool
}

// OperationError is a per-operation failure extracted from a partial
// failure response.
type OperationError struct {
	// Index is the position of the failed operation in the request.
	Index   int
	Message string
}

// MutateResponse is the decoded result of one batch mutate call.
type MutateResponse struct {
	// Results holds one entry per request operation, in request order.
	// Failed operations in partial-failure mode have empty resource names.
	Results []MutateOperationResponse
	// OperationErrors lists per-operation failures reported through the
	// partial failure status. Empty when every operation committed.
	OperationErrors []OperationError
}

// FailedIndexes returns the set of request indexes that failed.
func (r MutateResponse) FailedIndexes() map[int]string {
	failed := make(map[int]string, len(r.OperationErrors))
	for _, opErr := range r.OperationErrors {
		failed[opErr.Index] = opErr.Message
	}
	return failed
}

type mutateWireRequest struct {
	MutateOperations []MutateOperation `json:"mutateOperations"`
	PartialFailure   bool              `json:"partialFailure,omitempty"`
	ValidateOnly     bool              `json:"validateOnly,omitempty"`
}

type mutateWireResponse struct {
	MutateOperationResponses []MutateOperationResponse `json:"mutateOperationResponses"`
	PartialFailureError      *rpcStatus                `json:"partialFailureError,omitempty"`
}

// rpcStatus mirrors google.rpc.Status as serialized by the REST transport.
type rpcStatus struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Details []json.RawMessage `json:"details"`
}

// googleAdsFailure mirrors the GoogleAdsFailure detail payload.
type googleAdsFailure struct {
	Errors []struct {
		Message  string `json:"message"`
		Location struct {
			FieldPathElements []struct {
				FieldName string `json:"fieldName"`
				Index     *int   `json:"index,omitempty"`
			} `json:"fieldPathElements"`
		} `json:"location"`
	} `json:"errors"`
}

// Mutate submits one batch of heterogeneous operations.
func (c *Client) Mutate(ctx context.Context, customerID string, request MutateRequest) (MutateResponse, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return MutateResponse{}, fmt.Errorf("customer id is required")
	}
	if len(request.Operations) == 0 {
		return MutateResponse{}, fmt.Errorf("at least one operation is required")
	}

	path := fmt.Sprintf("/customers/%s/googleAds:mutate", customerID)
	payload := mutateWireRequest{
		MutateOperations: request.Operations,
		PartialFailure:   request.PartialFailure,
		ValidateOnly:     request.ValidateOnly,
	}

	var wire mutateWireResponse
	if err := c.post(ctx, path, payload, &wire); err != nil {
		return MutateResponse{}, fmt.Errorf("mutate: %w", err)
	}

	response := MutateResponse{Results: wire.MutateOperationResponses}
	if wire.PartialFailureError != nil {
		opErrors, err := decodePartialFailure(wire.PartialFailureError)
		if err != nil {
			return MutateResponse{}, err
		}
		response.OperationErrors = opErrors
	}
	return response, nil
}

// decodePartialFailure maps GoogleAdsFailure details back to request
// operation indexes via the mutate_operations field path.
func decodePartialFailure(status *rpcStatus) ([]OperationError, error) {
	var opErrors []OperationError
	for _, detail := range status.Details {
		var failure googleAdsFailure
		if err := json.Unmarshal(detail, &failure); err != nil {
			return nil, fmt.Errorf("decode partial failure detail: %w", err)
		}
		for _, failureErr := range failure.Errors {
			index := -1
			for _, element := range failureErr.Location.FieldPathElements {
				if element.FieldName == "mutate_operations" && element.Index != nil {
					index = *element.Index
					break
				}
			}
			if index < 0 {
				// A failure without an operation index applies to the whole
				// request, not a single operation.
				return nil, fmt.Errorf("partial failure without operation index: %s", failureErr.Message)
			}
			opErrors = append(opErrors, OperationError{Index: index, Message: failureErr.Message})
		}
	}
	if len(opErrors) == 0 && strings.TrimSpace(status.Message) != "" {
		return nil, fmt.Errorf("partial failure: %s", status.Message)
	}
	return opErrors, nil
}
