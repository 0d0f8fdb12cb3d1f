package handlers

import (
	"gobridgeflow/flow"
	"gobridgeflow/types"
)

type APIResponse struct {
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Field   string            `json:"field"`
	Fields  map[string]string `json:"fields,omitempty"`
}

type APIStateResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Storage string `json:"storage"`
	Flows   int    `json:"flows"`
}

type APIFlowResponse struct {
	Status  string           `json:"status"`
	ID      string           `json:"id"`
	Flow    types.BridgeFlow `json:"flow"`
	Summary flow.Summary     `json:"summary"`
}

type APIUserResponse struct {
	Status string             `json:"status"`
	User   *types.UserProfile `json:"user"`
}

type DepositRequest struct {
	SourceChain types.ChainID `json:"sourceChain"`
	TargetChain types.ChainID `json:"targetChain"`
	Asset       types.AssetID `json:"asset"`
	Amount      string        `json:"amount"`
	Recipient   string        `json:"recipient"`
}
