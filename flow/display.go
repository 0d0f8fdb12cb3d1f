package flow

import (
	"gobridgeflow/config"
	"gobridgeflow/types"

	ethav "github.com/KOREAN139/ethereum-address-validator"
	"github.com/ethereum/go-ethereum/common"
)

const (
	StepCompleted = "completed"
	StepActive    = "active"
	StepPending   = "pending"
)

type Step struct {
	Number      int    `json:"number"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// Summary holds the values a client renders next to the flow. Everything
// here is derived from flow state or fixed; none of it is stored.
type Summary struct {
	From             string `json:"from"`
	To               string `json:"to"`
	Asset            string `json:"asset"`
	AssetLabel       string `json:"assetLabel"`
	Amount           string `json:"amount"`
	Recipient        string `json:"recipient"`
	Steps            []Step `json:"steps"`
	BridgeProgress   int    `json:"bridgeProgress"`
	FeeEstimate      string `json:"feeEstimate"`
	TimeEstimate     string `json:"timeEstimate"`
	CompleteEstimate string `json:"completeEstimate"`
	Validators       string `json:"validators"`
	Confirmations    string `json:"confirmations"`
	TotalFees        string `json:"totalFees,omitempty"`
	TotalTime        string `json:"totalTime,omitempty"`
	Complete         bool   `json:"complete"`
}

var steps = []Step{
	{Number: 1, Title: "Deposit", Description: "Lock assets on source chain"},
	{Number: 2, Title: "Bridge", Description: "Cross-chain transaction"},
	{Number: 3, Title: "Withdraw", Description: "Claim on target chain"},
}

const notSelected = "Not selected"

func ChainLabel(catalog types.Catalog, id types.ChainID) string {
	if chain, ok := catalog.Chain(id); ok {
		return chain.Name
	}
	return notSelected
}

func AssetSymbol(catalog types.Catalog, id types.AssetID) string {
	if asset, ok := catalog.Asset(id); ok {
		return asset.Symbol
	}
	return notSelected
}

// AssetLabel renders "USD Coin (USDC)"
func AssetLabel(catalog types.Catalog, id types.AssetID) string {
	if asset, ok := catalog.Asset(id); ok {
		return asset.Name + " (" + asset.Symbol + ")"
	}
	return notSelected
}

// StepStatus tells whether a stage is done, in progress or still ahead.
// The withdraw stage counts as completed once its hash is assigned.
func StepStatus(f *Flow, stage types.Stage) string {
	switch {
	case stage < f.Stage():
		return StepCompleted
	case stage == f.Stage():
		if stage == types.StageWithdraw && f.Completed() {
			return StepCompleted
		}
		return StepActive
	default:
		return StepPending
	}
}

// RecipientDisplay checksums hex recipients bound for EVM chains and
// returns anything else unchanged.
func RecipientDisplay(catalog types.Catalog, target types.ChainID, recipient string) string {
	chain, ok := catalog.Chain(target)
	if !ok || chain.Family != types.FamilyEVM || !common.IsHexAddress(recipient) {
		return recipient
	}
	checksummed := common.HexToAddress(recipient).Hex()
	if err := ethav.Validate(checksummed); err != nil {
		return recipient
	}
	return checksummed
}

func Summarize(f *Flow) Summary {
	catalog := f.Catalog()

	amount := f.Amount()
	if amount == "" {
		amount = "0.00"
	}

	s := Summary{
		From:             ChainLabel(catalog, f.SourceChain()),
		To:               ChainLabel(catalog, f.TargetChain()),
		Asset:            AssetSymbol(catalog, f.Asset()),
		AssetLabel:       AssetLabel(catalog, f.Asset()),
		Amount:           amount,
		Recipient:        RecipientDisplay(catalog, f.TargetChain(), f.Recipient()),
		BridgeProgress:   config.BRIDGE_PROGRESS_PERCENT,
		FeeEstimate:      config.FEE_ESTIMATE,
		TimeEstimate:     config.TIME_ESTIMATE,
		CompleteEstimate: config.BRIDGE_COMPLETE_ESTIMATE,
		Validators:       config.VALIDATORS_SIGNED,
		Confirmations:    config.CONFIRMATIONS,
		Complete:         f.Completed(),
	}

	s.Steps = make([]Step, len(steps))
	for i, step := range steps {
		step.Status = StepStatus(f, types.Stage(i))
		s.Steps[i] = step
	}

	if f.Completed() {
		s.TotalFees = config.TOTAL_FEES
		s.TotalTime = config.TOTAL_TIME
	}
	return s
}
