// Package flow implements the bridge wizard as a linear state machine:
// deposit, then bridge, then withdraw. Each completed stage gets a
// fabricated transaction hash exactly once.
package flow

import (
	"strings"

	"gobridgeflow/idgen"
	"gobridgeflow/types"

	"github.com/shopspring/decimal"
)

// Flow is not safe for concurrent use; it belongs to a single session.
type Flow struct {
	catalog types.Catalog
	gen     idgen.Generator

	stage       types.Stage
	sourceChain types.ChainID
	targetChain types.ChainID
	asset       types.AssetID
	amount      string
	recipient   string

	depositTxHash    string
	bridgeTxHash     string
	withdrawTxHash   string
	depositObjectID  string
	withdrawObjectID string
}

func New(catalog types.Catalog, gen idgen.Generator) *Flow {
	f := &Flow{catalog: catalog, gen: gen}
	f.Reset()
	return f
}

// Reset returns the flow to its initial state
func (f *Flow) Reset() {
	*f = Flow{
		catalog:     f.catalog,
		gen:         f.gen,
		stage:       types.StageDeposit,
		sourceChain: f.catalog.HomeChain,
	}
}

// ConfigureDeposit validates and stores the deposit parameters. It may be
// called any number of times while the flow is in the deposit stage; on
// error nothing is changed.
func (f *Flow) ConfigureDeposit(source, target types.ChainID, asset types.AssetID, amount, recipient string) error {
	if f.stage != types.StageDeposit {
		return ErrStageLocked
	}

	if _, ok := f.catalog.Chain(source); !ok {
		return fieldError("sourceChain", ErrInvalidChainSelection, "unsupported chain %q", source)
	}
	if _, ok := f.catalog.Chain(target); !ok {
		return fieldError("targetChain", ErrInvalidChainSelection, "unsupported chain %q", target)
	}
	if source == target {
		return fieldError("targetChain", ErrInvalidChainSelection, "target chain must differ from source chain %q", source)
	}

	if _, ok := f.catalog.Asset(asset); !ok {
		return fieldError("asset", ErrInvalidAssetSelection, "unsupported asset %q", asset)
	}

	amount = strings.TrimSpace(amount)
	if amount == "" {
		return fieldError("amount", ErrInvalidAmount, "amount is required")
	}
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fieldError("amount", ErrInvalidAmount, "%q is not a number", amount)
	}
	if !value.IsPositive() {
		return fieldError("amount", ErrInvalidAmount, "amount must be greater than zero")
	}

	recipient = strings.TrimSpace(recipient)
	if recipient == "" {
		return fieldError("recipient", ErrInvalidRecipient, "recipient address is required")
	}

	f.sourceChain = source
	f.targetChain = target
	f.asset = asset
	f.amount = amount
	f.recipient = recipient
	return nil
}

// Configured reports whether ConfigureDeposit has succeeded since the last reset
func (f *Flow) Configured() bool {
	return f.targetChain != "" && f.asset != "" && f.amount != "" && f.recipient != ""
}

// Advance completes the current stage: it stamps the stage's transaction
// hash and moves to the next stage. Completing withdraw leaves the flow at
// withdraw; calling Advance again after that does nothing.
func (f *Flow) Advance() error {
	switch f.stage {
	case types.StageDeposit:
		if !f.Configured() {
			return ErrIncompleteConfiguration
		}
		f.depositTxHash = f.gen.TxHash()
		f.depositObjectID = f.gen.ObjectID()
	case types.StageBridge:
		f.bridgeTxHash = f.gen.TxHash()
	case types.StageWithdraw:
		if f.withdrawTxHash != "" {
			return nil
		}
		f.withdrawTxHash = f.gen.TxHash()
		f.withdrawObjectID = f.gen.ObjectID()
	}
	f.stage = f.stage.Next()
	return nil
}

// Completed reports whether the withdraw has been executed
func (f *Flow) Completed() bool {
	return f.withdrawTxHash != ""
}

func (f *Flow) Stage() types.Stage { return f.stage }
func (f *Flow) SourceChain() types.ChainID { return f.sourceChain }
func (f *Flow) TargetChain() types.ChainID { return f.targetChain }
func (f *Flow) Asset() types.AssetID { return f.asset }
func (f *Flow) Amount() string { return f.amount }
func (f *Flow) Recipient() string { return f.recipient }
func (f *Flow) DepositTxHash() string { return f.depositTxHash }
func (f *Flow) BridgeTxHash() string { return f.bridgeTxHash }
func (f *Flow) WithdrawTxHash() string { return f.withdrawTxHash }
func (f *Flow) DepositObjectID() string { return f.depositObjectID }
func (f *Flow) WithdrawObjectID() string { return f.withdrawObjectID }
func (f *Flow) Catalog() types.Catalog { return f.catalog }

func (f *Flow) Snapshot() types.BridgeFlow {
	return types.BridgeFlow{
		Stage:            f.stage,
		SourceChain:      f.sourceChain,
		TargetChain:      f.targetChain,
		Asset:            f.asset,
		Amount:           f.amount,
		Recipient:        f.recipient,
		DepositTxHash:    f.depositTxHash,
		BridgeTxHash:     f.bridgeTxHash,
		WithdrawTxHash:   f.withdrawTxHash,
		DepositObjectID:  f.depositObjectID,
		WithdrawObjectID: f.withdrawObjectID,
	}
}
