package types

import (
	"fmt"
	"sort"
	"strings"
)

// Stage is a position in the bridge workflow. Stages are ordered and only
// move forward, or back to StageDeposit on reset.
type Stage int

const (
	StageDeposit Stage = iota
	StageBridge
	StageWithdraw
)

var stageNames = map[Stage]string{
	StageDeposit:  "deposit",
	StageBridge:   "bridge",
	StageWithdraw: "withdraw",
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

// Number is the 1-based step number shown to users
func (s Stage) Number() int {
	return int(s) + 1
}

// Next returns the following stage; StageWithdraw is terminal and returns itself
func (s Stage) Next() Stage {
	if s >= StageWithdraw {
		return StageWithdraw
	}
	return s + 1
}

func (s Stage) MarshalText() ([]byte, error) {
	if _, ok := stageNames[s]; !ok {
		return nil, fmt.Errorf("unknown stage %d", int(s))
	}
	return []byte(s.String()), nil
}

func (s *Stage) UnmarshalText(text []byte) error {
	for stage, name := range stageNames {
		if strings.EqualFold(name, string(text)) {
			*s = stage
			return nil
		}
	}
	return fmt.Errorf("unknown stage %q", string(text))
}

type ChainID string
type AssetID string

// chain families, used for presentation only
const (
	FamilyMove = "move"
	FamilyEVM  = "evm"
)

type Chain struct {
	ID     ChainID `json:"id" yaml:"id"`
	Name   string  `json:"name" yaml:"name"`
	Family string  `json:"family" yaml:"family"`
}

type Asset struct {
	ID     AssetID `json:"id" yaml:"id"`
	Name   string  `json:"name" yaml:"name"`
	Symbol string  `json:"symbol" yaml:"symbol"`
}

// Catalog is the fixed set of chains and assets a flow may reference
type Catalog struct {
	HomeChain ChainID
	Chains    map[ChainID]Chain
	Assets    map[AssetID]Asset
}

func (c Catalog) Chain(id ChainID) (Chain, bool) {
	chain, ok := c.Chains[id]
	return chain, ok
}

func (c Catalog) Asset(id AssetID) (Asset, bool) {
	asset, ok := c.Assets[id]
	return asset, ok
}

// SortedChains lists chains with the home chain first, the rest by id
func (c Catalog) SortedChains() []Chain {
	chains := make([]Chain, 0, len(c.Chains))
	for _, chain := range c.Chains {
		chains = append(chains, chain)
	}
	sort.Slice(chains, func(i, j int) bool {
		if chains[i].ID == c.HomeChain || chains[j].ID == c.HomeChain {
			return chains[i].ID == c.HomeChain
		}
		return chains[i].ID < chains[j].ID
	})
	return chains
}

func (c Catalog) SortedAssets() []Asset {
	assets := make([]Asset, 0, len(c.Assets))
	for _, asset := range c.Assets {
		assets = append(assets, asset)
	}
	sort.Slice(assets, func(i, j int) bool { return assets[i].ID < assets[j].ID })
	return assets
}

// BridgeFlow is a point-in-time copy of a flow, as served to clients
type BridgeFlow struct {
	Stage            Stage   `json:"stage"`
	SourceChain      ChainID `json:"sourceChain"`
	TargetChain      ChainID `json:"targetChain"`
	Asset            AssetID `json:"asset"`
	Amount           string  `json:"amount"` // decimal text as entered, trimmed
	Recipient        string  `json:"recipient"`
	DepositTxHash    string  `json:"depositTxHash"`
	BridgeTxHash     string  `json:"bridgeTxHash"`
	WithdrawTxHash   string  `json:"withdrawTxHash"`
	DepositObjectID  string  `json:"depositObjectId"`
	WithdrawObjectID string  `json:"withdrawObjectId"`
}

// UserProfile is the fabricated user produced by mock authentication,
// stored best-effort only
type UserProfile struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Avatar    string `json:"avatar,omitempty"`
	TsCreated int64  `json:"tsCreated"`
}
