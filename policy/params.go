// Package policy holds the compile-time parameters the bridge type
// verifier checks transactions against: the code hashes that identify the
// bridge's own scripts, and the timeout constant Payout writes into the
// audit-delay lock's args.
package policy

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/leapdao/parent-bridge/cell"
)

// Params controls the set of code hashes and timing constants a bridge
// deployment is parameterized over. bridgetype.Verify receives it as an
// argument; it is not read from the transaction or from any script's args.
type Params struct {
	// AnyoneCanSpendCodeHash identifies the always-succeeds lock that
	// Deploy requires on the bridge cell (output 0).
	AnyoneCanSpendCodeHash cell.Hash

	// DepositLockCodeHash identifies the deposit lock script, checked by
	// the bridge type verifier when classifying CollectDeposits inputs.
	DepositLockCodeHash cell.Hash

	// AuditDelayCodeHash identifies the audit-delay lock script, checked
	// by the bridge type verifier's Payout path on output 1.
	AuditDelayCodeHash cell.Hash

	// DepositScriptCodeHash identifies the deposit-script lock. It is
	// loaded from params files but no verifier in this module reads it.
	DepositScriptCodeHash cell.Hash

	// PayoutTimeoutMS is the minimum elapsed header timestamp, in
	// milliseconds, the audit-delay lock requires between a Payout
	// broadcast and the owner regaining spending rights without a
	// trustee signature.
	PayoutTimeoutMS uint64
}

// Default is the reference deployment's parameter set. Real deployments
// bake their own code hashes in at genesis; cmd/bridge-type uses this
// value when no -params file is given, and Load starts from it.
var Default = Params{
	PayoutTimeoutMS: 24 * 60 * 60 * 1000, // 24h
}

// fileParams is the JSON-friendly mirror of Params: hex strings instead
// of cell.Hash arrays, matching memtx.Fixture's hand-editable convention.
type fileParams struct {
	AnyoneCanSpendCodeHash string `json:"anyone_can_spend_code_hash"`
	DepositLockCodeHash    string `json:"deposit_lock_code_hash"`
	AuditDelayCodeHash     string `json:"audit_delay_code_hash"`
	DepositScriptCodeHash  string `json:"deposit_script_code_hash"`
	PayoutTimeoutMS        uint64 `json:"payout_timeout_ms"`
}

// Load reads a deployment's Params from a JSON file on disk. Fields left
// at their zero value fall back to Default's corresponding field.
func Load(path string) (Params, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Params{}, fmt.Errorf("policy: read params: %w", err)
	}
	var f fileParams
	if err := json.Unmarshal(raw, &f); err != nil {
		return Params{}, fmt.Errorf("policy: decode params: %w", err)
	}

	p := Default
	if h, err := decodeHashField("anyone_can_spend_code_hash", f.AnyoneCanSpendCodeHash); err != nil {
		return Params{}, err
	} else if h != nil {
		p.AnyoneCanSpendCodeHash = *h
	}
	if h, err := decodeHashField("deposit_lock_code_hash", f.DepositLockCodeHash); err != nil {
		return Params{}, err
	} else if h != nil {
		p.DepositLockCodeHash = *h
	}
	if h, err := decodeHashField("audit_delay_code_hash", f.AuditDelayCodeHash); err != nil {
		return Params{}, err
	} else if h != nil {
		p.AuditDelayCodeHash = *h
	}
	if h, err := decodeHashField("deposit_script_code_hash", f.DepositScriptCodeHash); err != nil {
		return Params{}, err
	} else if h != nil {
		p.DepositScriptCodeHash = *h
	}
	if f.PayoutTimeoutMS != 0 {
		p.PayoutTimeoutMS = f.PayoutTimeoutMS
	}
	return p, nil
}

func decodeHashField(name, s string) (*cell.Hash, error) {
	if s == "" {
		return nil, nil
	}
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("policy: decode %s: %w", name, err)
	}
	if len(b) != cell.HashLength {
		return nil, fmt.Errorf("policy: %s: expected %d bytes, got %d", name, cell.HashLength, len(b))
	}
	h := cell.BytesToHash(b)
	return &h, nil
}
