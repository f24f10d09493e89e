// Package verr defines the frozen numeric exit-code taxonomy every
// verifier returns. Codes 1-4 are accessor errors; 5-28 are bridge-type
// semantic errors; codes above 28 are lock-specific. The numbering is
// fixed by the off-chain diagnostic tooling that depends on it and must
// never be renumbered.
package verr

// Code is a verifier exit code: 0 means success, 1-127 identifies the
// violated rule.
type Code uint8

const (
	// Accessor errors, surfaced from the transaction accessor (§4.1).
	IndexOutOfBound Code = iota + 1
	ItemMissing
	LengthNotEnough
	Encoding
)

const (
	// Bridge type verifier errors (§4.5), numbered from 5.
	StateTransitionDoesNotExist Code = iota + 5
	InvalidArgsEncoding
	WrongLockScript
	WrongTypeScript
	DataLengthNotZero
	WrongStateId
	TooManyTypeOutputs
	EmptyValidatorList
	WrongScriptArgsLength
	InvalidWitnessEncoding
	InvalidWithdrawalCapacity
	DepositCapacityComputedIncorrectly
	DepositsShouldNotChangeData
	NotSignedByTrustee
	BridgeWasNotDissolved
	LeftoverCapacity
	UnknownReceiptSigner
	SignatureQuorumNotMet
	WithdrawalCapacityComputedIncorrectly
	DataUpdatedIncorrectly
	WrongTrusteeInPayout
	WrongPayoutDestination
	WrongTimeout
	ReceiptAlreadyUsed
)

const (
	// Lock-specific errors. Each lock script is its own process with its
	// own code space on the host ledger; these constants are numbered
	// past the bridge-type range purely so this package can enumerate
	// every code the off-chain tooling in §6 needs to recognize in one
	// place.
	MissingCorrectTypeOrLockScript Code = iota + 29
	NotEnoughTimePassed
	NotSpentWithOwnerInput
	Secp256k1
	NoCellWithCorrectTypeHash
)

var names = map[Code]string{
	IndexOutOfBound:                        "IndexOutOfBound",
	ItemMissing:                             "ItemMissing",
	LengthNotEnough:                         "LengthNotEnough",
	Encoding:                                "Encoding",
	StateTransitionDoesNotExist:             "StateTransitionDoesNotExist",
	InvalidArgsEncoding:                     "InvalidArgsEncoding",
	WrongLockScript:                         "WrongLockScript",
	WrongTypeScript:                         "WrongTypeScript",
	DataLengthNotZero:                       "DataLengthNotZero",
	WrongStateId:                            "WrongStateId",
	TooManyTypeOutputs:                      "TooManyTypeOutputs",
	EmptyValidatorList:                      "EmptyValidatorList",
	WrongScriptArgsLength:                   "WrongScriptArgsLength",
	InvalidWitnessEncoding:                  "InvalidWitnessEncoding",
	InvalidWithdrawalCapacity:               "InvalidWithdrawalCapacity",
	DepositCapacityComputedIncorrectly:      "DepositCapacityComputedIncorrectly",
	DepositsShouldNotChangeData:             "DepositsShouldNotChangeData",
	NotSignedByTrustee:                      "NotSignedByTrustee",
	BridgeWasNotDissolved:                   "BridgeWasNotDissolved",
	LeftoverCapacity:                        "LeftoverCapacity",
	UnknownReceiptSigner:                    "UnknownReceiptSigner",
	SignatureQuorumNotMet:                   "SignatureQuorumNotMet",
	WithdrawalCapacityComputedIncorrectly:   "WithdrawalCapacityComputedIncorrectly",
	DataUpdatedIncorrectly:                  "DataUpdatedIncorrectly",
	WrongTrusteeInPayout:                    "WrongTrusteeInPayout",
	WrongPayoutDestination:                  "WrongPayoutDestination",
	WrongTimeout:                            "WrongTimeout",
	ReceiptAlreadyUsed:                      "ReceiptAlreadyUsed",
	MissingCorrectTypeOrLockScript:          "MissingCorrectTypeOrLockScript",
	NotEnoughTimePassed:                     "NotEnoughTimePassed",
	NotSpentWithOwnerInput:                  "NotSpentWithOwnerInput",
	Secp256k1:                               "Secp256k1",
	NoCellWithCorrectTypeHash:               "NoCellWithCorrectTypeHash",
}

// String returns the rule name, used in error messages and logs.
func (c Code) String() string {
	if name, ok := names[c]; ok {
		return name
	}
	return "Unknown"
}

// Error wraps a Code as a standard Go error while keeping the numeric
// code available to callers (cmd/* passes it straight to os.Exit).
type Error struct {
	code Code
}

// New returns an *Error for the given code.
func New(code Code) *Error {
	return &Error{code: code}
}

// Error implements the error interface.
func (e *Error) Error() string { return e.code.String() }

// Code returns the numeric exit code.
func (e *Error) Code() Code { return e.code }

// CodeOf extracts the numeric exit code from err. A nil error maps to 0
// (success); any error that isn't a *verr.Error maps to Encoding (4),
// the most conservative "something was malformed" signal.
func CodeOf(err error) Code {
	if err == nil {
		return 0
	}
	if ve, ok := err.(*Error); ok {
		return ve.code
	}
	return Encoding
}
