package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Kind is the direction of a Transaction. The zero value is not a valid kind.
type Kind uint8

const (
	LentToThem Kind = iota + 1
	RepaidToMe
	BorrowedFromThem
	RepaidByMe
)

// Kinds returns every valid kind in display order.
func Kinds() []Kind {
	return []Kind{LentToThem, RepaidToMe, BorrowedFromThem, RepaidByMe}
}

// ParseKind accepts the wire names ("lent", "repay_to_me", "borrowed",
// "repay_by_me") and the spelled-out names ("LentToThem", ...), case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lent", "lenttothem", "lent_to_them":
		return LentToThem, nil
	case "repay_to_me", "repaidtome", "repaid_to_me":
		return RepaidToMe, nil
	case "borrowed", "borrowedfromthem", "borrowed_from_them":
		return BorrowedFromThem, nil
	case "repay_by_me", "repaidbyme", "repaid_by_me":
		return RepaidByMe, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Sign returns +1 or -1 for a valid kind.
func (k Kind) Sign() (int64, error) {
	switch k {
	case LentToThem, RepaidByMe:
		return 1, nil
	case RepaidToMe, BorrowedFromThem:
		return -1, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrUnknownKind, uint8(k))
}

// Valid reports whether k is one of the four kinds.
func (k Kind) Valid() bool {
	_, err := k.Sign()
	return err == nil
}

// IsObligation is true for kinds that open a debt and may therefore fall overdue.
// Repayments settle debts and are never overdue.
func (k Kind) IsObligation() bool {
	return k == LentToThem || k == BorrowedFromThem
}

// String returns the wire name used by the bulk interchange format.
func (k Kind) String() string {
	switch k {
	case LentToThem:
		return "lent"
	case RepaidToMe:
		return "repay_to_me"
	case BorrowedFromThem:
		return "borrowed"
	case RepaidByMe:
		return "repay_by_me"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Label is the human readable name shown in dashboards and statements.
func (k Kind) Label() string {
	switch k {
	case LentToThem:
		return "Lent to them"
	case RepaidToMe:
		return "Repaid to me"
	case BorrowedFromThem:
		return "Borrowed from them"
	case RepaidByMe:
		return "Repaid by me"
	}
	return "Unknown"
}

func (k Kind) MarshalJSON() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, uint8(k))
	}
	return json.Marshal(k.String())
}

func (k *Kind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrUnknownKind, string(data))
	}
	parsed, err := ParseKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
