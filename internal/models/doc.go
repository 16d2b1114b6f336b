// Package models defines the core domain records of debtbook.
//
// # Records
//
//   - Person: a counterparty the user lends to or borrows from
//   - Transaction: one directional money movement between the user and a person
//   - Ledger: the whole record set plus the person currently in focus
//   - DateRange: optional calendar bounds used by statement filtering
//
// Records are plain data. Balances, statements and dashboard series are derived
// by package calculator; mutations that produce a new Ledger live in package ledger.
//
// # Sign convention
//
// Every Transaction carries a positive Amount and a Kind. Its signed value is
// derived from both and is never stored independently:
//
//	LentToThem       +amount  (they owe me more)
//	RepaidToMe       -amount  (they owe me less)
//	BorrowedFromThem -amount  (I owe them more)
//	RepaidByMe       +amount  (I owe them less)
//
// A positive balance therefore means the person owes the user, negative means
// the user owes the person.
//
// # Relationships
//
// Relationships use ID strings instead of pointers. A Transaction's PersonID and
// the Ledger's SelectedID may dangle; readers treat a dangling reference as "no person".
package models
