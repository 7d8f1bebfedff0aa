// Package storage defines the block-versioned record models produced by the
// event handler and the store contract they are applied through. Records are
// never updated in place: each state change inserts a new version stamped
// with the observing block number, and the store closes the version it
// supersedes.
package storage

import "context"

// Operation is one write derived from a single state change. Operations are
// ephemeral: built per frame, applied once, never retained.
type Operation interface {
	isOperation()
}

// OrganizationRecord bundles the rows produced by one organization entry.
// Accreditations is nil unless the organization is a certifying body (a
// certifying body with no accreditations carries an empty non-nil slice).
// Address is nil unless the organization is a factory with an address.
// Authorizations and Contacts are always non-nil.
type OrganizationRecord struct {
	Organization   Organization
	Accreditations []Accreditation
	Address        *Address
	Authorizations []Authorization
	Contacts       []Contact
}

// StandardRecord bundles a standard row with its version rows.
type StandardRecord struct {
	Standard Standard
	Versions []StandardVersion
}

// CreateOrganization applies every organization entry in one state change.
type CreateOrganization struct {
	Organizations []OrganizationRecord
}

// CreateAgent applies every agent entry in one state change.
type CreateAgent struct {
	Agents []Agent
}

// CreateCertificate applies every certificate entry in one state change.
type CreateCertificate struct {
	Certificates []Certificate
}

// CreateRequest applies every request entry in one state change.
type CreateRequest struct {
	Requests []Request
}

// CreateStandard applies every standard entry in one state change.
type CreateStandard struct {
	Standards []StandardRecord
}

func (CreateOrganization) isOperation() {}
func (CreateAgent) isOperation()        {}
func (CreateCertificate) isOperation()  {}
func (CreateRequest) isOperation()      {}
func (CreateStandard) isOperation()     {}

// Store is the reporting database contract consumed by the subscriber core.
type Store interface {
	// FetchKnownBlocks returns every block already applied, newest first.
	// The subscriber offers these ids to the validator when negotiating a
	// subscription start point.
	FetchKnownBlocks(ctx context.Context) ([]Block, error)

	// ExecuteOperationsInBlock applies every operation derived from one
	// block as a single atomic unit, in the order given. Either all of the
	// block's writes become durable or none do.
	ExecuteOperationsInBlock(ctx context.Context, operations []Operation, block Block) error
}
